package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"soundspace/internal/access"
	"soundspace/internal/httputil"
	"soundspace/internal/model"
	"soundspace/internal/service"
	"soundspace/internal/transport/http/middleware"
)

type StyleHandler struct {
	styleService *service.StyleService
}

func NewStyleHandler(styleService *service.StyleService) *StyleHandler {
	return &StyleHandler{styleService: styleService}
}

func (h *StyleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	style, err := h.styleService.Create(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "Only administrators can manage styles")
		case errors.Is(err, model.ErrNameRequired):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Create style handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create style")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, style)
}

func (h *StyleHandler) Get(w http.ResponseWriter, r *http.Request) {
	styleID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid style ID")
		return
	}

	style, err := h.styleService.Get(r.Context(), styleID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrStyleNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] Get style handler: %v", err)
			httputil.WriteInternalError(w, "Failed to fetch style")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, style)
}

func (h *StyleHandler) List(w http.ResponseWriter, r *http.Request) {
	styles, err := h.styleService.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] List styles handler: %v", err)
		httputil.WriteInternalError(w, "Failed to fetch styles")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, styles)
}

func (h *StyleHandler) Update(w http.ResponseWriter, r *http.Request) {
	styleID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid style ID")
		return
	}

	var req model.CreateStyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	style, err := h.styleService.Update(r.Context(), actor, styleID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrStyleNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "Only administrators can manage styles")
		case errors.Is(err, model.ErrNameRequired):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Update style handler: %v", err)
			httputil.WriteInternalError(w, "Failed to update style")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, style)
}

func (h *StyleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	styleID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid style ID")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	if err := h.styleService.Delete(r.Context(), actor, styleID); err != nil {
		switch {
		case errors.Is(err, model.ErrStyleNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "Only administrators can manage styles")
		default:
			log.Printf("[ERROR] Delete style handler: %v", err)
			httputil.WriteInternalError(w, "Failed to delete style")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Style deleted",
	})
}
