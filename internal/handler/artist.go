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

type ArtistHandler struct {
	artistService *service.ArtistService
}

func NewArtistHandler(artistService *service.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	artist, err := h.artistService.Create(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrDenied):
			httputil.WriteUnauthorized(w, "Authentication required")
		case errors.Is(err, model.ErrNameRequired):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrArtistNameExists):
			httputil.WriteConflict(w, err.Error())
		default:
			log.Printf("[ERROR] Create artist handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create artist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, artist)
}

func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	artistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid artist ID")
		return
	}

	artist, err := h.artistService.Get(r.Context(), artistID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrArtistNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] Get artist handler: %v", err)
			httputil.WriteInternalError(w, "Failed to fetch artist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, artist)
}

func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artistService.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] List artists handler: %v", err)
		httputil.WriteInternalError(w, "Failed to fetch artists")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, artists)
}

func (h *ArtistHandler) Update(w http.ResponseWriter, r *http.Request) {
	artistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid artist ID")
		return
	}

	var req model.CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	artist, err := h.artistService.Update(r.Context(), actor, artistID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrArtistNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "Only administrators can edit artists")
		case errors.Is(err, model.ErrNameRequired):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrArtistNameExists):
			httputil.WriteConflict(w, err.Error())
		default:
			log.Printf("[ERROR] Update artist handler: %v", err)
			httputil.WriteInternalError(w, "Failed to update artist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, artist)
}

func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	artistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid artist ID")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	if err := h.artistService.Delete(r.Context(), actor, artistID); err != nil {
		switch {
		case errors.Is(err, model.ErrArtistNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "Only administrators can delete artists")
		default:
			log.Printf("[ERROR] Delete artist handler: %v", err)
			httputil.WriteInternalError(w, "Failed to delete artist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Artist deleted",
	})
}
