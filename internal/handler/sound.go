package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"soundspace/internal/access"
	"soundspace/internal/httputil"
	"soundspace/internal/model"
	"soundspace/internal/service"
	"soundspace/internal/transport/http/middleware"
	"soundspace/internal/view"
)

type SoundHandler struct {
	soundService *service.SoundService
}

func NewSoundHandler(soundService *service.SoundService) *SoundHandler {
	return &SoundHandler{soundService: soundService}
}

// Upload handles multipart sound uploads. Metadata fields arrive as form
// values next to the "file" part.
func (h *SoundHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(model.MaxSoundSizeBytes); err != nil {
		httputil.WriteBadRequest(w, "Invalid multipart form")
		return
	}

	req := model.CreateSoundRequest{
		Title: r.FormValue("title"),
	}

	styleID, err := strconv.ParseInt(r.FormValue("style_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid style ID")
		return
	}
	req.StyleID = styleID

	if v := r.FormValue("album_id"); v != "" {
		albumID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httputil.WriteBadRequest(w, "Invalid album ID")
			return
		}
		req.AlbumID = &albumID
	}
	if v := r.FormValue("artist_id"); v != "" {
		artistID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httputil.WriteBadRequest(w, "Invalid artist ID")
			return
		}
		req.ArtistID = &artistID
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteBadRequest(w, "Sound file is required")
		return
	}
	defer file.Close()

	actor := middleware.GetIdentity(r.Context())
	sound, err := h.soundService.Upload(r.Context(), actor, req, file, header)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrDenied):
			httputil.WriteUnauthorized(w, "Authentication required")
		case errors.Is(err, model.ErrTitleRequired),
			errors.Is(err, model.ErrFileRequired),
			errors.Is(err, model.ErrFileTooLarge),
			errors.Is(err, model.ErrInvalidAudioType):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrStyleNotFound):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Upload sound handler: %v", err)
			httputil.WriteInternalError(w, "Failed to upload sound")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, sound)
}

func (h *SoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	soundID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid sound ID")
		return
	}

	sound, err := h.soundService.Get(r.Context(), soundID, view.Complete)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSoundNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] Get sound handler: %v", err)
			httputil.WriteInternalError(w, "Failed to fetch sound")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, sound)
}

func (h *SoundHandler) List(w http.ResponseWriter, r *http.Request) {
	sounds, err := h.soundService.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] List sounds handler: %v", err)
		httputil.WriteInternalError(w, "Failed to fetch sounds")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, sounds)
}

func (h *SoundHandler) Update(w http.ResponseWriter, r *http.Request) {
	soundID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid sound ID")
		return
	}

	var req model.UpdateSoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	sound, err := h.soundService.Update(r.Context(), actor, soundID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSoundNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot edit this sound")
		case errors.Is(err, model.ErrTitleRequired),
			errors.Is(err, model.ErrStyleNotFound):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Update sound handler: %v", err)
			httputil.WriteInternalError(w, "Failed to update sound")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, sound)
}

func (h *SoundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	soundID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid sound ID")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	if err := h.soundService.Delete(r.Context(), actor, soundID); err != nil {
		switch {
		case errors.Is(err, model.ErrSoundNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot delete this sound")
		default:
			log.Printf("[ERROR] Delete sound handler: %v", err)
			httputil.WriteInternalError(w, "Failed to delete sound")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Sound deleted",
	})
}
