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
	"soundspace/internal/view"
)

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	playlist, err := h.playlistService.Create(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrDenied):
			httputil.WriteUnauthorized(w, "Authentication required")
		case errors.Is(err, model.ErrTitleRequired):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Create playlist handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create playlist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, playlist)
}

func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}

	playlist, err := h.playlistService.Get(r.Context(), playlistID, view.Complete)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPlaylistNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] Get playlist handler: %v", err)
			httputil.WriteInternalError(w, "Failed to fetch playlist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, playlist)
}

func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.playlistService.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] List playlists handler: %v", err)
		httputil.WriteInternalError(w, "Failed to fetch playlists")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, playlists)
}

func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}

	var req model.UpdatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	playlist, err := h.playlistService.Update(r.Context(), actor, playlistID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPlaylistNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot edit this playlist")
		case errors.Is(err, model.ErrTitleRequired):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Update playlist handler: %v", err)
			httputil.WriteInternalError(w, "Failed to update playlist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, playlist)
}

func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	if err := h.playlistService.Delete(r.Context(), actor, playlistID); err != nil {
		switch {
		case errors.Is(err, model.ErrPlaylistNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot delete this playlist")
		default:
			log.Printf("[ERROR] Delete playlist handler: %v", err)
			httputil.WriteInternalError(w, "Failed to delete playlist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Playlist deleted",
	})
}

func (h *PlaylistHandler) AddSound(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}
	soundID, ok := urlID(r, "soundID")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid sound ID")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	if err := h.playlistService.AddSound(r.Context(), actor, playlistID, soundID); err != nil {
		switch {
		case errors.Is(err, model.ErrPlaylistNotFound),
			errors.Is(err, model.ErrSoundNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot edit this playlist")
		default:
			log.Printf("[ERROR] AddSound handler: %v", err)
			httputil.WriteInternalError(w, "Failed to add sound to playlist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Sound added to playlist",
	})
}

func (h *PlaylistHandler) RemoveSound(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}
	soundID, ok := urlID(r, "soundID")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid sound ID")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	if err := h.playlistService.RemoveSound(r.Context(), actor, playlistID, soundID); err != nil {
		switch {
		case errors.Is(err, model.ErrPlaylistNotFound),
			errors.Is(err, model.ErrSoundNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot edit this playlist")
		default:
			log.Printf("[ERROR] RemoveSound handler: %v", err)
			httputil.WriteInternalError(w, "Failed to remove sound from playlist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Sound removed from playlist",
	})
}
