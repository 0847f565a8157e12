package handler

import (
	"errors"
	"log"
	"net/http"

	"soundspace/internal/httputil"
	"soundspace/internal/model"
	"soundspace/internal/service"
	"soundspace/internal/transport/http/middleware"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) LikeSound(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	soundID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid sound ID")
		return
	}

	if err := h.likeService.LikeSound(r.Context(), userID, soundID); err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyLiked):
			httputil.WriteConflict(w, err.Error())
		case errors.Is(err, model.ErrSoundNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] LikeSound handler: %v", err)
			httputil.WriteInternalError(w, "Failed to like sound")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Sound liked",
	})
}

func (h *LikeHandler) UnlikeSound(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	soundID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid sound ID")
		return
	}

	if err := h.likeService.UnlikeSound(r.Context(), userID, soundID); err != nil {
		switch {
		case errors.Is(err, model.ErrNotLiked):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] UnlikeSound handler: %v", err)
			httputil.WriteInternalError(w, "Failed to unlike sound")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Sound unliked",
	})
}

// SoundLikeStatus reports whether the authenticated user has liked the sound.
func (h *LikeHandler) SoundLikeStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	soundID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid sound ID")
		return
	}

	liked, err := h.likeService.IsSoundLiked(r.Context(), userID, soundID)
	if err != nil {
		log.Printf("[ERROR] SoundLikeStatus handler: %v", err)
		httputil.WriteInternalError(w, "Failed to check like status")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{
		"liked": liked,
	})
}

func (h *LikeHandler) LikePlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	playlistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}

	if err := h.likeService.LikePlaylist(r.Context(), userID, playlistID); err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyLiked):
			httputil.WriteConflict(w, err.Error())
		case errors.Is(err, model.ErrPlaylistNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] LikePlaylist handler: %v", err)
			httputil.WriteInternalError(w, "Failed to like playlist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Playlist liked",
	})
}

// PlaylistLikeStatus reports whether the authenticated user has liked the playlist.
func (h *LikeHandler) PlaylistLikeStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	playlistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}

	liked, err := h.likeService.IsPlaylistLiked(r.Context(), userID, playlistID)
	if err != nil {
		log.Printf("[ERROR] PlaylistLikeStatus handler: %v", err)
		httputil.WriteInternalError(w, "Failed to check like status")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{
		"liked": liked,
	})
}

func (h *LikeHandler) UnlikePlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	playlistID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}

	if err := h.likeService.UnlikePlaylist(r.Context(), userID, playlistID); err != nil {
		switch {
		case errors.Is(err, model.ErrNotLiked):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] UnlikePlaylist handler: %v", err)
			httputil.WriteInternalError(w, "Failed to unlike playlist")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Playlist unliked",
	})
}
