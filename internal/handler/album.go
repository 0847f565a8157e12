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

type AlbumHandler struct {
	albumService *service.AlbumService
}

func NewAlbumHandler(albumService *service.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	album, err := h.albumService.Create(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrDenied):
			httputil.WriteUnauthorized(w, "Authentication required")
		case errors.Is(err, model.ErrTitleRequired):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Create album handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create album")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, album)
}

func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	albumID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid album ID")
		return
	}

	album, err := h.albumService.Get(r.Context(), albumID, view.Complete)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlbumNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] Get album handler: %v", err)
			httputil.WriteInternalError(w, "Failed to fetch album")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, album)
}

func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	albums, err := h.albumService.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] List albums handler: %v", err)
		httputil.WriteInternalError(w, "Failed to fetch albums")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, albums)
}

func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	albumID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid album ID")
		return
	}

	var req model.UpdateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	album, err := h.albumService.Update(r.Context(), actor, albumID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlbumNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot edit this album")
		case errors.Is(err, model.ErrTitleRequired):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Update album handler: %v", err)
			httputil.WriteInternalError(w, "Failed to update album")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, album)
}

func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	albumID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid album ID")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	if err := h.albumService.Delete(r.Context(), actor, albumID); err != nil {
		switch {
		case errors.Is(err, model.ErrAlbumNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot delete this album")
		default:
			log.Printf("[ERROR] Delete album handler: %v", err)
			httputil.WriteInternalError(w, "Failed to delete album")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Album deleted",
	})
}

// SetCover handles multipart uploads of a new album cover.
func (h *AlbumHandler) SetCover(w http.ResponseWriter, r *http.Request) {
	albumID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid album ID")
		return
	}

	if err := r.ParseMultipartForm(model.MaxPictureSizeBytes); err != nil {
		httputil.WriteBadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		httputil.WriteBadRequest(w, "Picture file is required")
		return
	}
	defer file.Close()

	actor := middleware.GetIdentity(r.Context())
	album, err := h.albumService.SetCover(r.Context(), actor, albumID, file, header)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlbumNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot edit this album")
		case errors.Is(err, model.ErrPictureTooLarge),
			errors.Is(err, model.ErrInvalidImageType):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] SetCover handler: %v", err)
			httputil.WriteInternalError(w, "Failed to upload cover")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, album)
}
