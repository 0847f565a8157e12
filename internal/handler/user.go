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

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] List users handler: %v", err)
		httputil.WriteInternalError(w, "Failed to fetch users")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	profile, err := h.userService.Get(r.Context(), userID, view.Complete)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] Get user handler: %v", err)
			httputil.WriteInternalError(w, "Failed to fetch user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	user, err := h.userService.Update(r.Context(), actor, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot edit this account")
		default:
			log.Printf("[ERROR] Update user handler: %v", err)
			httputil.WriteInternalError(w, "Failed to update user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	if err := h.userService.Delete(r.Context(), actor, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot delete this account")
		default:
			log.Printf("[ERROR] Delete user handler: %v", err)
			httputil.WriteInternalError(w, "Failed to delete user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Account deleted",
	})
}

// SetProfilePicture handles multipart uploads of a new profile picture.
func (h *UserHandler) SetProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
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
	picture, err := h.userService.SetProfilePicture(r.Context(), actor, userID, file, header)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot edit this account")
		case errors.Is(err, model.ErrPictureTooLarge),
			errors.Is(err, model.ErrInvalidImageType):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] SetProfilePicture handler: %v", err)
			httputil.WriteInternalError(w, "Failed to upload picture")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, picture)
}
