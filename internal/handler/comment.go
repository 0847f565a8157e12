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

// CommentHandler serves comments for one target type. Two instances are
// mounted, one under /sounds and one under /playlists.
type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	targetID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid target ID")
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	comment, err := h.commentService.Create(r.Context(), actor, targetID, req)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrDenied):
			httputil.WriteUnauthorized(w, "Authentication required")
		case errors.Is(err, model.ErrMessageRequired),
			errors.Is(err, model.ErrMessageTooLong):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrSoundNotFound),
			errors.Is(err, model.ErrPlaylistNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] Create comment handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create comment")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) ListByTarget(w http.ResponseWriter, r *http.Request) {
	targetID, ok := urlID(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid target ID")
		return
	}

	comments, err := h.commentService.ListByTarget(r.Context(), targetID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSoundNotFound),
			errors.Is(err, model.ErrPlaylistNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] List comments handler: %v", err)
			httputil.WriteInternalError(w, "Failed to fetch comments")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commentID, ok := urlID(r, "commentID")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	var req model.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	comment, err := h.commentService.Update(r.Context(), actor, commentID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot edit this comment")
		case errors.Is(err, model.ErrMessageRequired),
			errors.Is(err, model.ErrMessageTooLong):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Update comment handler: %v", err)
			httputil.WriteInternalError(w, "Failed to update comment")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, ok := urlID(r, "commentID")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	actor := middleware.GetIdentity(r.Context())
	if err := h.commentService.Delete(r.Context(), actor, commentID); err != nil {
		switch {
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteNotFound(w, err.Error())
		case errors.Is(err, access.ErrDenied):
			httputil.WriteForbidden(w, "You cannot delete this comment")
		default:
			log.Printf("[ERROR] Delete comment handler: %v", err)
			httputil.WriteInternalError(w, "Failed to delete comment")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Comment deleted",
	})
}
