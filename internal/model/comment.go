package model

import (
	"errors"
	"time"
)

// Comment represents a comment on a sound or a playlist. The target is
// implied by the repository it came from; TargetID references either
// sounds.id or playlists.id. The timestamp is server-assigned and immutable.
type Comment struct {
	ID        int64        `db:"id" json:"id"`
	TargetID  int64        `db:"target_id" json:"target_id"`
	UserID    int64        `db:"user_id" json:"-"`
	Message   string       `db:"message" json:"message"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	Author    *UserSummary `json:"author,omitempty"` // Joined field
}

// OwnerID implements access.Resource.
func (c *Comment) OwnerID() int64 { return c.UserID }

// CreateCommentRequest is the request body for posting a comment.
type CreateCommentRequest struct {
	Message string `json:"message"`
}

// UpdateCommentRequest is the request body for editing a comment.
type UpdateCommentRequest struct {
	Message string `json:"message"`
}

// Comment constraints
const (
	MaxCommentLength = 2000
)

// Comment errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrMessageRequired = errors.New("comment message is required")
	ErrMessageTooLong  = errors.New("comment message too long")
)
