package model

import "errors"

// MusicStyle is a read-only lookup entity for ordinary users; only
// administrators manage the style catalogue.
type MusicStyle struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// OwnerID implements access.Resource. Styles are unowned.
func (s *MusicStyle) OwnerID() int64 { return 0 }

// CreateStyleRequest is the request body for creating a music style.
type CreateStyleRequest struct {
	Name string `json:"name"`
}

var ErrStyleNotFound = errors.New("music style not found")
