package model

import "errors"

// Artist is a lookup entity shared by sounds. Names are unique.
type Artist struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// OwnerID implements access.Resource. Artists have no owning user, so
// owner-based rules always fail and only admin rules can grant mutation.
func (a *Artist) OwnerID() int64 { return 0 }

// CreateArtistRequest is the request body for creating an artist.
type CreateArtistRequest struct {
	Name string `json:"name"`
}

var (
	ErrArtistNotFound   = errors.New("artist not found")
	ErrArtistNameExists = errors.New("artist name already exists")
	ErrNameRequired     = errors.New("name is required")
)
