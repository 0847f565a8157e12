package model

import (
	"errors"
	"time"
)

// Playlist is a user-curated set of sounds. Membership is many-to-many and
// playlists can themselves be liked, commented on and followed.
type Playlist struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	AddedByID int64     `db:"added_by" json:"added_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// OwnerID implements access.Resource.
func (p *Playlist) OwnerID() int64 { return p.AddedByID }

// CreatePlaylistRequest is the request body for creating a playlist.
type CreatePlaylistRequest struct {
	Title string `json:"title"`
}

// UpdatePlaylistRequest is the request body for renaming a playlist.
type UpdatePlaylistRequest struct {
	Title *string `json:"title"`
}

var ErrPlaylistNotFound = errors.New("playlist not found")
