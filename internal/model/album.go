package model

import (
	"errors"
	"time"
)

// Album groups sounds under a release date and cover picture.
type Album struct {
	ID         int64     `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Date       time.Time `db:"date" json:"date"`
	PictureURL *string   `db:"picture_url" json:"picture_url"`
	PictureKey *string   `db:"picture_key" json:"-"`
	AddedByID  int64     `db:"added_by" json:"added_by"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// OwnerID implements access.Resource.
func (a *Album) OwnerID() int64 { return a.AddedByID }

// CreateAlbumRequest is the request body for creating an album.
type CreateAlbumRequest struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// UpdateAlbumRequest is the request body for updating an album.
type UpdateAlbumRequest struct {
	Title *string    `json:"title"`
	Date  *time.Time `json:"date"`
}

var ErrAlbumNotFound = errors.New("album not found")
