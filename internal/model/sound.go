package model

import (
	"errors"
	"time"
)

// Sound represents an uploaded track. The uploader (added_by) is set on
// creation and never changes.
type Sound struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	StyleID   int64     `db:"style_id" json:"style_id"`
	FileURL   string    `db:"file_url" json:"file_url"`
	FileKey   string    `db:"file_key" json:"-"`
	AlbumID   *int64    `db:"album_id" json:"album_id"`
	ArtistID  *int64    `db:"artist_id" json:"artist_id"`
	AddedByID int64     `db:"added_by" json:"added_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// OwnerID implements access.Resource.
func (s *Sound) OwnerID() int64 { return s.AddedByID }

// CreateSoundRequest carries the metadata of a sound upload. The file itself
// arrives as a multipart part and is handled by the media layer.
type CreateSoundRequest struct {
	Title    string `json:"title"`
	StyleID  int64  `json:"style_id"`
	AlbumID  *int64 `json:"album_id"`
	ArtistID *int64 `json:"artist_id"`
}

// UpdateSoundRequest is the request body for updating a sound. Nil fields are
// left unchanged; the owning user cannot be changed.
type UpdateSoundRequest struct {
	Title    *string `json:"title"`
	StyleID  *int64  `json:"style_id"`
	AlbumID  *int64  `json:"album_id"`
	ArtistID *int64  `json:"artist_id"`
}

// Sound upload constraints
const (
	MaxSoundSizeBytes = 50 * 1024 * 1024
	SoundFolder       = "sounds"
)

// Supported audio content types for upload validation
const (
	ContentTypeMPEG = "audio/mpeg"
	ContentTypeOgg  = "audio/ogg"
	ContentTypeWAV  = "audio/wav"
	ContentTypeFLAC = "audio/flac"
)

var allowedAudioTypes = map[string]struct{}{
	ContentTypeMPEG: {},
	ContentTypeOgg:  {},
	ContentTypeWAV:  {},
	ContentTypeFLAC: {},
}

// IsAllowedAudioType reports if the provided content type is supported
func IsAllowedAudioType(contentType string) bool {
	_, ok := allowedAudioTypes[contentType]
	return ok
}

// Sound errors
var (
	ErrSoundNotFound    = errors.New("sound not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrFileRequired     = errors.New("sound file is required")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidAudioType = errors.New("invalid audio type")
)
