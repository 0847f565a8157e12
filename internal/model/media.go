package model

import "errors"

// Picture upload constraints (profile pictures and album covers are
// normalized to square JPEGs before storage).
const (
	MaxPictureSizeBytes = 5 * 1024 * 1024
	PictureWidth        = 400
	PictureHeight       = 400
	ProfileFolder       = "profiles"
	AlbumFolder         = "albums"
	PictureExt          = ".jpg"
	PictureCacheControl = "public, max-age=31536000"
)

// Supported image content types for upload validation
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeGIF  = "image/gif"
	ContentTypeWebP = "image/webp"
)

var allowedImageTypes = map[string]struct{}{
	ContentTypeJPEG: {},
	ContentTypePNG:  {},
	ContentTypeGIF:  {},
	ContentTypeWebP: {},
}

// IsAllowedImageType reports if the provided content type is supported
func IsAllowedImageType(contentType string) bool {
	_, ok := allowedImageTypes[contentType]
	return ok
}

// UploadResult represents an uploaded object location: the public-facing URL
// and the object key inside the bucket (needed for later deletes).
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Domain errors for media operations
var (
	ErrPictureTooLarge  = errors.New("picture too large")
	ErrInvalidImageType = errors.New("invalid image type")
)
