package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"soundspace/internal/config"
	"soundspace/internal/model"
)

// FileStore abstracts the object storage used for sound files and pictures.
type FileStore interface {
	// StorePicture validates, normalizes to a square JPEG and uploads an image.
	StorePicture(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (*model.UploadResult, error)
	// StoreSound validates and uploads an audio file unchanged.
	StoreSound(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.UploadResult, error)
	// Delete removes an object by key. An empty key is a no-op.
	Delete(ctx context.Context, key string) error
}

// MediaService handles media uploads to S3-compatible object storage
// (Cloudflare R2).
type MediaService struct {
	s3Client  *s3.Client
	bucket    string
	publicURL string
}

// NewMediaService constructs an S3-compatible client for Cloudflare R2.
func NewMediaService(ctx context.Context, cfg *config.Config) (*MediaService, error) {
	if cfg.StorageAccountID == "" || cfg.StorageAccessKeyID == "" || cfg.StorageSecretAccessKey == "" || cfg.StorageBucketName == "" || cfg.StoragePublicURL == "" {
		return nil, fmt.Errorf("missing object storage configuration")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.StorageAccessKeyID, cfg.StorageSecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for storage: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.StorageAccountID)
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &MediaService{
		s3Client:  s3Client,
		bucket:    cfg.StorageBucketName,
		publicURL: strings.TrimSuffix(cfg.StoragePublicURL, "/"),
	}, nil
}

// StorePicture enforces size/type, normalizes to a square JPEG and uploads.
// folder selects the key prefix (profile pictures vs album covers).
func (s *MediaService) StorePicture(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (*model.UploadResult, error) {
	data, _, err := readAndValidate(file, header, model.MaxPictureSizeBytes, model.IsAllowedImageType, model.ErrPictureTooLarge, model.ErrInvalidImageType)
	if err != nil {
		return nil, err
	}

	jpegBytes, err := resizeToJPEG(data, model.PictureWidth, model.PictureHeight, 85)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), model.PictureExt)

	if err := s.putObject(ctx, key, jpegBytes, model.ContentTypeJPEG, model.PictureCacheControl); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s", s.publicURL, key)
	return &model.UploadResult{URL: url, Key: key}, nil
}

// StoreSound enforces size/type and uploads the audio bytes unchanged,
// keeping the original file extension.
func (s *MediaService) StoreSound(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.UploadResult, error) {
	data, contentType, err := readAndValidate(file, header, model.MaxSoundSizeBytes, model.IsAllowedAudioType, model.ErrFileTooLarge, model.ErrInvalidAudioType)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(header.Filename))
	if ext == "" {
		ext = ".mp3"
	}
	key := fmt.Sprintf("%s/%s%s", model.SoundFolder, uuid.NewString(), ext)

	if err := s.putObject(ctx, key, data, contentType, ""); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s", s.publicURL, key)
	return &model.UploadResult{URL: url, Key: key}, nil
}

// readAndValidate loads the upload into memory with size and type checks.
func readAndValidate(file multipart.File, header *multipart.FileHeader, maxSize int64, allowed func(string) bool, errTooLarge, errBadType error) ([]byte, string, error) {
	if header.Size > maxSize {
		return nil, "", errTooLarge
	}

	limitedReader := io.LimitReader(file, maxSize+1)
	data, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, "", errTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" && len(data) > 0 {
		contentType = http.DetectContentType(data[:min(len(data), 512)])
	}
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	if !allowed(contentType) {
		return nil, "", errBadType
	}

	return data, contentType, nil
}

// resizeToJPEG centers/crops to target size and encodes as JPEG.
func resizeToJPEG(data []byte, width, height, quality int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	return buf.Bytes(), nil
}

// putObject uploads bytes to the bucket with metadata.
func (s *MediaService) putObject(ctx context.Context, key string, body []byte, contentType, cacheControl string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}
	if cacheControl != "" {
		input.CacheControl = aws.String(cacheControl)
	}

	if _, err := s.s3Client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload to storage: %w", err)
	}
	return nil
}

// Delete removes an object by key.
func (s *MediaService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from storage: %w", err)
	}
	return nil
}
