package service

import (
	"context"
	"log"
	"mime/multipart"
	"strings"

	"soundspace/internal/access"
	"soundspace/internal/model"
	"soundspace/internal/repository"
	"soundspace/internal/view"
)

// AlbumService handles album metadata and cover pictures.
type AlbumService struct {
	albumRepo repository.AlbumRepository
	fileStore FileStore
	guard     *access.Guard
	assembler *view.Assembler
}

func NewAlbumService(
	albumRepo repository.AlbumRepository,
	fileStore FileStore,
	guard *access.Guard,
	assembler *view.Assembler,
) *AlbumService {
	return &AlbumService{
		albumRepo: albumRepo,
		fileStore: fileStore,
		guard:     guard,
		assembler: assembler,
	}
}

// Create adds an album owned by the actor.
func (s *AlbumService) Create(ctx context.Context, actor *access.Identity, req model.CreateAlbumRequest) (*model.Album, error) {
	if err := s.guard.Check(access.KindAlbum, access.OpCreate, actor, nil); err != nil {
		return nil, err
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, model.ErrTitleRequired
	}

	album := &model.Album{
		Title:     req.Title,
		Date:      req.Date,
		AddedByID: actor.UserID,
	}

	if err := s.albumRepo.Create(ctx, album); err != nil {
		return nil, err
	}

	return album, nil
}

// Get returns an album projection with its sound count, and nested sounds for
// the complete shape.
func (s *AlbumService) Get(ctx context.Context, albumID int64, kind view.Kind) (*view.AlbumView, error) {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	return s.assembler.Album(ctx, album, kind)
}

// List returns minimal projections of all albums.
func (s *AlbumService) List(ctx context.Context) ([]view.AlbumView, error) {
	albums, err := s.albumRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.assembler.Albums(ctx, albums)
}

// Update changes album fields. Owner or administrator only.
func (s *AlbumService) Update(ctx context.Context, actor *access.Identity, albumID int64, req model.UpdateAlbumRequest) (*model.Album, error) {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(access.KindAlbum, access.OpUpdate, actor, album); err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, model.ErrTitleRequired
		}
		album.Title = title
	}
	if req.Date != nil {
		album.Date = *req.Date
	}

	if err := s.albumRepo.Update(ctx, album); err != nil {
		return nil, err
	}

	return album, nil
}

// Delete removes the album and releases its cover picture. Sounds in the
// album are kept, their album reference is cleared by the schema.
func (s *AlbumService) Delete(ctx context.Context, actor *access.Identity, albumID int64) error {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return err
	}

	if err := s.guard.Check(access.KindAlbum, access.OpDelete, actor, album); err != nil {
		return err
	}

	if err := s.albumRepo.Delete(ctx, albumID); err != nil {
		return err
	}

	if album.PictureKey != nil {
		if err := s.fileStore.Delete(ctx, *album.PictureKey); err != nil {
			log.Printf("[AlbumService] Failed to delete cover %s: %v", *album.PictureKey, err)
		}
	}

	return nil
}

// SetCover uploads a new cover picture, replacing the previous one.
func (s *AlbumService) SetCover(ctx context.Context, actor *access.Identity, albumID int64, file multipart.File, header *multipart.FileHeader) (*model.Album, error) {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(access.KindAlbum, access.OpUpdate, actor, album); err != nil {
		return nil, err
	}

	oldKey := album.PictureKey

	result, err := s.fileStore.StorePicture(ctx, file, header, model.AlbumFolder)
	if err != nil {
		return nil, err
	}

	album.PictureURL = &result.URL
	album.PictureKey = &result.Key

	if err := s.albumRepo.Update(ctx, album); err != nil {
		if delErr := s.fileStore.Delete(ctx, result.Key); delErr != nil {
			log.Printf("[AlbumService] Failed to delete orphaned cover %s: %v", result.Key, delErr)
		}
		return nil, err
	}

	if oldKey != nil {
		if err := s.fileStore.Delete(ctx, *oldKey); err != nil {
			log.Printf("[AlbumService] Failed to delete old cover %s: %v", *oldKey, err)
		}
	}

	return album, nil
}
