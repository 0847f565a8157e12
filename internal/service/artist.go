package service

import (
	"context"
	"strings"

	"soundspace/internal/access"
	"soundspace/internal/model"
	"soundspace/internal/repository"
)

// ArtistService manages the artist catalogue. Any authenticated user may add
// an artist; renames and removals are administrator-only since artists are
// shared across uploads.
type ArtistService struct {
	artistRepo repository.ArtistRepository
	guard      *access.Guard
}

func NewArtistService(artistRepo repository.ArtistRepository, guard *access.Guard) *ArtistService {
	return &ArtistService{artistRepo: artistRepo, guard: guard}
}

func (s *ArtistService) Create(ctx context.Context, actor *access.Identity, req model.CreateArtistRequest) (*model.Artist, error) {
	if err := s.guard.Check(access.KindArtist, access.OpCreate, actor, nil); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, model.ErrNameRequired
	}

	artist := &model.Artist{Name: req.Name}
	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *ArtistService) Get(ctx context.Context, artistID int64) (*model.Artist, error) {
	return s.artistRepo.GetByID(ctx, artistID)
}

func (s *ArtistService) List(ctx context.Context) ([]model.Artist, error) {
	return s.artistRepo.List(ctx)
}

func (s *ArtistService) Update(ctx context.Context, actor *access.Identity, artistID int64, req model.CreateArtistRequest) (*model.Artist, error) {
	artist, err := s.artistRepo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(access.KindArtist, access.OpUpdate, actor, artist); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, model.ErrNameRequired
	}
	artist.Name = req.Name

	if err := s.artistRepo.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *ArtistService) Delete(ctx context.Context, actor *access.Identity, artistID int64) error {
	artist, err := s.artistRepo.GetByID(ctx, artistID)
	if err != nil {
		return err
	}

	if err := s.guard.Check(access.KindArtist, access.OpDelete, actor, artist); err != nil {
		return err
	}

	return s.artistRepo.Delete(ctx, artistID)
}
