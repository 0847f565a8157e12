package service

import (
	"context"
	"strings"

	"soundspace/internal/access"
	"soundspace/internal/model"
	"soundspace/internal/repository"
)

// StyleService manages the music style catalogue. Styles are read-only for
// ordinary users; only administrators change the catalogue.
type StyleService struct {
	styleRepo repository.StyleRepository
	guard     *access.Guard
}

func NewStyleService(styleRepo repository.StyleRepository, guard *access.Guard) *StyleService {
	return &StyleService{styleRepo: styleRepo, guard: guard}
}

func (s *StyleService) Create(ctx context.Context, actor *access.Identity, req model.CreateStyleRequest) (*model.MusicStyle, error) {
	if err := s.guard.Check(access.KindStyle, access.OpCreate, actor, nil); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, model.ErrNameRequired
	}

	style := &model.MusicStyle{Name: req.Name}
	if err := s.styleRepo.Create(ctx, style); err != nil {
		return nil, err
	}
	return style, nil
}

func (s *StyleService) Get(ctx context.Context, styleID int64) (*model.MusicStyle, error) {
	return s.styleRepo.GetByID(ctx, styleID)
}

func (s *StyleService) List(ctx context.Context) ([]model.MusicStyle, error) {
	return s.styleRepo.List(ctx)
}

func (s *StyleService) Update(ctx context.Context, actor *access.Identity, styleID int64, req model.CreateStyleRequest) (*model.MusicStyle, error) {
	style, err := s.styleRepo.GetByID(ctx, styleID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(access.KindStyle, access.OpUpdate, actor, style); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, model.ErrNameRequired
	}
	style.Name = req.Name

	if err := s.styleRepo.Update(ctx, style); err != nil {
		return nil, err
	}
	return style, nil
}

func (s *StyleService) Delete(ctx context.Context, actor *access.Identity, styleID int64) error {
	style, err := s.styleRepo.GetByID(ctx, styleID)
	if err != nil {
		return err
	}

	if err := s.guard.Check(access.KindStyle, access.OpDelete, actor, style); err != nil {
		return err
	}

	return s.styleRepo.Delete(ctx, styleID)
}
