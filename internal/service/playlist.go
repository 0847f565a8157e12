package service

import (
	"context"
	"log"
	"strings"

	"soundspace/internal/access"
	"soundspace/internal/model"
	"soundspace/internal/repository"
	"soundspace/internal/view"
)

// PlaylistService handles playlists and their sound membership.
type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	soundRepo    repository.SoundRepository
	guard        *access.Guard
	assembler    *view.Assembler
}

func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	soundRepo repository.SoundRepository,
	guard *access.Guard,
	assembler *view.Assembler,
) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		soundRepo:    soundRepo,
		guard:        guard,
		assembler:    assembler,
	}
}

// Create adds a playlist owned by the actor.
func (s *PlaylistService) Create(ctx context.Context, actor *access.Identity, req model.CreatePlaylistRequest) (*model.Playlist, error) {
	if err := s.guard.Check(access.KindPlaylist, access.OpCreate, actor, nil); err != nil {
		return nil, err
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, model.ErrTitleRequired
	}

	playlist := &model.Playlist{
		Title:     req.Title,
		AddedByID: actor.UserID,
	}

	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

// Get returns a playlist projection with live counts, and nested sounds and
// comments for the complete shape.
func (s *PlaylistService) Get(ctx context.Context, playlistID int64, kind view.Kind) (*view.PlaylistView, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return s.assembler.Playlist(ctx, playlist, kind)
}

// List returns minimal projections of all playlists.
func (s *PlaylistService) List(ctx context.Context) ([]view.PlaylistView, error) {
	playlists, err := s.playlistRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.assembler.Playlists(ctx, playlists)
}

// Update renames the playlist. Owner or administrator only.
func (s *PlaylistService) Update(ctx context.Context, actor *access.Identity, playlistID int64, req model.UpdatePlaylistRequest) (*model.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(access.KindPlaylist, access.OpUpdate, actor, playlist); err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, model.ErrTitleRequired
		}
		playlist.Title = title
	}

	if err := s.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

// Delete removes the playlist. Membership rows, likes, comments and follow
// edges cascade; the sounds themselves are untouched.
func (s *PlaylistService) Delete(ctx context.Context, actor *access.Identity, playlistID int64) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}

	if err := s.guard.Check(access.KindPlaylist, access.OpDelete, actor, playlist); err != nil {
		return err
	}

	if err := s.playlistRepo.Delete(ctx, playlistID); err != nil {
		return err
	}

	log.Printf("[PlaylistService] Deleted playlist %d (%s)", playlist.ID, playlist.Title)
	return nil
}

// AddSound puts a sound into the playlist. Adding the same sound twice is a
// no-op. Owner or administrator only.
func (s *PlaylistService) AddSound(ctx context.Context, actor *access.Identity, playlistID, soundID int64) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}

	if err := s.guard.Check(access.KindPlaylist, access.OpUpdate, actor, playlist); err != nil {
		return err
	}

	if _, err := s.soundRepo.GetByID(ctx, soundID); err != nil {
		return err
	}

	return s.playlistRepo.AddSound(ctx, playlistID, soundID)
}

// RemoveSound takes a sound out of the playlist. Owner or administrator only.
func (s *PlaylistService) RemoveSound(ctx context.Context, actor *access.Identity, playlistID, soundID int64) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}

	if err := s.guard.Check(access.KindPlaylist, access.OpUpdate, actor, playlist); err != nil {
		return err
	}

	return s.playlistRepo.RemoveSound(ctx, playlistID, soundID)
}
