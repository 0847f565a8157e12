package service

import (
	"context"
	"fmt"
	"log"

	"soundspace/internal/model"
	"soundspace/internal/repository"
)

// LikeService handles like edges on sounds and playlists. A user likes a
// target at most once; the second like is rejected.
type LikeService struct {
	soundLikeRepo    repository.LikeRepository
	playlistLikeRepo repository.LikeRepository
	soundRepo        repository.SoundRepository
	playlistRepo     repository.PlaylistRepository
	userRepo         repository.UserRepository
	notifier         Notifier
}

func NewLikeService(
	soundLikeRepo repository.LikeRepository,
	playlistLikeRepo repository.LikeRepository,
	soundRepo repository.SoundRepository,
	playlistRepo repository.PlaylistRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *LikeService {
	return &LikeService{
		soundLikeRepo:    soundLikeRepo,
		playlistLikeRepo: playlistLikeRepo,
		soundRepo:        soundRepo,
		playlistRepo:     playlistRepo,
		userRepo:         userRepo,
		notifier:         notifier,
	}
}

// LikeSound creates a like edge and notifies the sound's uploader.
func (s *LikeService) LikeSound(ctx context.Context, userID, soundID int64) error {
	sound, err := s.soundRepo.GetByID(ctx, soundID)
	if err != nil {
		return err
	}

	inserted, err := s.soundLikeRepo.Create(ctx, soundID, userID)
	if err != nil {
		return err
	}
	if !inserted {
		return model.ErrAlreadyLiked
	}

	log.Printf("[LikeService] User %d liked sound %d", userID, soundID)

	if s.notifier != nil && sound.AddedByID != userID {
		if actor, err := s.userRepo.GetByID(ctx, userID); err == nil {
			s.notifier.Notify(ctx, sound.AddedByID,
				"New Like",
				actor.Username+" liked "+sound.Title,
				fmt.Sprintf("/details/%d", soundID))
		}
	}

	return nil
}

// UnlikeSound removes the like edge. Unliking a sound not liked fails.
func (s *LikeService) UnlikeSound(ctx context.Context, userID, soundID int64) error {
	return s.soundLikeRepo.Delete(ctx, soundID, userID)
}

// IsSoundLiked reports whether the user has liked the sound.
func (s *LikeService) IsSoundLiked(ctx context.Context, userID, soundID int64) (bool, error) {
	return s.soundLikeRepo.Exists(ctx, soundID, userID)
}

// LikePlaylist creates a like edge and notifies the playlist's owner.
func (s *LikeService) LikePlaylist(ctx context.Context, userID, playlistID int64) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}

	inserted, err := s.playlistLikeRepo.Create(ctx, playlistID, userID)
	if err != nil {
		return err
	}
	if !inserted {
		return model.ErrAlreadyLiked
	}

	log.Printf("[LikeService] User %d liked playlist %d", userID, playlistID)

	if s.notifier != nil && playlist.AddedByID != userID {
		if actor, err := s.userRepo.GetByID(ctx, userID); err == nil {
			s.notifier.Notify(ctx, playlist.AddedByID,
				"New Like",
				actor.Username+" liked your playlist "+playlist.Title,
				fmt.Sprintf("/playlists/%d", playlistID))
		}
	}

	return nil
}

// UnlikePlaylist removes the like edge.
func (s *LikeService) UnlikePlaylist(ctx context.Context, userID, playlistID int64) error {
	return s.playlistLikeRepo.Delete(ctx, playlistID, userID)
}

// IsPlaylistLiked reports whether the user has liked the playlist.
func (s *LikeService) IsPlaylistLiked(ctx context.Context, userID, playlistID int64) (bool, error) {
	return s.playlistLikeRepo.Exists(ctx, playlistID, userID)
}
