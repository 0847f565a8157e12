package service

import (
	"context"
	"fmt"
	"log"

	"soundspace/internal/model"
	"soundspace/internal/repository"
)

// FollowService handles follow edges, both user-to-user and user-to-playlist.
// The (follower, target) pair is unique; following twice is rejected rather
// than silently absorbed.
type FollowService struct {
	userFollowRepo     repository.FollowRepository
	playlistFollowRepo repository.FollowRepository
	userRepo           repository.UserRepository
	playlistRepo       repository.PlaylistRepository
	notifier           Notifier
}

func NewFollowService(
	userFollowRepo repository.FollowRepository,
	playlistFollowRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	playlistRepo repository.PlaylistRepository,
	notifier Notifier,
) *FollowService {
	return &FollowService{
		userFollowRepo:     userFollowRepo,
		playlistFollowRepo: playlistFollowRepo,
		userRepo:           userRepo,
		playlistRepo:       playlistRepo,
		notifier:           notifier,
	}
}

// FollowUser creates a follow edge and notifies the followed user.
func (s *FollowService) FollowUser(ctx context.Context, followerID, targetID int64) error {
	if followerID == targetID {
		return model.ErrCannotFollowSelf
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	inserted, err := s.userFollowRepo.Create(ctx, followerID, targetID)
	if err != nil {
		return err
	}
	if !inserted {
		return model.ErrAlreadyFollowing
	}

	log.Printf("[FollowService] User %d now follows user %d", followerID, targetID)

	if s.notifier != nil {
		if follower, err := s.userRepo.GetByID(ctx, followerID); err == nil {
			s.notifier.Notify(ctx, targetID,
				"New Follower",
				follower.Username+" now follows you",
				fmt.Sprintf("/profile/%d", followerID))
		}
	}

	return nil
}

// UnfollowUser removes the follow edge. Unfollowing someone not followed
// fails; no notification is sent.
func (s *FollowService) UnfollowUser(ctx context.Context, followerID, targetID int64) error {
	return s.userFollowRepo.Delete(ctx, followerID, targetID)
}

// IsFollowingUser reports whether the follow edge exists.
func (s *FollowService) IsFollowingUser(ctx context.Context, followerID, targetID int64) (bool, error) {
	return s.userFollowRepo.Exists(ctx, followerID, targetID)
}

// FollowPlaylist creates a follow edge on a playlist and notifies its owner.
// Owners may follow their own playlists; only self-follow of users is
// meaningless.
func (s *FollowService) FollowPlaylist(ctx context.Context, followerID, playlistID int64) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}

	inserted, err := s.playlistFollowRepo.Create(ctx, followerID, playlistID)
	if err != nil {
		return err
	}
	if !inserted {
		return model.ErrAlreadyFollowing
	}

	log.Printf("[FollowService] User %d now follows playlist %d", followerID, playlistID)

	if s.notifier != nil && playlist.AddedByID != followerID {
		if follower, err := s.userRepo.GetByID(ctx, followerID); err == nil {
			s.notifier.Notify(ctx, playlist.AddedByID,
				"New Playlist Follower",
				follower.Username+" now follows your playlist "+playlist.Title,
				fmt.Sprintf("/playlists/%d", playlistID))
		}
	}

	return nil
}

// UnfollowPlaylist removes the playlist follow edge.
func (s *FollowService) UnfollowPlaylist(ctx context.Context, followerID, playlistID int64) error {
	return s.playlistFollowRepo.Delete(ctx, followerID, playlistID)
}
