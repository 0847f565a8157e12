package service

import (
	"context"
	"errors"
	"testing"

	"soundspace/internal/model"
)

func userRepoWithUsers(users map[int64]*model.User) *mockUserRepository {
	return &mockUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			if u, ok := users[id]; ok {
				return u, nil
			}
			return nil, model.ErrUserNotFound
		},
	}
}

func TestFollowService_FollowUser_Success(t *testing.T) {
	followRepo := &mockFollowRepository{}
	userRepo := userRepoWithUsers(map[int64]*model.User{
		1: {ID: 1, Username: "alice"},
		2: {ID: 2, Username: "bob"},
	})
	notifier := &mockNotifier{}
	svc := NewFollowService(followRepo, &mockFollowRepository{}, userRepo, &mockPlaylistRepository{}, notifier)

	err := svc.FollowUser(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if followRepo.createCalls != 1 {
		t.Errorf("Create called %d times, want 1", followRepo.createCalls)
	}

	// The followed user gets a push pointing at the follower's profile
	if len(notifier.notifications) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(notifier.notifications))
	}
	n := notifier.notifications[0]
	if n.UserID != 2 {
		t.Errorf("notified user %d, want 2", n.UserID)
	}
	if n.Route != "/profile/1" {
		t.Errorf("route = %q, want %q", n.Route, "/profile/1")
	}
	if n.Body != "alice now follows you" {
		t.Errorf("body = %q, want %q", n.Body, "alice now follows you")
	}
}

func TestFollowService_FollowUser_Self(t *testing.T) {
	followRepo := &mockFollowRepository{}
	svc := NewFollowService(followRepo, &mockFollowRepository{}, &mockUserRepository{}, &mockPlaylistRepository{}, &mockNotifier{})

	err := svc.FollowUser(context.Background(), 1, 1)
	if !errors.Is(err, model.ErrCannotFollowSelf) {
		t.Errorf("error = %v, want ErrCannotFollowSelf", err)
	}
	if followRepo.createCalls != 0 {
		t.Errorf("Create called %d times, want 0", followRepo.createCalls)
	}
}

func TestFollowService_FollowUser_TargetMissing(t *testing.T) {
	svc := NewFollowService(&mockFollowRepository{}, &mockFollowRepository{}, &mockUserRepository{}, &mockPlaylistRepository{}, &mockNotifier{})

	err := svc.FollowUser(context.Background(), 1, 42)
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestFollowService_FollowUser_AlreadyFollowing(t *testing.T) {
	followRepo := &mockFollowRepository{
		createFn: func(ctx context.Context, followerID, targetID int64) (bool, error) {
			return false, nil // edge already existed
		},
	}
	userRepo := userRepoWithUsers(map[int64]*model.User{
		2: {ID: 2, Username: "bob"},
	})
	notifier := &mockNotifier{}
	svc := NewFollowService(followRepo, &mockFollowRepository{}, userRepo, &mockPlaylistRepository{}, notifier)

	err := svc.FollowUser(context.Background(), 1, 2)
	if !errors.Is(err, model.ErrAlreadyFollowing) {
		t.Errorf("error = %v, want ErrAlreadyFollowing", err)
	}
	if len(notifier.notifications) != 0 {
		t.Errorf("sent %d notifications, want 0", len(notifier.notifications))
	}
}

func TestFollowService_UnfollowUser_NotFollowing(t *testing.T) {
	followRepo := &mockFollowRepository{
		deleteFn: func(ctx context.Context, followerID, targetID int64) error {
			return model.ErrNotFollowing
		},
	}
	svc := NewFollowService(followRepo, &mockFollowRepository{}, &mockUserRepository{}, &mockPlaylistRepository{}, &mockNotifier{})

	err := svc.UnfollowUser(context.Background(), 1, 2)
	if !errors.Is(err, model.ErrNotFollowing) {
		t.Errorf("error = %v, want ErrNotFollowing", err)
	}
}

func TestFollowService_IsFollowingUser(t *testing.T) {
	followRepo := &mockFollowRepository{
		existsFn: func(ctx context.Context, followerID, targetID int64) (bool, error) {
			return followerID == 1 && targetID == 2, nil
		},
	}
	svc := NewFollowService(followRepo, &mockFollowRepository{}, &mockUserRepository{}, &mockPlaylistRepository{}, &mockNotifier{})

	following, err := svc.IsFollowingUser(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !following {
		t.Error("expected following = true for an existing edge")
	}

	following, err = svc.IsFollowingUser(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if following {
		t.Error("expected following = false when no edge exists")
	}
}

func TestFollowService_FollowPlaylist_NotifiesOwner(t *testing.T) {
	playlistRepo := &mockPlaylistRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Playlist, error) {
			return &model.Playlist{ID: id, Title: "Morning Mix", AddedByID: 3}, nil
		},
	}
	userRepo := userRepoWithUsers(map[int64]*model.User{
		1: {ID: 1, Username: "alice"},
	})
	notifier := &mockNotifier{}
	svc := NewFollowService(&mockFollowRepository{}, &mockFollowRepository{}, userRepo, playlistRepo, notifier)

	err := svc.FollowPlaylist(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(notifier.notifications) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(notifier.notifications))
	}
	n := notifier.notifications[0]
	if n.UserID != 3 {
		t.Errorf("notified user %d, want 3", n.UserID)
	}
	if n.Route != "/playlists/7" {
		t.Errorf("route = %q, want %q", n.Route, "/playlists/7")
	}
}

func TestFollowService_FollowPlaylist_OwnerFollowsOwn(t *testing.T) {
	// Owners may follow their own playlist; they just don't get notified.
	playlistRepo := &mockPlaylistRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Playlist, error) {
			return &model.Playlist{ID: id, Title: "Morning Mix", AddedByID: 1}, nil
		},
	}
	followRepo := &mockFollowRepository{}
	notifier := &mockNotifier{}
	svc := NewFollowService(&mockFollowRepository{}, followRepo, &mockUserRepository{}, playlistRepo, notifier)

	err := svc.FollowPlaylist(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if followRepo.createCalls != 1 {
		t.Errorf("Create called %d times, want 1", followRepo.createCalls)
	}
	if len(notifier.notifications) != 0 {
		t.Errorf("sent %d notifications, want 0", len(notifier.notifications))
	}
}
