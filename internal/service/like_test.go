package service

import (
	"context"
	"errors"
	"testing"

	"soundspace/internal/model"
)

func TestLikeService_LikeSound_NotifiesUploader(t *testing.T) {
	soundRepo := &mockSoundRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Sound, error) {
			return &model.Sound{ID: id, Title: "First Track", AddedByID: 2}, nil
		},
	}
	userRepo := userRepoWithUsers(map[int64]*model.User{
		1: {ID: 1, Username: "alice"},
	})
	notifier := &mockNotifier{}
	svc := NewLikeService(&mockLikeRepository{}, &mockLikeRepository{}, soundRepo, &mockPlaylistRepository{}, userRepo, notifier)

	err := svc.LikeSound(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(notifier.notifications) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(notifier.notifications))
	}
	n := notifier.notifications[0]
	if n.UserID != 2 {
		t.Errorf("notified user %d, want 2", n.UserID)
	}
	if n.Body != "alice liked First Track" {
		t.Errorf("body = %q, want %q", n.Body, "alice liked First Track")
	}
	if n.Route != "/details/10" {
		t.Errorf("route = %q, want %q", n.Route, "/details/10")
	}
}

func TestLikeService_LikeSound_OwnSound_NoNotification(t *testing.T) {
	soundRepo := &mockSoundRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Sound, error) {
			return &model.Sound{ID: id, Title: "First Track", AddedByID: 1}, nil
		},
	}
	notifier := &mockNotifier{}
	svc := NewLikeService(&mockLikeRepository{}, &mockLikeRepository{}, soundRepo, &mockPlaylistRepository{}, &mockUserRepository{}, notifier)

	err := svc.LikeSound(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(notifier.notifications) != 0 {
		t.Errorf("sent %d notifications, want 0", len(notifier.notifications))
	}
}

func TestLikeService_LikeSound_AlreadyLiked(t *testing.T) {
	soundRepo := &mockSoundRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Sound, error) {
			return &model.Sound{ID: id, Title: "First Track", AddedByID: 2}, nil
		},
	}
	likeRepo := &mockLikeRepository{
		createFn: func(ctx context.Context, targetID, userID int64) (bool, error) {
			return false, nil // edge already existed
		},
	}
	notifier := &mockNotifier{}
	svc := NewLikeService(likeRepo, &mockLikeRepository{}, soundRepo, &mockPlaylistRepository{}, &mockUserRepository{}, notifier)

	err := svc.LikeSound(context.Background(), 1, 10)
	if !errors.Is(err, model.ErrAlreadyLiked) {
		t.Errorf("error = %v, want ErrAlreadyLiked", err)
	}
	if len(notifier.notifications) != 0 {
		t.Errorf("sent %d notifications, want 0", len(notifier.notifications))
	}
}

func TestLikeService_LikeSound_SoundMissing(t *testing.T) {
	svc := NewLikeService(&mockLikeRepository{}, &mockLikeRepository{}, &mockSoundRepository{}, &mockPlaylistRepository{}, &mockUserRepository{}, &mockNotifier{})

	err := svc.LikeSound(context.Background(), 1, 42)
	if !errors.Is(err, model.ErrSoundNotFound) {
		t.Errorf("error = %v, want ErrSoundNotFound", err)
	}
}

func TestLikeService_UnlikeSound_NotLiked(t *testing.T) {
	likeRepo := &mockLikeRepository{
		deleteFn: func(ctx context.Context, targetID, userID int64) error {
			return model.ErrNotLiked
		},
	}
	svc := NewLikeService(likeRepo, &mockLikeRepository{}, &mockSoundRepository{}, &mockPlaylistRepository{}, &mockUserRepository{}, &mockNotifier{})

	err := svc.UnlikeSound(context.Background(), 1, 10)
	if !errors.Is(err, model.ErrNotLiked) {
		t.Errorf("error = %v, want ErrNotLiked", err)
	}
}

func TestLikeService_LikePlaylist_NotifiesOwner(t *testing.T) {
	playlistRepo := &mockPlaylistRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Playlist, error) {
			return &model.Playlist{ID: id, Title: "Morning Mix", AddedByID: 3}, nil
		},
	}
	userRepo := userRepoWithUsers(map[int64]*model.User{
		1: {ID: 1, Username: "alice"},
	})
	notifier := &mockNotifier{}
	svc := NewLikeService(&mockLikeRepository{}, &mockLikeRepository{}, &mockSoundRepository{}, playlistRepo, userRepo, notifier)

	err := svc.LikePlaylist(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(notifier.notifications) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(notifier.notifications))
	}
	if notifier.notifications[0].Route != "/playlists/7" {
		t.Errorf("route = %q, want %q", notifier.notifications[0].Route, "/playlists/7")
	}
}

func TestLikeService_IsSoundLiked(t *testing.T) {
	likeRepo := &mockLikeRepository{
		existsFn: func(ctx context.Context, targetID, userID int64) (bool, error) {
			return targetID == 10 && userID == 1, nil
		},
	}
	svc := NewLikeService(likeRepo, &mockLikeRepository{}, &mockSoundRepository{}, &mockPlaylistRepository{}, &mockUserRepository{}, &mockNotifier{})

	liked, err := svc.IsSoundLiked(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !liked {
		t.Error("expected liked = true for an existing edge")
	}

	liked, err = svc.IsSoundLiked(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if liked {
		t.Error("expected liked = false when no edge exists")
	}
}

func TestLikeService_IsPlaylistLiked(t *testing.T) {
	likeRepo := &mockLikeRepository{
		existsFn: func(ctx context.Context, targetID, userID int64) (bool, error) {
			return targetID == 7 && userID == 1, nil
		},
	}
	svc := NewLikeService(&mockLikeRepository{}, likeRepo, &mockSoundRepository{}, &mockPlaylistRepository{}, &mockUserRepository{}, &mockNotifier{})

	liked, err := svc.IsPlaylistLiked(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !liked {
		t.Error("expected liked = true for an existing edge")
	}
}
