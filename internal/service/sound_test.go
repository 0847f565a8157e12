package service

import (
	"context"
	"errors"
	"testing"

	"mime/multipart"

	"soundspace/internal/access"
	"soundspace/internal/model"
	"soundspace/internal/queue"
	"soundspace/internal/view"
)

// fakeUpload satisfies multipart.File for tests that never read the content.
type fakeUpload struct{}

func (fakeUpload) Read(p []byte) (int, error)                   { return 0, nil }
func (fakeUpload) ReadAt(p []byte, off int64) (int, error)      { return 0, nil }
func (fakeUpload) Seek(offset int64, whence int) (int64, error) { return 0, nil }
func (fakeUpload) Close() error                                 { return nil }

func newSoundServiceForTest(soundRepo *mockSoundRepository, styleRepo *mockStyleRepository, fileStore *mockFileStore, publisher *mockPublisher) *SoundService {
	return NewSoundService(soundRepo, styleRepo, fileStore, access.NewGuard(), newTestAssembler(soundRepo), publisher)
}

func uploadParts() (fakeUpload, *multipart.FileHeader) {
	return fakeUpload{}, &multipart.FileHeader{Filename: "track.mp3"}
}

func TestSoundService_Upload_Success(t *testing.T) {
	soundRepo := &mockSoundRepository{
		createFn: func(ctx context.Context, sound *model.Sound) error {
			sound.ID = 10
			return nil
		},
	}
	publisher := &mockPublisher{}
	svc := newSoundServiceForTest(soundRepo, &mockStyleRepository{}, &mockFileStore{}, publisher)

	file, header := uploadParts()
	sound, err := svc.Upload(context.Background(), &access.Identity{UserID: 1}, model.CreateSoundRequest{
		Title:   "First Track",
		StyleID: 3,
	}, file, header)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if sound.ID != 10 {
		t.Errorf("sound ID = %d, want 10", sound.ID)
	}
	if sound.AddedByID != 1 {
		t.Errorf("added_by = %d, want 1", sound.AddedByID)
	}
	if sound.FileURL == "" || sound.FileKey == "" {
		t.Error("expected the stored file URL and key on the sound")
	}

	// One upload event for follower fan-out
	if len(publisher.published) != 1 {
		t.Fatalf("published %d events, want 1", len(publisher.published))
	}
	ev := publisher.published[0]
	if ev.Stream != queue.StreamNotifications {
		t.Errorf("stream = %q, want %q", ev.Stream, queue.StreamNotifications)
	}
	if ev.Event.Type != queue.EventSoundUploaded {
		t.Errorf("event type = %q, want %q", ev.Event.Type, queue.EventSoundUploaded)
	}
	if ev.Event.SoundID != 10 || ev.Event.AuthorID != 1 {
		t.Errorf("event = %+v, want sound 10 by author 1", ev.Event)
	}
}

func TestSoundService_Upload_Validation(t *testing.T) {
	svc := newSoundServiceForTest(&mockSoundRepository{}, &mockStyleRepository{}, &mockFileStore{}, &mockPublisher{})
	actor := &access.Identity{UserID: 1}
	file, header := uploadParts()

	t.Run("anonymous denied", func(t *testing.T) {
		_, err := svc.Upload(context.Background(), nil, model.CreateSoundRequest{Title: "x", StyleID: 3}, file, header)
		if !errors.Is(err, access.ErrDenied) {
			t.Errorf("error = %v, want ErrDenied", err)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := svc.Upload(context.Background(), actor, model.CreateSoundRequest{Title: "  ", StyleID: 3}, file, header)
		if !errors.Is(err, model.ErrTitleRequired) {
			t.Errorf("error = %v, want ErrTitleRequired", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.Upload(context.Background(), actor, model.CreateSoundRequest{Title: "x", StyleID: 3}, nil, nil)
		if !errors.Is(err, model.ErrFileRequired) {
			t.Errorf("error = %v, want ErrFileRequired", err)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		styleRepo := &mockStyleRepository{
			getByIDFn: func(ctx context.Context, id int64) (*model.MusicStyle, error) {
				return nil, model.ErrStyleNotFound
			},
		}
		svc := newSoundServiceForTest(&mockSoundRepository{}, styleRepo, &mockFileStore{}, &mockPublisher{})
		_, err := svc.Upload(context.Background(), actor, model.CreateSoundRequest{Title: "x", StyleID: 99}, file, header)
		if !errors.Is(err, model.ErrStyleNotFound) {
			t.Errorf("error = %v, want ErrStyleNotFound", err)
		}
	})
}

func TestSoundService_Upload_InsertFails_ReleasesFile(t *testing.T) {
	soundRepo := &mockSoundRepository{
		createFn: func(ctx context.Context, sound *model.Sound) error {
			return errors.New("insert failed")
		},
	}
	fileStore := &mockFileStore{}
	publisher := &mockPublisher{}
	svc := newSoundServiceForTest(soundRepo, &mockStyleRepository{}, fileStore, publisher)

	file, header := uploadParts()
	_, err := svc.Upload(context.Background(), &access.Identity{UserID: 1}, model.CreateSoundRequest{
		Title:   "First Track",
		StyleID: 3,
	}, file, header)
	if err == nil {
		t.Fatal("expected an error")
	}

	// The freshly stored object must not leak
	if len(fileStore.deletedKeys) != 1 {
		t.Fatalf("deleted %d objects, want 1: %v", len(fileStore.deletedKeys), fileStore.deletedKeys)
	}
	if len(publisher.published) != 0 {
		t.Errorf("published %d events, want 0", len(publisher.published))
	}
}

func TestSoundService_Upload_PublishFailure_DoesNotFailUpload(t *testing.T) {
	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, stream string, event queue.NotificationEvent) (string, error) {
			return "", errors.New("redis down")
		},
	}
	svc := newSoundServiceForTest(&mockSoundRepository{}, &mockStyleRepository{}, &mockFileStore{}, publisher)

	file, header := uploadParts()
	sound, err := svc.Upload(context.Background(), &access.Identity{UserID: 1}, model.CreateSoundRequest{
		Title:   "First Track",
		StyleID: 3,
	}, file, header)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if sound == nil {
		t.Fatal("expected the sound despite the publish failure")
	}
}

func TestSoundService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		actor   *access.Identity
		wantErr error
	}{
		{"uploader can delete", &access.Identity{UserID: 1}, nil},
		{"admin can delete", &access.Identity{UserID: 99, IsAdmin: true}, nil},
		{"stranger denied", &access.Identity{UserID: 2}, access.ErrDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			soundRepo := &mockSoundRepository{
				getByIDFn: func(ctx context.Context, id int64) (*model.Sound, error) {
					return &model.Sound{ID: id, Title: "First Track", FileKey: "sounds/track.mp3", AddedByID: 1}, nil
				},
				deleteFn: func(ctx context.Context, id int64) error {
					calls = append(calls, "row")
					return nil
				},
			}
			fileStore := &mockFileStore{
				deleteFn: func(ctx context.Context, key string) error {
					calls = append(calls, "file")
					return nil
				},
			}
			svc := newSoundServiceForTest(soundRepo, &mockStyleRepository{}, fileStore, &mockPublisher{})

			err := svc.Delete(context.Background(), tt.actor, 10)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				if len(calls) != 0 {
					t.Errorf("calls = %v, want none", calls)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if soundRepo.deleteCalls != 1 {
				t.Errorf("Delete called %d times, want 1", soundRepo.deleteCalls)
			}
			// The stored file is released exactly once, before the row goes
			if len(fileStore.deletedKeys) != 1 || fileStore.deletedKeys[0] != "sounds/track.mp3" {
				t.Errorf("deleted objects = %v, want [sounds/track.mp3]", fileStore.deletedKeys)
			}
			if len(calls) != 2 || calls[0] != "file" || calls[1] != "row" {
				t.Errorf("call order = %v, want [file row]", calls)
			}
		})
	}
}

func TestSoundService_Update_UnknownStyle(t *testing.T) {
	soundRepo := &mockSoundRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Sound, error) {
			return &model.Sound{ID: id, Title: "First Track", StyleID: 3, AddedByID: 1}, nil
		},
	}
	styleRepo := &mockStyleRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.MusicStyle, error) {
			return nil, model.ErrStyleNotFound
		},
	}
	svc := newSoundServiceForTest(soundRepo, styleRepo, &mockFileStore{}, &mockPublisher{})

	badStyle := int64(99)
	_, err := svc.Update(context.Background(), &access.Identity{UserID: 1}, 10, model.UpdateSoundRequest{StyleID: &badStyle})
	if !errors.Is(err, model.ErrStyleNotFound) {
		t.Errorf("error = %v, want ErrStyleNotFound", err)
	}
}

func TestSoundService_Get_Projections(t *testing.T) {
	soundRepo := &mockSoundRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Sound, error) {
			return &model.Sound{ID: id, Title: "First Track", AddedByID: 1}, nil
		},
	}
	likeRepo := &mockLikeRepository{
		countByTargetFn: func(ctx context.Context, targetID int64) (int, error) {
			return 2, nil
		},
	}
	commentRepo := &mockCommentRepository{
		countByTargetFn: func(ctx context.Context, targetID int64) (int, error) {
			return 1, nil
		},
		listByTargetFn: func(ctx context.Context, targetID int64) ([]model.Comment, error) {
			return []model.Comment{{ID: 5, TargetID: targetID, Message: "nice"}}, nil
		},
	}
	assembler := view.NewAssembler(
		soundRepo,
		&mockAlbumRepository{},
		&mockPlaylistRepository{},
		likeRepo, &mockLikeRepository{},
		commentRepo, &mockCommentRepository{},
		&mockFollowRepository{}, &mockFollowRepository{},
	)
	svc := NewSoundService(soundRepo, &mockStyleRepository{}, &mockFileStore{}, access.NewGuard(), assembler, &mockPublisher{})

	minimal, err := svc.Get(context.Background(), 10, view.Minimal)
	if err != nil {
		t.Fatalf("minimal: expected no error, got: %v", err)
	}
	if minimal.LikeCount != 2 || minimal.CommentCount != 1 {
		t.Errorf("minimal counts = %d likes / %d comments, want 2 / 1", minimal.LikeCount, minimal.CommentCount)
	}
	if minimal.Comments != nil {
		t.Error("minimal view should not include nested comments")
	}

	complete, err := svc.Get(context.Background(), 10, view.Complete)
	if err != nil {
		t.Fatalf("complete: expected no error, got: %v", err)
	}
	if len(complete.Comments) != 1 || complete.Comments[0].Message != "nice" {
		t.Errorf("complete comments = %+v, want the nested comment", complete.Comments)
	}
}
