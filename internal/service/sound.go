package service

import (
	"context"
	"log"
	"mime/multipart"
	"strings"

	"soundspace/internal/access"
	"soundspace/internal/model"
	"soundspace/internal/queue"
	"soundspace/internal/repository"
	"soundspace/internal/view"
)

// SoundService handles sound uploads and metadata.
type SoundService struct {
	soundRepo repository.SoundRepository
	styleRepo repository.StyleRepository
	fileStore FileStore
	guard     *access.Guard
	assembler *view.Assembler
	publisher queue.Publisher
}

func NewSoundService(
	soundRepo repository.SoundRepository,
	styleRepo repository.StyleRepository,
	fileStore FileStore,
	guard *access.Guard,
	assembler *view.Assembler,
	publisher queue.Publisher,
) *SoundService {
	return &SoundService{
		soundRepo: soundRepo,
		styleRepo: styleRepo,
		fileStore: fileStore,
		guard:     guard,
		assembler: assembler,
		publisher: publisher,
	}
}

// Upload validates the metadata, stores the audio file and creates the sound
// row. On success an upload event is published so followers of the uploader
// get notified; a publish failure never fails the upload.
func (s *SoundService) Upload(ctx context.Context, actor *access.Identity, req model.CreateSoundRequest, file multipart.File, header *multipart.FileHeader) (*model.Sound, error) {
	if err := s.guard.Check(access.KindSound, access.OpCreate, actor, nil); err != nil {
		return nil, err
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, model.ErrTitleRequired
	}
	if file == nil || header == nil {
		return nil, model.ErrFileRequired
	}

	if _, err := s.styleRepo.GetByID(ctx, req.StyleID); err != nil {
		return nil, err
	}

	result, err := s.fileStore.StoreSound(ctx, file, header)
	if err != nil {
		return nil, err
	}

	sound := &model.Sound{
		Title:     req.Title,
		StyleID:   req.StyleID,
		FileURL:   result.URL,
		FileKey:   result.Key,
		AlbumID:   req.AlbumID,
		ArtistID:  req.ArtistID,
		AddedByID: actor.UserID,
	}

	if err := s.soundRepo.Create(ctx, sound); err != nil {
		// Row insert failed, don't leak the stored file
		if delErr := s.fileStore.Delete(ctx, result.Key); delErr != nil {
			log.Printf("[SoundService] Failed to delete orphaned file %s: %v", result.Key, delErr)
		}
		return nil, err
	}

	log.Printf("[SoundService] User %d uploaded sound %d (%s)", actor.UserID, sound.ID, sound.Title)

	// Publish event for follower fan-out (after insert, best-effort)
	if s.publisher != nil {
		event := queue.NewSoundUploadedEvent(sound.ID, sound.AddedByID, sound.Title)
		if msgID, err := s.publisher.Publish(ctx, queue.StreamNotifications, event); err != nil {
			log.Printf("[SoundService] Failed to publish SoundUploaded event: sound=%d err=%v", sound.ID, err)
		} else {
			log.Printf("[SoundService] Published SoundUploaded: sound=%d msgID=%s", sound.ID, msgID)
		}
	}

	return sound, nil
}

// Get returns a sound projection with live counts.
func (s *SoundService) Get(ctx context.Context, soundID int64, kind view.Kind) (*view.SoundView, error) {
	sound, err := s.soundRepo.GetByID(ctx, soundID)
	if err != nil {
		return nil, err
	}
	return s.assembler.Sound(ctx, sound, kind)
}

// List returns minimal projections of all sounds.
func (s *SoundService) List(ctx context.Context) ([]view.SoundView, error) {
	sounds, err := s.soundRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.assembler.Sounds(ctx, sounds)
}

// ListByUser returns minimal projections of a user's uploads.
func (s *SoundService) ListByUser(ctx context.Context, userID int64) ([]view.SoundView, error) {
	sounds, err := s.soundRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.assembler.Sounds(ctx, sounds)
}

// Update changes sound metadata. Only the uploader or an administrator may
// edit; the uploader itself can never be reassigned.
func (s *SoundService) Update(ctx context.Context, actor *access.Identity, soundID int64, req model.UpdateSoundRequest) (*model.Sound, error) {
	sound, err := s.soundRepo.GetByID(ctx, soundID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(access.KindSound, access.OpUpdate, actor, sound); err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, model.ErrTitleRequired
		}
		sound.Title = title
	}
	if req.StyleID != nil {
		if _, err := s.styleRepo.GetByID(ctx, *req.StyleID); err != nil {
			return nil, err
		}
		sound.StyleID = *req.StyleID
	}
	if req.AlbumID != nil {
		sound.AlbumID = req.AlbumID
	}
	if req.ArtistID != nil {
		sound.ArtistID = req.ArtistID
	}

	if err := s.soundRepo.Update(ctx, sound); err != nil {
		return nil, err
	}

	return sound, nil
}

// Delete releases the stored file and then removes the sound row. Likes,
// comments and playlist memberships cascade with the row.
func (s *SoundService) Delete(ctx context.Context, actor *access.Identity, soundID int64) error {
	sound, err := s.soundRepo.GetByID(ctx, soundID)
	if err != nil {
		return err
	}

	if err := s.guard.Check(access.KindSound, access.OpDelete, actor, sound); err != nil {
		return err
	}

	// Release the file before the row goes; a failed release is logged, not fatal
	if err := s.fileStore.Delete(ctx, sound.FileKey); err != nil {
		log.Printf("[SoundService] Failed to delete file %s: %v", sound.FileKey, err)
	}

	if err := s.soundRepo.Delete(ctx, soundID); err != nil {
		return err
	}

	log.Printf("[SoundService] Deleted sound %d (%s)", sound.ID, sound.Title)
	return nil
}
