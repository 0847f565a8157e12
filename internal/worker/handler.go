package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"soundspace/internal/model"
	"soundspace/internal/queue"
	"soundspace/internal/service"
)

// FollowerProvider fetches the followers of a user. Abstracts the repository
// layer so workers don't depend on the DB directly.
type FollowerProvider interface {
	FollowerIDs(ctx context.Context, targetID int64) ([]int64, error)
}

// UserProvider resolves user records for notification messages.
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// Handler processes notification events from the queue.
type Handler struct {
	followers FollowerProvider
	users     UserProvider
	notifier  service.Notifier
}

// NewHandler creates a new event handler.
func NewHandler(followers FollowerProvider, users UserProvider, notifier service.Notifier) *Handler {
	return &Handler{
		followers: followers,
		users:     users,
		notifier:  notifier,
	}
}

// HandleEvent routes an event to the appropriate handler based on type.
func (h *Handler) HandleEvent(ctx context.Context, event queue.NotificationEvent) error {
	startTime := time.Now()
	var err error

	switch event.Type {
	case queue.EventSoundUploaded:
		err = h.handleSoundUploaded(ctx, event)
	default:
		log.Printf("[Worker] Unknown event type: %s", event.Type)
		return fmt.Errorf("unknown event type: %s", event.Type)
	}

	if err != nil {
		log.Printf("[Worker] HandleEvent FAILED: type=%s duration=%v err=%v",
			event.Type, time.Since(startTime), err)
		return err
	}

	log.Printf("[Worker] HandleEvent OK: type=%s duration=%v", event.Type, time.Since(startTime))
	return nil
}

// handleSoundUploaded notifies every follower of the uploader about the new
// sound. A failed push for one follower does not stop the fan-out.
func (h *Handler) handleSoundUploaded(ctx context.Context, event queue.NotificationEvent) error {
	log.Printf("[Worker] SoundUploaded: sound=%d author=%d", event.SoundID, event.AuthorID)

	author, err := h.users.GetByID(ctx, event.AuthorID)
	if err != nil {
		return fmt.Errorf("get author: %w", err)
	}

	followers, err := h.followers.FollowerIDs(ctx, event.AuthorID)
	if err != nil {
		return fmt.Errorf("get followers: %w", err)
	}

	if len(followers) == 0 {
		log.Printf("[Worker] SoundUploaded: author=%d has no followers", event.AuthorID)
		return nil
	}

	log.Printf("[Worker] SoundUploaded: fanning out to %d followers", len(followers))

	title := "New Sound"
	body := author.Username + " uploaded " + event.SoundTitle
	route := fmt.Sprintf("/details/%d", event.SoundID)

	for _, followerID := range followers {
		h.notifier.Notify(ctx, followerID, title, body, route)
	}

	log.Printf("[Worker] SoundUploaded DONE: sound=%d fanout=%d", event.SoundID, len(followers))
	return nil
}
