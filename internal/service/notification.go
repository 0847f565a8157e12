package service

import (
	"context"
	"errors"
	"log"

	"soundspace/internal/model"
	"soundspace/internal/repository"
)

// Notifier delivers a push notification to a user. Delivery is best-effort:
// implementations never return an error to the caller, failures are logged.
type Notifier interface {
	Notify(ctx context.Context, userID int64, title, body, route string)
}

// NotificationService manages push subscriptions and delivers notifications
// through the Expo Push API.
type NotificationService struct {
	subRepo  repository.SubscriptionRepository
	expoPush *ExpoPushClient // Can be nil if push not configured
}

func NewNotificationService(subRepo repository.SubscriptionRepository, expoPush *ExpoPushClient) *NotificationService {
	return &NotificationService{
		subRepo:  subRepo,
		expoPush: expoPush,
	}
}

// RegisterDevice stores or replaces the user's push token. Each user has at
// most one subscription; re-registering overwrites the stored token.
func (s *NotificationService) RegisterDevice(ctx context.Context, userID int64, req model.RegisterSubscriptionRequest) error {
	if req.Token == "" {
		return model.ErrTokenRequired
	}
	return s.subRepo.Upsert(ctx, userID, req.Token)
}

// RemoveDevice deletes the user's push subscription (e.g. on logout).
func (s *NotificationService) RemoveDevice(ctx context.Context, userID int64) error {
	return s.subRepo.DeleteByUserID(ctx, userID)
}

// Notify sends a push notification to the user's registered device. The send
// happens in a goroutine so callers never wait on the push provider; a user
// without a subscription is silently skipped.
func (s *NotificationService) Notify(ctx context.Context, userID int64, title, body, route string) {
	if s.expoPush == nil {
		return
	}

	go func() {
		sub, err := s.subRepo.GetByUserID(context.Background(), userID)
		if err != nil {
			if !errors.Is(err, model.ErrSubscriptionNotFound) {
				log.Printf("[NotificationService] Failed to get subscription for user %d: %v", userID, err)
			}
			return
		}

		data := map[string]interface{}{
			"route": route,
		}

		if err := s.expoPush.SendToToken(sub.Token, title, body, data); err != nil {
			log.Printf("[NotificationService] Failed to send push to user %d: %v", userID, err)
		}
	}()
}
