package service

import (
	"context"
	"errors"
	"testing"

	"soundspace/internal/model"
)

type mockSubscriptionRepository struct {
	upsertFn         func(ctx context.Context, userID int64, token string) error
	getByUserIDFn    func(ctx context.Context, userID int64) (*model.NotificationSubscription, error)
	deleteByUserIDFn func(ctx context.Context, userID int64) error

	upsertCalls int
}

func (m *mockSubscriptionRepository) Upsert(ctx context.Context, userID int64, token string) error {
	m.upsertCalls++
	if m.upsertFn != nil {
		return m.upsertFn(ctx, userID, token)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByUserID(ctx context.Context, userID int64) (*model.NotificationSubscription, error) {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID)
	}
	return nil, model.ErrSubscriptionNotFound
}

func (m *mockSubscriptionRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	if m.deleteByUserIDFn != nil {
		return m.deleteByUserIDFn(ctx, userID)
	}
	return nil
}

func TestNotificationService_RegisterDevice(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"valid token", "ExponentPushToken[abc123]", nil},
		{"empty token", "", model.ErrTokenRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subRepo := &mockSubscriptionRepository{}
			svc := NewNotificationService(subRepo, nil)

			err := svc.RegisterDevice(context.Background(), 1, model.RegisterSubscriptionRequest{Token: tt.token})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				if subRepo.upsertCalls != 0 {
					t.Errorf("Upsert called %d times, want 0", subRepo.upsertCalls)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if subRepo.upsertCalls != 1 {
				t.Errorf("Upsert called %d times, want 1", subRepo.upsertCalls)
			}
		})
	}
}

func TestNotificationService_RemoveDevice_NotSubscribed(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		deleteByUserIDFn: func(ctx context.Context, userID int64) error {
			return model.ErrSubscriptionNotFound
		},
	}
	svc := NewNotificationService(subRepo, nil)

	err := svc.RemoveDevice(context.Background(), 1)
	if !errors.Is(err, model.ErrSubscriptionNotFound) {
		t.Errorf("error = %v, want ErrSubscriptionNotFound", err)
	}
}

func TestNotificationService_Notify_NoPushClient(t *testing.T) {
	// With push unconfigured Notify is a no-op and must not touch the repo.
	called := false
	subRepo := &mockSubscriptionRepository{
		getByUserIDFn: func(ctx context.Context, userID int64) (*model.NotificationSubscription, error) {
			called = true
			return nil, model.ErrSubscriptionNotFound
		},
	}
	svc := NewNotificationService(subRepo, nil)

	svc.Notify(context.Background(), 1, "title", "body", "/details/1")

	if called {
		t.Error("expected no subscription lookup when push is not configured")
	}
}
