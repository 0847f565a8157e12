package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"soundspace/internal/model"
)

type subscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Upsert stores the user's push token, replacing any previous one. Each user
// has at most one subscription row.
func (r *subscriptionRepository) Upsert(ctx context.Context, userID int64, token string) error {
	query := `
		INSERT INTO notification_subscriptions (user_id, token, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET token = EXCLUDED.token, updated_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, userID, token); err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID int64) (*model.NotificationSubscription, error) {
	query := `
		SELECT id, user_id, token, created_at, updated_at
		FROM notification_subscriptions
		WHERE user_id = $1
	`

	var s model.NotificationSubscription
	err := r.db.GetContext(ctx, &s, query, userID)
	if err == sql.ErrNoRows {
		return nil, model.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &s, nil
}

func (r *subscriptionRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notification_subscriptions WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrSubscriptionNotFound
	}

	return nil
}
