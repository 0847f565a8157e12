package model

import (
	"errors"
	"time"
)

// NotificationSubscription is a user's registered push token, one per user.
// Re-registering replaces the stored token.
type NotificationSubscription struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"-"`
	Token     string    `db:"token" json:"-"` // push token, hidden from JSON
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterSubscriptionRequest is the request body for registering a device.
type RegisterSubscriptionRequest struct {
	Token string `json:"token"`
}

var (
	ErrSubscriptionNotFound = errors.New("notification subscription not found")
	ErrTokenRequired        = errors.New("push token is required")
)
