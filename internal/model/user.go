package model

import (
	"errors"
	"time"
)

// User represents a registered account.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	PasswordHashed string    `db:"password_hashed" json:"-"` // "-" hides from JSON output
	Email          *string   `db:"email" json:"email"`
	FirstName      *string   `db:"first_name" json:"first_name"`
	LastName       *string   `db:"last_name" json:"last_name"`
	IsAdmin        bool      `db:"is_admin" json:"is_admin"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`

	// Joined field (profile_pictures table)
	ProfilePicture *ProfilePicture `json:"profile_picture,omitempty"`
}

// OwnerID implements access.Resource. A user record is owned by itself,
// so update/delete is self-edit only (or admin).
func (u *User) OwnerID() int64 { return u.ID }

// UserSummary is the lightweight user shape embedded in other responses.
type UserSummary struct {
	ID         int64   `db:"id" json:"id"`
	Username   string  `db:"username" json:"username"`
	PictureURL *string `db:"picture_url" json:"picture_url"`
}

// ProfilePicture is the one-to-one picture record created for every user on
// registration. The key is the object-storage key of the current picture.
type ProfilePicture struct {
	ID         int64   `db:"id" json:"id"`
	UserID     int64   `db:"user_id" json:"-"`
	PictureURL *string `db:"picture_url" json:"picture_url"`
	PictureKey *string `db:"picture_key" json:"-"`
}

// RegisterRequest represents the data needed to register a new user
type RegisterRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// LoginRequest represents the data needed to log in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the request body for updating the account. Nil fields
// are left unchanged.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to create a user with a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired is returned when an access token is past its expiry
	ErrTokenExpired = errors.New("access token expired")
)
