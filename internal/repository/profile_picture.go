package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"soundspace/internal/model"
)

type profilePictureRepository struct {
	db *sqlx.DB
}

func NewProfilePictureRepository(db *sqlx.DB) ProfilePictureRepository {
	return &profilePictureRepository{db: db}
}

func (r *profilePictureRepository) GetByUserID(ctx context.Context, userID int64) (*model.ProfilePicture, error) {
	query := `
		SELECT id, user_id, picture_url, picture_key
		FROM profile_pictures
		WHERE user_id = $1
	`

	var p model.ProfilePicture
	err := r.db.GetContext(ctx, &p, query, userID)
	if err == sql.ErrNoRows {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile picture: %w", err)
	}

	return &p, nil
}

// Upsert inserts the user's picture row or replaces its picture fields.
// user_id carries a unique constraint, so the signup hook and a concurrent
// first upload collapse into one row.
func (r *profilePictureRepository) Upsert(ctx context.Context, userID int64, pictureURL, pictureKey *string) (*model.ProfilePicture, error) {
	query := `
		INSERT INTO profile_pictures (user_id, picture_url, picture_key)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET picture_url = EXCLUDED.picture_url, picture_key = EXCLUDED.picture_key
		RETURNING id, user_id, picture_url, picture_key
	`

	var p model.ProfilePicture
	err := r.db.GetContext(ctx, &p, query, userID, pictureURL, pictureKey)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile picture: %w", err)
	}

	return &p, nil
}
