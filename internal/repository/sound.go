package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"soundspace/internal/model"
)

const soundColumns = `id, title, style_id, file_url, file_key, album_id, artist_id, added_by, created_at`

type soundRepository struct {
	db *sqlx.DB
}

func NewSoundRepository(db *sqlx.DB) SoundRepository {
	return &soundRepository{db: db}
}

func (r *soundRepository) Create(ctx context.Context, s *model.Sound) error {
	query := `
		INSERT INTO sounds (title, style_id, file_url, file_key, album_id, artist_id, added_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		s.Title,
		s.StyleID,
		s.FileURL,
		s.FileKey,
		s.AlbumID,
		s.ArtistID,
		s.AddedByID,
	)

	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert sound: %w", err)
	}

	return nil
}

func (r *soundRepository) GetByID(ctx context.Context, id int64) (*model.Sound, error) {
	query := `SELECT ` + soundColumns + ` FROM sounds WHERE id = $1`

	var s model.Sound
	err := r.db.GetContext(ctx, &s, query, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrSoundNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sound: %w", err)
	}

	return &s, nil
}

func (r *soundRepository) List(ctx context.Context) ([]model.Sound, error) {
	query := `SELECT ` + soundColumns + ` FROM sounds ORDER BY created_at DESC, id DESC`

	var sounds []model.Sound
	if err := r.db.SelectContext(ctx, &sounds, query); err != nil {
		return nil, fmt.Errorf("failed to list sounds: %w", err)
	}

	return sounds, nil
}

func (r *soundRepository) ListByUser(ctx context.Context, userID int64) ([]model.Sound, error) {
	query := `SELECT ` + soundColumns + ` FROM sounds WHERE added_by = $1 ORDER BY created_at DESC, id DESC`

	var sounds []model.Sound
	if err := r.db.SelectContext(ctx, &sounds, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list sounds by user: %w", err)
	}

	return sounds, nil
}

func (r *soundRepository) ListByAlbum(ctx context.Context, albumID int64) ([]model.Sound, error) {
	query := `SELECT ` + soundColumns + ` FROM sounds WHERE album_id = $1 ORDER BY created_at DESC, id DESC`

	var sounds []model.Sound
	if err := r.db.SelectContext(ctx, &sounds, query, albumID); err != nil {
		return nil, fmt.Errorf("failed to list sounds by album: %w", err)
	}

	return sounds, nil
}

func (r *soundRepository) ListByPlaylist(ctx context.Context, playlistID int64) ([]model.Sound, error) {
	query := `
		SELECT s.id, s.title, s.style_id, s.file_url, s.file_key, s.album_id, s.artist_id, s.added_by, s.created_at
		FROM sounds s
		JOIN playlist_sounds ps ON ps.sound_id = s.id
		WHERE ps.playlist_id = $1
		ORDER BY s.created_at DESC, s.id DESC
	`

	var sounds []model.Sound
	if err := r.db.SelectContext(ctx, &sounds, query, playlistID); err != nil {
		return nil, fmt.Errorf("failed to list sounds by playlist: %w", err)
	}

	return sounds, nil
}

// Update persists mutable metadata. added_by is deliberately absent from the
// statement; ownership never changes.
func (r *soundRepository) Update(ctx context.Context, s *model.Sound) error {
	query := `
		UPDATE sounds
		SET title = $1, style_id = $2, album_id = $3, artist_id = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, s.Title, s.StyleID, s.AlbumID, s.ArtistID, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update sound: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrSoundNotFound
	}

	return nil
}

// Delete removes the sound row; comments, likes and playlist memberships
// referencing it are removed by ON DELETE CASCADE. Callers release the stored
// file before calling this.
func (r *soundRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sounds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sound: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrSoundNotFound
	}

	return nil
}

func (r *soundRepository) CountByAlbum(ctx context.Context, albumID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sounds WHERE album_id = $1`, albumID)
	if err != nil {
		return 0, fmt.Errorf("failed to count sounds by album: %w", err)
	}
	return count, nil
}

func (r *soundRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sounds WHERE added_by = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count sounds by user: %w", err)
	}
	return count, nil
}
