package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"soundspace/internal/model"
)

type playlistRepository struct {
	db *sqlx.DB
}

func NewPlaylistRepository(db *sqlx.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, p *model.Playlist) error {
	query := `
		INSERT INTO playlists (title, added_by, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, p.Title, p.AddedByID)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id int64) (*model.Playlist, error) {
	query := `SELECT id, title, added_by, created_at FROM playlists WHERE id = $1`

	var p model.Playlist
	err := r.db.GetContext(ctx, &p, query, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}

	return &p, nil
}

func (r *playlistRepository) List(ctx context.Context) ([]model.Playlist, error) {
	query := `SELECT id, title, added_by, created_at FROM playlists ORDER BY created_at DESC, id DESC`

	var playlists []model.Playlist
	if err := r.db.SelectContext(ctx, &playlists, query); err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	return playlists, nil
}

func (r *playlistRepository) ListByUser(ctx context.Context, userID int64) ([]model.Playlist, error) {
	query := `SELECT id, title, added_by, created_at FROM playlists WHERE added_by = $1 ORDER BY created_at DESC, id DESC`

	var playlists []model.Playlist
	if err := r.db.SelectContext(ctx, &playlists, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list playlists by user: %w", err)
	}

	return playlists, nil
}

func (r *playlistRepository) Update(ctx context.Context, p *model.Playlist) error {
	result, err := r.db.ExecContext(ctx, `UPDATE playlists SET title = $1 WHERE id = $2`, p.Title, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPlaylistNotFound
	}

	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPlaylistNotFound
	}

	return nil
}

// AddSound inserts the membership row; a duplicate add is a no-op.
func (r *playlistRepository) AddSound(ctx context.Context, playlistID, soundID int64) error {
	query := `
		INSERT INTO playlist_sounds (playlist_id, sound_id)
		VALUES ($1, $2)
		ON CONFLICT (playlist_id, sound_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, playlistID, soundID); err != nil {
		return fmt.Errorf("failed to add sound to playlist: %w", err)
	}
	return nil
}

func (r *playlistRepository) RemoveSound(ctx context.Context, playlistID, soundID int64) error {
	query := `DELETE FROM playlist_sounds WHERE playlist_id = $1 AND sound_id = $2`
	result, err := r.db.ExecContext(ctx, query, playlistID, soundID)
	if err != nil {
		return fmt.Errorf("failed to remove sound from playlist: %w", err)
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

func (r *playlistRepository) CountSounds(ctx context.Context, playlistID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM playlist_sounds WHERE playlist_id = $1`, playlistID)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to count playlist sounds: %w", err)
	}
	return count, nil
}
