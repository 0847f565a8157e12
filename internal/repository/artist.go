package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"soundspace/internal/model"
)

type artistRepository struct {
	db *sqlx.DB
}

func NewArtistRepository(db *sqlx.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, a *model.Artist) error {
	query := `INSERT INTO artists (name) VALUES ($1) RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, a.Name).Scan(&a.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.ErrArtistNameExists
		}
		return fmt.Errorf("failed to insert artist: %w", err)
	}

	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	var a model.Artist
	err := r.db.GetContext(ctx, &a, `SELECT id, name FROM artists WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}

	return &a, nil
}

func (r *artistRepository) List(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := r.db.SelectContext(ctx, &artists, `SELECT id, name FROM artists ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	return artists, nil
}

func (r *artistRepository) Update(ctx context.Context, a *model.Artist) error {
	result, err := r.db.ExecContext(ctx, `UPDATE artists SET name = $1 WHERE id = $2`, a.Name, a.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.ErrArtistNameExists
		}
		return fmt.Errorf("failed to update artist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrArtistNotFound
	}

	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrArtistNotFound
	}

	return nil
}
