package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"soundspace/internal/model"
)

const albumColumns = `id, title, date, picture_url, picture_key, added_by, created_at`

type albumRepository struct {
	db *sqlx.DB
}

func NewAlbumRepository(db *sqlx.DB) AlbumRepository {
	return &albumRepository{db: db}
}

func (r *albumRepository) Create(ctx context.Context, a *model.Album) error {
	query := `
		INSERT INTO albums (title, date, picture_url, picture_key, added_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, a.Title, a.Date, a.PictureURL, a.PictureKey, a.AddedByID)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert album: %w", err)
	}

	return nil
}

func (r *albumRepository) GetByID(ctx context.Context, id int64) (*model.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums WHERE id = $1`

	var a model.Album
	err := r.db.GetContext(ctx, &a, query, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrAlbumNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", err)
	}

	return &a, nil
}

func (r *albumRepository) List(ctx context.Context) ([]model.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums ORDER BY created_at DESC, id DESC`

	var albums []model.Album
	if err := r.db.SelectContext(ctx, &albums, query); err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}

	return albums, nil
}

func (r *albumRepository) ListByUser(ctx context.Context, userID int64) ([]model.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums WHERE added_by = $1 ORDER BY created_at DESC, id DESC`

	var albums []model.Album
	if err := r.db.SelectContext(ctx, &albums, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list albums by user: %w", err)
	}

	return albums, nil
}

func (r *albumRepository) Update(ctx context.Context, a *model.Album) error {
	query := `
		UPDATE albums
		SET title = $1, date = $2, picture_url = $3, picture_key = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, a.Title, a.Date, a.PictureURL, a.PictureKey, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update album: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrAlbumNotFound
	}

	return nil
}

func (r *albumRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrAlbumNotFound
	}

	return nil
}
