package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"soundspace/internal/model"
)

type styleRepository struct {
	db *sqlx.DB
}

func NewStyleRepository(db *sqlx.DB) StyleRepository {
	return &styleRepository{db: db}
}

func (r *styleRepository) Create(ctx context.Context, s *model.MusicStyle) error {
	err := r.db.QueryRowxContext(ctx, `INSERT INTO music_styles (name) VALUES ($1) RETURNING id`, s.Name).
		Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to insert music style: %w", err)
	}
	return nil
}

func (r *styleRepository) GetByID(ctx context.Context, id int64) (*model.MusicStyle, error) {
	var s model.MusicStyle
	err := r.db.GetContext(ctx, &s, `SELECT id, name FROM music_styles WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrStyleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get music style: %w", err)
	}

	return &s, nil
}

func (r *styleRepository) List(ctx context.Context) ([]model.MusicStyle, error) {
	var styles []model.MusicStyle
	if err := r.db.SelectContext(ctx, &styles, `SELECT id, name FROM music_styles ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list music styles: %w", err)
	}

	return styles, nil
}

func (r *styleRepository) Update(ctx context.Context, s *model.MusicStyle) error {
	result, err := r.db.ExecContext(ctx, `UPDATE music_styles SET name = $1 WHERE id = $2`, s.Name, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update music style: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrStyleNotFound
	}

	return nil
}

func (r *styleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM music_styles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete music style: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrStyleNotFound
	}

	return nil
}
