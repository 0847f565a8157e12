package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"soundspace/internal/model"
)

// likeRepository serves one like table (sound_likes or playlist_likes).
type likeRepository struct {
	db        *sqlx.DB
	table     string
	targetCol string
}

func NewSoundLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db, table: "sound_likes", targetCol: "sound_id"}
}

func NewPlaylistLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db, table: "playlist_likes", targetCol: "playlist_id"}
}

// Create inserts the like edge. The unique constraint on (target, user) makes
// check-and-insert a single atomic statement; a duplicate reports false via
// RowsAffected instead of inserting a second row.
func (r *likeRepository) Create(ctx context.Context, targetID, userID int64) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (%s, user_id) DO NOTHING
	`, r.table, r.targetCol, r.targetCol)

	result, err := r.db.ExecContext(ctx, query, targetID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to create like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *likeRepository) Delete(ctx context.Context, targetID, userID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND user_id = $2`, r.table, r.targetCol)

	result, err := r.db.ExecContext(ctx, query, targetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotLiked
	}

	return nil
}

func (r *likeRepository) Exists(ctx context.Context, targetID, userID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND user_id = $2)`, r.table, r.targetCol)

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, targetID, userID); err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return exists, nil
}

func (r *likeRepository) CountByTarget(ctx context.Context, targetID int64) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, r.table, r.targetCol)

	var count int
	if err := r.db.GetContext(ctx, &count, query, targetID); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
