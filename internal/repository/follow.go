package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"soundspace/internal/model"
)

// followRepository serves one follow table (user_followings or
// playlist_followings).
type followRepository struct {
	db    *sqlx.DB
	table string
}

func NewUserFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db, table: "user_followings"}
}

func NewPlaylistFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db, table: "playlist_followings"}
}

// Create inserts the follow edge. Same atomic check-and-insert as likes: the
// unique (follower, target) constraint rejects duplicates, reported via
// RowsAffected.
func (r *followRepository) Create(ctx context.Context, followerID, targetID int64) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (follower_id, target_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, target_id) DO NOTHING
	`, r.table)

	result, err := r.db.ExecContext(ctx, query, followerID, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, targetID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE follower_id = $1 AND target_id = $2`, r.table)

	result, err := r.db.ExecContext(ctx, query, followerID, targetID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotFollowing
	}

	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, targetID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE follower_id = $1 AND target_id = $2)`, r.table)

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, followerID, targetID); err != nil {
		return false, fmt.Errorf("failed to check follow existence: %w", err)
	}
	return exists, nil
}

// FollowerIDs returns the ids of every follower of the target. Used by the
// upload fan-out worker.
func (r *followRepository) FollowerIDs(ctx context.Context, targetID int64) ([]int64, error) {
	query := fmt.Sprintf(`SELECT follower_id FROM %s WHERE target_id = $1 ORDER BY created_at`, r.table)

	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, targetID)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get follower ids: %w", err)
	}
	return ids, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, targetID int64) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE target_id = $1`, r.table)

	var count int
	if err := r.db.GetContext(ctx, &count, query, targetID); err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}
