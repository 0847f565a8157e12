package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"soundspace/internal/model"
)

// commentRepository serves one comment table. Sound and playlist comments
// share a shape and differ only in the parent column, so the table and column
// names are fixed at construction.
type commentRepository struct {
	db        *sqlx.DB
	table     string
	targetCol string
}

func NewSoundCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db, table: "sound_comments", targetCol: "sound_id"}
}

func NewPlaylistCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db, table: "playlist_comments", targetCol: "playlist_id"}
}

// Create inserts the comment with a server-assigned timestamp.
func (r *commentRepository) Create(ctx context.Context, targetID, userID int64, message string) (*model.Comment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, user_id, message, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, %s AS target_id, user_id, message, created_at
	`, r.table, r.targetCol, r.targetCol)

	var comment model.Comment
	if err := r.db.GetContext(ctx, &comment, query, targetID, userID, message); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*model.Comment, error) {
	query := fmt.Sprintf(`
		SELECT id, %s AS target_id, user_id, message, created_at
		FROM %s
		WHERE id = $1
	`, r.targetCol, r.table)

	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err == sql.ErrNoRows {
		return nil, model.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &comment, nil
}

// ListByTarget returns all comments on the target, newest first, with the
// author summary joined in.
func (r *commentRepository) ListByTarget(ctx context.Context, targetID int64) ([]model.Comment, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.%s AS target_id, c.user_id, c.message, c.created_at,
		       u.id AS author_id, u.username AS author_username, p.picture_url AS author_picture_url
		FROM %s c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN profile_pictures p ON p.user_id = u.id
		WHERE c.%s = $1
		ORDER BY c.created_at DESC, c.id DESC
	`, r.targetCol, r.table, r.targetCol)

	type commentRow struct {
		ID               int64     `db:"id"`
		TargetID         int64     `db:"target_id"`
		UserID           int64     `db:"user_id"`
		Message          string    `db:"message"`
		CreatedAt        time.Time `db:"created_at"`
		AuthorID         int64     `db:"author_id"`
		AuthorUsername   string    `db:"author_username"`
		AuthorPictureURL *string   `db:"author_picture_url"`
	}

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, targetID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]model.Comment, len(rows))
	for i, row := range rows {
		comments[i] = model.Comment{
			ID:        row.ID,
			TargetID:  row.TargetID,
			UserID:    row.UserID,
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
			Author: &model.UserSummary{
				ID:         row.AuthorID,
				Username:   row.AuthorUsername,
				PictureURL: row.AuthorPictureURL,
			},
		}
	}

	return comments, nil
}

// Update changes the message only; created_at stays as first written.
func (r *commentRepository) Update(ctx context.Context, commentID int64, message string) (*model.Comment, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET message = $1
		WHERE id = $2
		RETURNING id, %s AS target_id, user_id, message, created_at
	`, r.table, r.targetCol)

	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, query, message, commentID)
	if err == sql.ErrNoRows {
		return nil, model.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), commentID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}

func (r *commentRepository) CountByTarget(ctx context.Context, targetID int64) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, r.table, r.targetCol)

	var count int
	if err := r.db.GetContext(ctx, &count, query, targetID); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}
