package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"aventra/internal/models"

	"github.com/jmoiron/sqlx"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO comments (post_id, user_id, text, rating, image, parent_comment_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		comment.PostID, comment.UserID, comment.Text, comment.Rating,
		comment.Image, comment.ParentCommentID, comment.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create comment: %w", err)
	}

	comment.ID = id
	return id, nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	var comment models.Comment

	query := r.db.Rebind(`
		SELECT id, post_id, user_id, text, rating, image, parent_comment_id, created_at
		FROM comments WHERE id = ?
	`)

	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

// ListByPost returns the post's comments flat, oldest first, each joined
// with its author's username and like count.
func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]models.CommentRow, error) {
	rows := []models.CommentRow{}

	query := r.db.Rebind(`
		SELECT
			c.id, c.post_id, c.user_id, c.text, c.rating, c.image, c.parent_comment_id, c.created_at,
			u.username AS username,
			(SELECT COUNT(*) FROM likes l WHERE l.target_type = 'comment' AND l.target_id = c.id) AS likes
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.post_id = ?
		ORDER BY c.created_at ASC, c.id ASC
	`)

	if err := r.db.SelectContext(ctx, &rows, query, postID); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return rows, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := r.db.Rebind(`
		UPDATE comments SET
			text = ?,
			rating = ?,
			image = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query, comment.Text, comment.Rating, comment.Image, comment.ID)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("comment %d: %w", comment.ID, ErrNotFound)
	}

	return nil
}

// Delete removes the comment, its direct replies and their likes.
// Replies of replies are left in place with a dangling parent id; the tree
// builder lifts them to the root.
func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := execStatements(ctx, tx, commentID,
			`DELETE FROM likes WHERE target_type = 'comment' AND target_id IN (SELECT id FROM comments WHERE parent_comment_id = ?)`,
			`DELETE FROM comments WHERE parent_comment_id = ?`,
			`DELETE FROM likes WHERE target_type = 'comment' AND target_id = ?`,
		)
		if err != nil {
			return fmt.Errorf("failed to delete comment dependents: %w", err)
		}

		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM comments WHERE id = ?`), commentID)
		if err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check deleted rows: %w", err)
		}

		if rowsAffected == 0 {
			return fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
		}

		return nil
	})
}
