package repository

import (
	"context"
	"fmt"
	"time"

	"aventra/internal/models"

	"github.com/jmoiron/sqlx"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(ctx context.Context, userID int64, targetType string, targetID int64) (bool, error) {
	var count int

	query := r.db.Rebind(`SELECT COUNT(*) FROM likes WHERE user_id = ? AND target_type = ? AND target_id = ?`)

	if err := r.db.GetContext(ctx, &count, query, userID, targetType, targetID); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return count > 0, nil
}

// Create inserts the like. A second like for the same user and target
// fails with ErrConflict.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	query := r.db.Rebind(`
		INSERT INTO likes (user_id, target_type, target_id, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)

	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query, like.UserID, like.TargetType, like.TargetID, like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("like on %s %d: %w", like.TargetType, like.TargetID, ErrConflict)
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	like.ID = id
	return nil
}

func (r *likeRepository) Count(ctx context.Context, targetType string, targetID int64) (int, error) {
	var count int

	query := r.db.Rebind(`SELECT COUNT(*) FROM likes WHERE target_type = ? AND target_id = ?`)

	if err := r.db.GetContext(ctx, &count, query, targetType, targetID); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID int64, targetType string, targetID int64) error {
	query := r.db.Rebind(`DELETE FROM likes WHERE user_id = ? AND target_type = ? AND target_id = ?`)

	result, err := r.db.ExecContext(ctx, query, userID, targetType, targetID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("like on %s %d: %w", targetType, targetID, ErrNotFound)
	}

	return nil
}
