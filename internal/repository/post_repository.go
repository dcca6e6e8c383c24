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

const postSummaryColumns = `
	p.id, p.user_id, p.title, p.content, p.image, p.extra, p.created_at,
	u.username AS username,
	(SELECT COUNT(*) FROM likes l WHERE l.target_type = 'post' AND l.target_id = p.id) AS likes,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count
`

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO posts (user_id, title, content, image, extra, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		post.UserID, post.Title, post.Content, post.Image, post.Extra, post.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	post.ID = id
	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post

	query := r.db.Rebind(`SELECT id, user_id, title, content, image, extra, created_at FROM posts WHERE id = ?`)

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetSummary(ctx context.Context, postID int64) (*models.PostSummary, error) {
	var post models.PostSummary

	query := r.db.Rebind(`
		SELECT ` + postSummaryColumns + `
		FROM posts p
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.id = ?
	`)

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.PostSummary, error) {
	posts := []models.PostSummary{}

	query := `
		SELECT ` + postSummaryColumns + `
		FROM posts p
		LEFT JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC, p.id DESC
	`

	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// Update overwrites the editable columns; the caller merges partial input.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := r.db.Rebind(`
		UPDATE posts SET
			title = ?,
			content = ?,
			image = ?,
			extra = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query, post.Title, post.Content, post.Image, post.Extra, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", post.ID, ErrNotFound)
	}

	return nil
}

// Delete removes the post, its comments and every like on either of them
// in one transaction.
func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := execStatements(ctx, tx, postID,
			`DELETE FROM likes WHERE target_type = 'comment' AND target_id IN (SELECT id FROM comments WHERE post_id = ?)`,
			`DELETE FROM likes WHERE target_type = 'post' AND target_id = ?`,
			`DELETE FROM comments WHERE post_id = ?`,
		)
		if err != nil {
			return fmt.Errorf("failed to delete post dependents: %w", err)
		}

		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM posts WHERE id = ?`), postID)
		if err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check deleted rows: %w", err)
		}

		if rowsAffected == 0 {
			return fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}

		return nil
	})
}
