package repository

import (
	"context"
	"fmt"
	"time"

	"aventra/internal/models"

	"github.com/jmoiron/sqlx"
)

type wishlistRepository struct {
	db *sqlx.DB
}

func NewWishlistRepository(db *sqlx.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Exists(ctx context.Context, email, destination string) (bool, error) {
	var count int

	query := r.db.Rebind(`SELECT COUNT(*) FROM wishlist WHERE email = ? AND destination = ?`)

	if err := r.db.GetContext(ctx, &count, query, email, destination); err != nil {
		return false, fmt.Errorf("failed to check wishlist: %w", err)
	}

	return count > 0, nil
}

func (r *wishlistRepository) Create(ctx context.Context, item *models.WishlistItem) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO wishlist (email, destination, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`)

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query, item.Email, item.Destination, item.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("wishlist entry %s: %w", item.Destination, ErrConflict)
		}
		return 0, fmt.Errorf("failed to add wishlist entry: %w", err)
	}

	item.ID = id
	return id, nil
}

func (r *wishlistRepository) ListByEmail(ctx context.Context, email string) ([]models.WishlistItem, error) {
	items := []models.WishlistItem{}

	query := r.db.Rebind(`
		SELECT id, email, destination, created_at
		FROM wishlist WHERE email = ?
		ORDER BY created_at DESC, id DESC
	`)

	if err := r.db.SelectContext(ctx, &items, query, email); err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	return items, nil
}
