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

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query, user.Username, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("user with email %s: %w", user.Email, ErrConflict)
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	return id, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := r.db.Rebind(`SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?`)

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := r.db.Rebind(`SELECT id, username, email, password_hash, created_at FROM users WHERE email = ?`)

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}

	err := r.db.SelectContext(ctx, &users, `SELECT id, username, email, password_hash, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (r *userRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	var count int

	err := r.db.GetContext(ctx, &count, r.db.Rebind(`SELECT COUNT(*) FROM users WHERE id = ?`), userID)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}

	return count > 0, nil
}
