package repository

import (
	"context"
	"fmt"
	"time"

	"aventra/internal/models"

	"github.com/jmoiron/sqlx"
)

type tripRepository struct {
	db *sqlx.DB
}

func NewTripRepository(db *sqlx.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO trips (user_id, title, description, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		trip.UserID, trip.Title, trip.Description, trip.StartDate, trip.EndDate, trip.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create trip: %w", err)
	}

	trip.ID = id
	return id, nil
}

func (r *tripRepository) List(ctx context.Context) ([]models.Trip, error) {
	trips := []models.Trip{}

	err := r.db.SelectContext(ctx, &trips, `
		SELECT id, user_id, title, description, start_date, end_date, created_at
		FROM trips ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	return trips, nil
}
