package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aventra/internal/models"

	"github.com/jmoiron/sqlx"
)

const insertEventQuery = `
	INSERT INTO events (title, description, start_time, end_time, venue, lat, lng, url, source, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING id
`

// EventFilter narrows the local events search. Empty fields are ignored;
// Start and End compare against start_time as ISO text.
type EventFilter struct {
	Query string
	Start string
	End   string
	Limit int
}

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Search(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		conditions = append(conditions,
			"(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(venue) LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	if filter.Start != "" {
		conditions = append(conditions, "start_time >= ?")
		args = append(args, filter.Start)
	}
	if filter.End != "" {
		conditions = append(conditions, "start_time <= ?")
		args = append(args, filter.End)
	}

	query := `SELECT id, title, description, start_time, end_time, venue, lat, lng, url, source, created_at FROM events`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_time ASC, id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}

	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(insertEventQuery), eventArgs(event)...)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	event.ID = id
	return id, nil
}

// CreateBatch inserts all events in one transaction and returns how many
// were written.
func (r *eventRepository) CreateBatch(ctx context.Context, events []models.Event) (int, error) {
	count := 0

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := tx.Rebind(insertEventQuery)
		now := time.Now().UTC()

		for i := range events {
			if events[i].CreatedAt.IsZero() {
				events[i].CreatedAt = now
			}

			var id int64
			if err := tx.GetContext(ctx, &id, query, eventArgs(&events[i])...); err != nil {
				return fmt.Errorf("failed to insert event %d: %w", i+1, err)
			}

			events[i].ID = id
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

func eventArgs(e *models.Event) []interface{} {
	return []interface{}{
		e.Title, e.Description, e.StartTime, e.EndTime, e.Venue,
		e.Lat, e.Lng, e.URL, e.Source, e.CreatedAt,
	}
}
