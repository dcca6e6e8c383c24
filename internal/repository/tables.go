package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

func (r *tablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	var count int

	query := `
		SELECT COUNT(*)
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
	`
	if r.db.DriverName() == "postgres" {
		query = `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
		`
	}

	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count database tables: %w", err)
	}

	return count, nil
}
