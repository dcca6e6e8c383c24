package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// withTx runs fn inside a transaction and commits only if fn succeeds.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func execStatements(ctx context.Context, tx *sqlx.Tx, id int64, stmts ...string) error {
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, tx.Rebind(stmt), id); err != nil {
			return err
		}
	}
	return nil
}
