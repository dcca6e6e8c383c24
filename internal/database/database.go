package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"aventra/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

type MethodsDB interface {
	CloseDB() error
	Migrate(ctx context.Context) error
	HealthCheck(ctx context.Context) error
}

type DB struct {
	*sqlx.DB
}

// ConnectDB opens the development SQLite file or the hosted Postgres
// database depending on cfg.DB.UseSQLite, applies the schema and pings.
func ConnectDB(cfg *config.Config) (*DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	if cfg.DB.UseSQLite {
		db, err = OpenSQLite(cfg.DB.SQLitePath)
	} else {
		db, err = OpenPostgres(cfg.DB)
	}
	if err != nil {
		return nil, err
	}

	dbStruct := &DB{db}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := dbStruct.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := dbStruct.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	return dbStruct, nil
}

func OpenSQLite(path string) (*sqlx.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	log.Printf("Connecting to SQLite: %s", path)

	db, err := sqlx.Connect(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// one writer; also keeps ":memory:" databases on a single connection
	db.SetMaxOpenConns(1)

	return db, nil
}

func OpenPostgres(cfg config.DB) (*sqlx.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DbHOST,
		cfg.DbPORT,
		cfg.DbUSER,
		cfg.DbPASSWORD,
		cfg.DbNAME,
		cfg.DbSSLMODE,
	)

	log.Printf("Connecting to PostgreSQL: host=%s, dbname=%s", cfg.DbHOST, cfg.DbNAME)

	db, err := sqlx.Connect(DriverPostgres, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// Migrate creates every table and index that does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	stmts := SchemaFor(db.DriverName())

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	log.Printf("Schema applied (%d statements, driver %s)", len(stmts), db.DriverName())
	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.PingContext(ctx)
}

