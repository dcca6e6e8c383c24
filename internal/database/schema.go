package database

// Tables carry no foreign keys: ownership and parent links are checked by
// the application, and comment cascades are intentionally shallow, which a
// self-referencing FK on comments.parent_comment_id would reject.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		start_date TEXT,
		end_date TEXT,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		title TEXT NOT NULL,
		content TEXT,
		image TEXT,
		extra TEXT,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		post_id INTEGER NOT NULL,
		user_id INTEGER,
		text TEXT NOT NULL,
		rating INTEGER,
		image TEXT,
		parent_comment_id INTEGER,
		created_at DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_parent ON comments(parent_comment_id)`,
	`CREATE TABLE IF NOT EXISTS likes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		target_type TEXT NOT NULL CHECK (target_type IN ('post', 'comment')),
		target_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE (user_id, target_type, target_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_likes_target ON likes(target_type, target_id)`,
	`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		description TEXT,
		start_time TEXT,
		end_time TEXT,
		venue TEXT,
		lat REAL,
		lng REAL,
		url TEXT,
		source TEXT,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS wishlist (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL,
		destination TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE (email, destination)
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		start_date VARCHAR(32),
		end_date VARCHAR(32),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT,
		title VARCHAR(255) NOT NULL,
		content TEXT,
		image TEXT,
		extra TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id BIGSERIAL PRIMARY KEY,
		post_id BIGINT NOT NULL,
		user_id BIGINT,
		text TEXT NOT NULL,
		rating INTEGER,
		image TEXT,
		parent_comment_id BIGINT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_parent ON comments(parent_comment_id)`,
	`CREATE TABLE IF NOT EXISTS likes (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		target_type VARCHAR(16) NOT NULL CHECK (target_type IN ('post', 'comment')),
		target_id BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, target_type, target_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_likes_target ON likes(target_type, target_id)`,
	`CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255),
		description TEXT,
		start_time VARCHAR(64),
		end_time VARCHAR(64),
		venue VARCHAR(255),
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		url VARCHAR(512),
		source VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS wishlist (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (email, destination)
	)`,
}

// SchemaFor returns the DDL statements for the given sqlx driver name.
func SchemaFor(driverName string) []string {
	if driverName == DriverPostgres {
		return postgresSchema
	}
	return sqliteSchema
}
