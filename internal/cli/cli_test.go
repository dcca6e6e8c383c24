package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aventra/internal/database"
	"aventra/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventsCSV = `title,description,start_time,end_time,venue,lat,lng,url,source
Jazz Night,Live jazz,2025-06-01T20:00:00,2025-06-01T23:00:00,Blue Note,40.73,-74.00,https://example.com/jazz,
Food Fair,,2025-07-04T10:00:00,,Central Park,not-a-number,,,partner
`

func memoryDB(t *testing.T) *database.DB {
	t.Helper()

	sqlDB, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	db := &database.DB{DB: sqlDB}
	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func TestImportEvents(t *testing.T) {
	db := memoryDB(t)
	defer db.CloseDB()

	n, err := ImportEvents(context.Background(), repository.NewEventRepository(db.DB), strings.NewReader(eventsCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	type row struct {
		Title       *string  `db:"title"`
		Description *string  `db:"description"`
		EndTime     *string  `db:"end_time"`
		Lat         *float64 `db:"lat"`
		Lng         *float64 `db:"lng"`
		URL         *string  `db:"url"`
		Source      *string  `db:"source"`
	}
	var rows []row
	require.NoError(t, sqlx.Select(db, &rows,
		`SELECT title, description, end_time, lat, lng, url, source FROM events ORDER BY id`))
	require.Len(t, rows, 2)

	assert.Equal(t, "Jazz Night", *rows[0].Title)
	assert.Equal(t, "csv", *rows[0].Source)
	require.NotNil(t, rows[0].Lat)
	assert.InDelta(t, 40.73, *rows[0].Lat, 1e-9)

	assert.Nil(t, rows[1].Description)
	assert.Nil(t, rows[1].EndTime)
	assert.Nil(t, rows[1].Lat)
	assert.Nil(t, rows[1].Lng)
	assert.Nil(t, rows[1].URL)
	assert.Equal(t, "partner", *rows[1].Source)
}

func TestImportEvents_HeaderOnlyAndEmpty(t *testing.T) {
	db := memoryDB(t)
	defer db.CloseDB()
	repo := repository.NewEventRepository(db.DB)

	n, err := ImportEvents(context.Background(), repo, strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = ImportEvents(context.Background(), repo, strings.NewReader("title,venue\n"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImportEventsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, os.WriteFile(path, []byte(eventsCSV), 0o644))

	cmd := NewRootCommand(func() (*database.DB, error) { return memoryDB(t), nil })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"import-events", path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Imported 2 rows into events table\n", out.String())
}

func TestImportEventsCommand_MissingFile(t *testing.T) {
	cmd := NewRootCommand(func() (*database.DB, error) { return memoryDB(t), nil })
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import-events", filepath.Join(t.TempDir(), "missing.csv")})

	assert.Error(t, cmd.Execute())
}

func TestSeed(t *testing.T) {
	db := memoryDB(t)
	defer db.CloseDB()
	rep := repository.NewRepository(db.DB)

	res, err := Seed(context.Background(), rep, SeedOptions{Users: 3, Posts: 4, MaxComments: 3}, gofakeit.New(42))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Users)
	assert.Equal(t, 4, res.Posts)

	count := func(table string) int {
		var n int
		require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
		return n
	}
	assert.Equal(t, res.Users, count("users"))
	assert.Equal(t, res.Posts, count("posts"))
	assert.Equal(t, res.Comments, count("comments"))
	assert.Equal(t, res.Likes, count("likes"))

	var hashes int
	require.NoError(t, db.Get(&hashes, "SELECT COUNT(*) FROM users WHERE password_hash IS NOT NULL"))
	assert.Equal(t, 3, hashes)
}

func TestSeedCommand_RejectsZeroUsers(t *testing.T) {
	cmd := NewRootCommand(func() (*database.DB, error) { return memoryDB(t), nil })
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"seed", "--users", "0"})

	assert.Error(t, cmd.Execute())
}
