package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_USE_SQLITE", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.True(t, cfg.DB.UseSQLite)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, int64(10*1024*1024), cfg.Storage.MaxUploadSize)
	assert.Equal(t, 10*time.Second, cfg.Providers.Timeout)
	assert.Equal(t, "aventra.activity", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_USE_SQLITE", "false")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("STORAGE_BACKEND", "MinIO")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("OUTBOUND_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT", "5")

	cfg := LoadConfig()

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.False(t, cfg.DB.UseSQLite)
	assert.Equal(t, "db.internal", cfg.DB.DbHOST)
	assert.Equal(t, "minio", cfg.Storage.Backend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, cfg.Providers.Timeout)
	assert.Equal(t, int64(5), cfg.Redis.RateLimit)
}

func TestGetEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_DUR", "soon")

	assert.Equal(t, 7, getEnvAsInt("X_INT", 7))
	assert.True(t, getEnvBool("X_BOOL", true))
	assert.Equal(t, time.Minute, getEnvDuration("X_DUR", time.Minute))
}
