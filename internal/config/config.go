package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	UseSQLite  bool
	SQLitePath string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
}

type Storage struct {
	Backend       string
	UploadDir     string
	MaxUploadSize int64
	MinIO         MinIO
}

type Redis struct {
	Addr            string
	Password        string
	DB              int
	RateLimit       int64
	RateLimitWindow time.Duration
}

type Kafka struct {
	Brokers []string
	Topic   string
}

// Providers holds credentials and base URLs of the third-party APIs.
// An empty key means the provider is not configured and the
// corresponding endpoints serve their fallback data.
type Providers struct {
	EventbriteToken     string
	EventbriteBaseURL   string
	AmadeusClientID     string
	AmadeusClientSecret string
	AmadeusBaseURL      string
	OpenTripMapKey      string
	OpenTripMapBaseURL  string
	NominatimBaseURL    string
	Timeout             time.Duration
}

type Telemetry struct {
	OTLPEndpoint string
	ServiceName  string
}

type Config struct {
	ServerPort          int
	DB                  DB
	Storage             Storage
	Redis               Redis
	Kafka               Kafka
	Providers           Providers
	Telemetry           Telemetry
	JWTSecretKey        string
	AccessTokenDuration time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func LoadDB() DB {
	return DB{
		UseSQLite:  getEnvBool("DB_USE_SQLITE", true),
		SQLitePath: getEnv("SQLITE_PATH", "./data/aventra.db"),
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", ""),
		DbNAME:     getEnv("DB_NAME", "aventra"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadStorage() Storage {
	return Storage{
		Backend:       strings.ToLower(getEnv("STORAGE_BACKEND", "local")),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 10*1024*1024),
		MinIO: MinIO{
			Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:  getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:  getEnv("MINIO_SECRET_KEY", ""),
			BucketName: getEnv("MINIO_BUCKET_NAME", "uploads"),
			UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func LoadRedis() Redis {
	return Redis{
		Addr:            getEnv("REDIS_ADDR", ""),
		Password:        getEnv("REDIS_PASSWORD", ""),
		DB:              getEnvAsInt("REDIS_DB", 0),
		RateLimit:       getEnvAsInt64("RATE_LIMIT", 60),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

func LoadProviders() Providers {
	return Providers{
		EventbriteToken:     getEnv("EVENTBRITE_TOKEN", ""),
		EventbriteBaseURL:   getEnv("EVENTBRITE_BASE_URL", "https://www.eventbriteapi.com"),
		AmadeusClientID:     getEnv("AMADEUS_CLIENT_ID", ""),
		AmadeusClientSecret: getEnv("AMADEUS_CLIENT_SECRET", ""),
		AmadeusBaseURL:      getEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		OpenTripMapKey:      getEnv("OPENTRIPMAP_API_KEY", ""),
		OpenTripMapBaseURL:  getEnv("OPENTRIPMAP_BASE_URL", "https://api.opentripmap.com"),
		NominatimBaseURL:    getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		Timeout:             getEnvDuration("OUTBOUND_TIMEOUT", 10*time.Second),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort: getEnvAsInt("SERVER_PORT", 8080),
		DB:         LoadDB(),
		Storage:    LoadStorage(),
		Redis:      LoadRedis(),
		Kafka: Kafka{
			Brokers: getEnvList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "aventra.activity"),
		},
		Providers: LoadProviders(),
		Telemetry: Telemetry{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "aventra-api"),
		},
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration: getEnvDuration("ACCESS_TOKEN_DURATION", 24*time.Hour),
	}
}
