package app

import (
	"context"
	"log"

	"aventra/internal/activity"
	"aventra/internal/config"
	"aventra/internal/database"
	"aventra/internal/mockdata"
	"aventra/internal/provider"
	"aventra/internal/ratelimit"
	"aventra/internal/repository"
	"aventra/internal/service"
	"aventra/internal/storage"
)

// Deps holds everything main needs to serve and later release.
type Deps struct {
	DB        *database.DB
	Services  *service.Service
	Limiter   *ratelimit.Limiter
	Publisher activity.Publisher
}

func App(ctx context.Context, cfg *config.Config) *Deps {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// upload storage: local disk or MinIO
	store, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	catalog, err := mockdata.Load()
	if err != nil {
		log.Fatalf("Failed to load fallback catalog: %v", err)
	}

	publisher := activity.NewNopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = activity.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Printf("Publishing activity to Kafka topic %s", cfg.Kafka.Topic)
	}

	limiter := ratelimit.NewFromConfig(cfg.Redis)
	if limiter != nil {
		log.Printf("Rate limiting proxy routes: %d requests per %s", cfg.Redis.RateLimit, cfg.Redis.RateLimitWindow)
	}

	client := provider.NewHTTPClient(cfg.Providers.Timeout)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, service.Externals{
		Eventbrite: provider.NewEventbriteClient(cfg.Providers, client),
		Travel:     provider.NewAmadeusClient(cfg.Providers, client),
		Geocoder:   provider.NewNominatimClient(cfg.Providers, client),
		Places:     provider.NewOpenTripMapClient(cfg.Providers, client),
		Catalog:    catalog,
		Storage:    store,
		Publisher:  publisher,
	})

	return &Deps{
		DB:        db,
		Services:  services,
		Limiter:   limiter,
		Publisher: publisher,
	}
}

// Close releases the connections opened by App.
func (d *Deps) Close() {
	if err := d.Publisher.Close(); err != nil {
		log.Printf("Failed to close activity publisher: %v", err)
	}
	if d.Limiter != nil {
		if err := d.Limiter.Close(); err != nil {
			log.Printf("Failed to close rate limiter: %v", err)
		}
	}
	if err := d.DB.CloseDB(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
