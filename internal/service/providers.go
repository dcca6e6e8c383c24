package service

import (
	"context"
	"errors"
	"log"

	"aventra/internal/metrics"
	"aventra/internal/models"
	"aventra/internal/provider"
)

// Consumer-side views of the provider clients.

type EventSearcher interface {
	Configured() bool
	SearchEvents(ctx context.Context, q provider.EventQuery) ([]models.EventResult, error)
}

type TravelAPI interface {
	Configured() bool
	HotelsByCity(ctx context.Context, cityCode string) ([]models.Hotel, error)
	HotelOffers(ctx context.Context, q provider.OfferQuery) ([]models.Hotel, error)
	SearchLocations(ctx context.Context, keyword string) ([]models.Airport, error)
	FlightOffers(ctx context.Context, q provider.FlightQuery) ([]models.Flight, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, query string, limit int) ([]models.GeoResult, error)
}

type PlacesAPI interface {
	Configured() bool
	Radius(ctx context.Context, q provider.RadiusQuery) ([]models.Place, error)
	Details(ctx context.Context, xid string) (*models.Place, error)
}

// fallback records why canned data is served in place of name's response.
func fallback(name string, err error) {
	if err == nil {
		metrics.RecordFallback(name, metrics.ReasonEmpty)
		return
	}
	if errors.Is(err, provider.ErrNotConfigured) {
		metrics.RecordFallback(name, metrics.ReasonNotConfigured)
		return
	}

	log.Printf("%s unavailable, serving mock data: %v", name, err)
	metrics.RecordFallback(name, metrics.ReasonUpstreamError)
}
