package service

import (
	"context"
	"fmt"
	"strings"

	"aventra/internal/mockdata"
	"aventra/internal/models"
	"aventra/internal/provider"
	"aventra/internal/repository"
)

const (
	minAirportQuery = 2
	maxFlightOffers = 20
)

type FlightSearch struct {
	Origin      string
	Destination string
	Date        string
	Adults      int
}

type FlightService interface {
	SearchAirports(ctx context.Context, query string) ([]models.Airport, error)
	SearchFlights(ctx context.Context, q FlightSearch) ([]models.Flight, string, error)
	// GetFlight looks a flight up in the catalog; upstream offers are not
	// addressable by id.
	GetFlight(ctx context.Context, flightID string) (*models.Flight, error)
}

type flightService struct {
	travel  TravelAPI
	catalog *mockdata.Catalog
}

func NewFlightService(travel TravelAPI, catalog *mockdata.Catalog) FlightService {
	return &flightService{travel: travel, catalog: catalog}
}

func (s *flightService) configured() bool {
	return s.travel != nil && s.travel.Configured()
}

func (s *flightService) SearchAirports(ctx context.Context, query string) ([]models.Airport, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minAirportQuery {
		return nil, invalidf("query must be at least %d characters", minAirportQuery)
	}

	if !s.configured() {
		fallback(provider.Amadeus, provider.ErrNotConfigured)
		return s.catalog.Airports(query), nil
	}

	airports, err := s.travel.SearchLocations(ctx, query)
	if err != nil {
		fallback(provider.Amadeus, err)
		return s.catalog.Airports(query), nil
	}
	if airports == nil {
		airports = []models.Airport{}
	}

	return airports, nil
}

func (s *flightService) SearchFlights(ctx context.Context, q FlightSearch) ([]models.Flight, string, error) {
	origin := strings.ToUpper(strings.TrimSpace(q.Origin))
	destination := strings.ToUpper(strings.TrimSpace(q.Destination))
	date := strings.TrimSpace(q.Date)
	if origin == "" || destination == "" || date == "" {
		return nil, "", invalidf("origin, destination and date are required")
	}

	adults := q.Adults
	if adults <= 0 {
		adults = 1
	}

	if !s.configured() {
		fallback(provider.Amadeus, provider.ErrNotConfigured)
		return s.catalog.Flights(origin, destination), mockdata.Source, nil
	}

	flights, err := s.travel.FlightOffers(ctx, provider.FlightQuery{
		Origin:      origin,
		Destination: destination,
		Date:        date,
		Adults:      adults,
		Max:         maxFlightOffers,
	})
	if err != nil {
		fallback(provider.Amadeus, err)
		return s.catalog.Flights(origin, destination), mockdata.Source, nil
	}
	if flights == nil {
		flights = []models.Flight{}
	}

	return flights, provider.Amadeus, nil
}

func (s *flightService) GetFlight(ctx context.Context, flightID string) (*models.Flight, error) {
	if f, ok := s.catalog.Flight(strings.TrimSpace(flightID)); ok {
		return &f, nil
	}
	return nil, fmt.Errorf("flight %s: %w", flightID, repository.ErrNotFound)
}
