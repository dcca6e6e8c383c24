package service

import (
	"context"
	"fmt"
	"strings"

	"aventra/internal/models"
	"aventra/internal/provider"
	"aventra/internal/repository"
)

const (
	defaultGeocodeLimit = 5
	maxGeocodeLimit     = 20
	defaultRadius       = 1000
	maxRadius           = 50000
	defaultPlacesLimit  = 20
	maxPlacesLimit      = 100
)

type PlacesSearch struct {
	Lat    float64
	Lon    float64
	Radius int
	Limit  int
	Kinds  string
}

// GeoService proxies geocoding and points of interest. These routes have
// no canned data: upstream failures are returned to the caller.
type GeoService interface {
	Geocode(ctx context.Context, query string, limit int) ([]models.GeoResult, error)
	PlacesNearby(ctx context.Context, q PlacesSearch) ([]models.Place, error)
	PlaceDetails(ctx context.Context, xid string) (*models.Place, error)
}

type geoService struct {
	geocoder Geocoder
	places   PlacesAPI
}

func NewGeoService(geocoder Geocoder, places PlacesAPI) GeoService {
	return &geoService{geocoder: geocoder, places: places}
}

func (s *geoService) Geocode(ctx context.Context, query string, limit int) ([]models.GeoResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalidf("q is required")
	}

	results, err := s.geocoder.Geocode(ctx, query, clampLimit(limit, defaultGeocodeLimit, maxGeocodeLimit))
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.GeoResult{}
	}

	return results, nil
}

func (s *geoService) PlacesNearby(ctx context.Context, q PlacesSearch) ([]models.Place, error) {
	if q.Lat < -90 || q.Lat > 90 || q.Lon < -180 || q.Lon > 180 {
		return nil, invalidf("lat/lon out of range")
	}
	if !s.places.Configured() {
		return nil, provider.ErrNotConfigured
	}

	places, err := s.places.Radius(ctx, provider.RadiusQuery{
		Lat:    q.Lat,
		Lon:    q.Lon,
		Radius: clampLimit(q.Radius, defaultRadius, maxRadius),
		Limit:  clampLimit(q.Limit, defaultPlacesLimit, maxPlacesLimit),
		Kinds:  strings.TrimSpace(q.Kinds),
	})
	if err != nil {
		return nil, err
	}
	if places == nil {
		places = []models.Place{}
	}

	return places, nil
}

func (s *geoService) PlaceDetails(ctx context.Context, xid string) (*models.Place, error) {
	xid = strings.TrimSpace(xid)
	if xid == "" {
		return nil, invalidf("xid is required")
	}
	if !s.places.Configured() {
		return nil, provider.ErrNotConfigured
	}

	place, err := s.places.Details(ctx, xid)
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, fmt.Errorf("place %s: %w", xid, repository.ErrNotFound)
		}
		return nil, err
	}

	return place, nil
}
