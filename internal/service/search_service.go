package service

import (
	"context"
	"strconv"
	"strings"

	"aventra/internal/mockdata"
	"aventra/internal/models"
	"aventra/internal/provider"
	"aventra/internal/repository"
)

const (
	SourceLocal        = "local"
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type EventSearch struct {
	Query string
	Start string
	End   string
	Limit int
}

type SearchService interface {
	// SearchEvents returns matching events and the name of the source that
	// produced them.
	SearchEvents(ctx context.Context, q EventSearch) ([]models.EventResult, string, error)
}

type searchService struct {
	eventRepo  repository.EventRepository
	eventbrite EventSearcher
	catalog    *mockdata.Catalog
}

func NewSearchService(eventRepo repository.EventRepository, eventbrite EventSearcher, catalog *mockdata.Catalog) SearchService {
	return &searchService{
		eventRepo:  eventRepo,
		eventbrite: eventbrite,
		catalog:    catalog,
	}
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func eventResult(e models.Event) models.EventResult {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	source := deref(e.Source)
	if source == "" {
		source = SourceLocal
	}

	return models.EventResult{
		ID:          strconv.FormatInt(e.ID, 10),
		Title:       deref(e.Title),
		Description: deref(e.Description),
		StartTime:   deref(e.StartTime),
		EndTime:     deref(e.EndTime),
		VenueName:   deref(e.Venue),
		Lat:         e.Lat,
		Lng:         e.Lng,
		URL:         deref(e.URL),
		Source:      source,
	}
}

// SearchEvents looks in the local events table first, then Eventbrite, and
// finally the canned catalog when Eventbrite is unusable.
func (s *searchService) SearchEvents(ctx context.Context, q EventSearch) ([]models.EventResult, string, error) {
	q.Query = strings.TrimSpace(q.Query)
	q.Limit = clampLimit(q.Limit, defaultSearchLimit, maxSearchLimit)

	local, err := s.eventRepo.Search(ctx, repository.EventFilter{
		Query: q.Query,
		Start: q.Start,
		End:   q.End,
		Limit: q.Limit,
	})
	if err != nil {
		return nil, "", err
	}

	if len(local) > 0 {
		results := make([]models.EventResult, 0, len(local))
		for _, e := range local {
			results = append(results, eventResult(e))
		}
		return results, SourceLocal, nil
	}

	if s.eventbrite == nil || !s.eventbrite.Configured() {
		fallback(provider.Eventbrite, provider.ErrNotConfigured)
		return s.catalog.Events(q.Query, q.Limit), mockdata.Source, nil
	}

	results, err := s.eventbrite.SearchEvents(ctx, provider.EventQuery{
		Query: q.Query,
		Start: q.Start,
		End:   q.End,
		Limit: q.Limit,
	})
	if err != nil {
		fallback(provider.Eventbrite, err)
		return s.catalog.Events(q.Query, q.Limit), mockdata.Source, nil
	}
	if results == nil {
		results = []models.EventResult{}
	}

	return results, provider.Eventbrite, nil
}
