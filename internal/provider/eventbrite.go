package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"aventra/internal/config"
	"aventra/internal/models"
)

type EventQuery struct {
	Query string
	Start string
	End   string
	Limit int
}

type EventbriteClient struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewEventbriteClient(cfg config.Providers, client *http.Client) *EventbriteClient {
	return &EventbriteClient{
		client:  client,
		baseURL: strings.TrimRight(cfg.EventbriteBaseURL, "/"),
		token:   cfg.EventbriteToken,
	}
}

func (c *EventbriteClient) Configured() bool { return c.token != "" }

type eventbriteText struct {
	Text string `json:"text"`
}

type eventbriteTime struct {
	Local string `json:"local"`
	UTC   string `json:"utc"`
}

type eventbriteEvent struct {
	ID          string         `json:"id"`
	Name        eventbriteText `json:"name"`
	Description eventbriteText `json:"description"`
	Start       eventbriteTime `json:"start"`
	End         eventbriteTime `json:"end"`
	URL         string         `json:"url"`
	Venue       *struct {
		Name    string `json:"name"`
		Address struct {
			Display   string `json:"localized_address_display"`
			Latitude  string `json:"latitude"`
			Longitude string `json:"longitude"`
		} `json:"address"`
	} `json:"venue"`
}

func (c *EventbriteClient) SearchEvents(ctx context.Context, q EventQuery) ([]models.EventResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("expand", "venue")
	if q.Query != "" {
		params.Set("q", q.Query)
	}
	if q.Start != "" {
		params.Set("start_date.range_start", q.Start)
	}
	if q.End != "" {
		params.Set("start_date.range_end", q.End)
	}

	req, err := newGet(ctx, Eventbrite, c.baseURL+"/v3/events/search/?"+params.Encode())
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	var body struct {
		Events []eventbriteEvent `json:"events"`
	}
	if err := doJSON(c.client, Eventbrite, req, &body); err != nil {
		return nil, err
	}

	results := make([]models.EventResult, 0, len(body.Events))
	for _, e := range body.Events {
		if q.Limit > 0 && len(results) >= q.Limit {
			break
		}

		r := models.EventResult{
			ID:          e.ID,
			Title:       e.Name.Text,
			Description: e.Description.Text,
			StartTime:   firstNonEmpty(e.Start.Local, e.Start.UTC),
			EndTime:     firstNonEmpty(e.End.Local, e.End.UTC),
			URL:         e.URL,
			Source:      Eventbrite,
		}
		if e.Venue != nil {
			r.VenueName = e.Venue.Name
			r.VenueAddress = e.Venue.Address.Display
			r.Lat = parseCoord(e.Venue.Address.Latitude)
			r.Lng = parseCoord(e.Venue.Address.Longitude)
		}
		results = append(results, r)
	}

	return results, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseCoord(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
