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

const nominatimUserAgent = "aventra/1.0 (travel-social backend)"

type NominatimClient struct {
	client  *http.Client
	baseURL string
}

func NewNominatimClient(cfg config.Providers, client *http.Client) *NominatimClient {
	return &NominatimClient{
		client:  client,
		baseURL: strings.TrimRight(cfg.NominatimBaseURL, "/"),
	}
}

func (c *NominatimClient) Geocode(ctx context.Context, query string, limit int) ([]models.GeoResult, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	req, err := newGet(ctx, Nominatim, c.baseURL+"/search?"+params.Encode())
	if err != nil {
		return nil, err
	}
	// Nominatim's usage policy rejects requests without an identifying agent.
	req.Header.Set("User-Agent", nominatimUserAgent)

	var body []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		Type        string `json:"type"`
	}
	if err := doJSON(c.client, Nominatim, req, &body); err != nil {
		return nil, err
	}

	results := make([]models.GeoResult, 0, len(body))
	for _, b := range body {
		lat, errLat := strconv.ParseFloat(b.Lat, 64)
		lng, errLng := strconv.ParseFloat(b.Lon, 64)
		if errLat != nil || errLng != nil {
			continue
		}

		results = append(results, models.GeoResult{
			Name: b.DisplayName,
			Lat:  lat,
			Lng:  lng,
			Type: b.Type,
		})
	}

	return results, nil
}
