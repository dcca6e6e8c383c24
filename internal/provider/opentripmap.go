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

type OpenTripMapClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewOpenTripMapClient(cfg config.Providers, client *http.Client) *OpenTripMapClient {
	return &OpenTripMapClient{
		client:  client,
		baseURL: strings.TrimRight(cfg.OpenTripMapBaseURL, "/"),
		apiKey:  cfg.OpenTripMapKey,
	}
}

func (c *OpenTripMapClient) Configured() bool { return c.apiKey != "" }

type RadiusQuery struct {
	Lat    float64
	Lon    float64
	Radius int
	Limit  int
	Kinds  string
}

type otmPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func (c *OpenTripMapClient) Radius(ctx context.Context, q RadiusQuery) ([]models.Place, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(q.Radius))
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Kinds != "" {
		params.Set("kinds", q.Kinds)
	}

	req, err := newGet(ctx, OpenTripMap, c.baseURL+"/0.1/en/places/radius?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var body []struct {
		XID   string   `json:"xid"`
		Name  string   `json:"name"`
		Kinds string   `json:"kinds"`
		Dist  *float64 `json:"dist"`
		Point otmPoint `json:"point"`
	}
	if err := doJSON(c.client, OpenTripMap, req, &body); err != nil {
		return nil, err
	}

	places := make([]models.Place, 0, len(body))
	for _, b := range body {
		// unnamed objects are noise for a points-of-interest list
		if b.Name == "" {
			continue
		}
		places = append(places, models.Place{
			XID:      b.XID,
			Name:     b.Name,
			Kinds:    b.Kinds,
			Distance: b.Dist,
			Lat:      b.Point.Lat,
			Lng:      b.Point.Lon,
		})
	}

	return places, nil
}

func (c *OpenTripMapClient) Details(ctx context.Context, xid string) (*models.Place, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)

	req, err := newGet(ctx, OpenTripMap, c.baseURL+"/0.1/en/places/xid/"+url.PathEscape(xid)+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var body struct {
		XID     string   `json:"xid"`
		Name    string   `json:"name"`
		Kinds   string   `json:"kinds"`
		Point   otmPoint `json:"point"`
		URL     string   `json:"url"`
		OTM     string   `json:"otm"`
		Address struct {
			Road        string `json:"road"`
			HouseNumber string `json:"house_number"`
			City        string `json:"city"`
			Country     string `json:"country"`
		} `json:"address"`
		Preview struct {
			Source string `json:"source"`
		} `json:"preview"`
		WikipediaExtracts struct {
			Text string `json:"text"`
		} `json:"wikipedia_extracts"`
	}
	if err := doJSON(c.client, OpenTripMap, req, &body); err != nil {
		return nil, err
	}

	street := joinNonEmpty([]string{body.Address.HouseNumber, body.Address.Road}, " ")

	return &models.Place{
		XID:         body.XID,
		Name:        body.Name,
		Kinds:       body.Kinds,
		Lat:         body.Point.Lat,
		Lng:         body.Point.Lon,
		Address:     joinNonEmpty([]string{street, body.Address.City, body.Address.Country}, ", "),
		Description: body.WikipediaExtracts.Text,
		Image:       body.Preview.Source,
		URL:         firstNonEmpty(body.URL, body.OTM),
	}, nil
}
