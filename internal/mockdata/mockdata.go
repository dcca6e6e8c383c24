// Package mockdata serves the canned results returned when a third-party
// provider is unconfigured or failing.
package mockdata

import (
	_ "embed"
	"fmt"
	"strings"

	"aventra/internal/models"

	"gopkg.in/yaml.v3"
)

const Source = "mock"

//go:embed catalog.yaml
var catalogYAML []byte

type Catalog struct {
	EventList   []models.EventResult `yaml:"events"`
	HotelList   []models.Hotel       `yaml:"hotels"`
	AirportList []models.Airport     `yaml:"airports"`
	FlightList  []models.Flight      `yaml:"flights"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse mock catalog: %w", err)
	}

	for i := range c.EventList {
		c.EventList[i].Source = Source
	}

	return &c, nil
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// Events returns events whose title, description or venue contains q
// (case-insensitive). An empty q matches everything.
func (c *Catalog) Events(q string, limit int) []models.EventResult {
	q = strings.ToLower(strings.TrimSpace(q))

	out := []models.EventResult{}
	for _, e := range c.EventList {
		if limit > 0 && len(out) >= limit {
			break
		}
		if q == "" || contains(e.Title, q) || contains(e.Description, q) ||
			contains(e.VenueName, q) || contains(e.VenueAddress, q) {
			out = append(out, e)
		}
	}
	return out
}

// HotelsByCity returns the hotels of an IATA city code, or the whole list
// when the city has none.
func (c *Catalog) HotelsByCity(city string) []models.Hotel {
	out := []models.Hotel{}
	for _, h := range c.HotelList {
		if strings.EqualFold(h.CityCode, city) {
			out = append(out, h)
		}
	}

	if len(out) == 0 {
		return append(out, c.HotelList...)
	}
	return out
}

func (c *Catalog) Hotel(id string) (models.Hotel, bool) {
	for _, h := range c.HotelList {
		if strings.EqualFold(h.ID, id) {
			return h, true
		}
	}
	return models.Hotel{}, false
}

// Airports matches q against the code prefix, name and city.
func (c *Catalog) Airports(q string) []models.Airport {
	q = strings.ToLower(strings.TrimSpace(q))

	out := []models.Airport{}
	for _, a := range c.AirportList {
		if strings.HasPrefix(strings.ToLower(a.Code), q) || contains(a.Name, q) || contains(a.City, q) {
			out = append(out, a)
		}
	}
	return out
}

// Flights returns flights on the origin-destination route, or every flight
// when the route is not in the catalog.
func (c *Catalog) Flights(origin, destination string) []models.Flight {
	out := []models.Flight{}
	for _, f := range c.FlightList {
		if strings.EqualFold(f.Origin, origin) && strings.EqualFold(f.Destination, destination) {
			out = append(out, f)
		}
	}

	if len(out) == 0 {
		return append(out, c.FlightList...)
	}
	return out
}

func (c *Catalog) Flight(id string) (models.Flight, bool) {
	for _, f := range c.FlightList {
		if f.ID == id {
			return f, true
		}
	}
	return models.Flight{}, false
}
