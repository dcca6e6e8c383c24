package models

// Normalized shapes returned by the third-party proxy endpoints. Field
// names are stable regardless of which upstream (or fallback) produced
// the data.

type EventResult struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description,omitempty" yaml:"description"`
	StartTime    string   `json:"start_time,omitempty" yaml:"start_time"`
	EndTime      string   `json:"end_time,omitempty" yaml:"end_time"`
	VenueName    string   `json:"venue_name,omitempty" yaml:"venue_name"`
	VenueAddress string   `json:"venue_address,omitempty" yaml:"venue_address"`
	Lat          *float64 `json:"lat,omitempty" yaml:"lat"`
	Lng          *float64 `json:"lng,omitempty" yaml:"lng"`
	URL          string   `json:"url,omitempty" yaml:"url"`
	Source       string   `json:"source" yaml:"source"`
}

type Hotel struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	CityCode string   `json:"city_code" yaml:"city_code"`
	Address  string   `json:"address,omitempty" yaml:"address"`
	Lat      *float64 `json:"lat,omitempty" yaml:"lat"`
	Lng      *float64 `json:"lng,omitempty" yaml:"lng"`
	Rating   string   `json:"rating,omitempty" yaml:"rating"`
	Price    string   `json:"price,omitempty" yaml:"price"`
	Currency string   `json:"currency,omitempty" yaml:"currency"`
	Offers   []Offer  `json:"offers,omitempty" yaml:"offers"`
}

type Offer struct {
	ID           string `json:"id" yaml:"id"`
	CheckInDate  string `json:"check_in_date" yaml:"check_in_date"`
	CheckOutDate string `json:"check_out_date" yaml:"check_out_date"`
	Room         string `json:"room,omitempty" yaml:"room"`
	Price        string `json:"price" yaml:"price"`
	Currency     string `json:"currency" yaml:"currency"`
}

type Airport struct {
	Code    string `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	City    string `json:"city" yaml:"city"`
	Country string `json:"country" yaml:"country"`
	Type    string `json:"type" yaml:"type"`
}

type Flight struct {
	ID           string `json:"id" yaml:"id"`
	Origin       string `json:"origin" yaml:"origin"`
	Destination  string `json:"destination" yaml:"destination"`
	DepartureAt  string `json:"departure_at" yaml:"departure_at"`
	ArrivalAt    string `json:"arrival_at" yaml:"arrival_at"`
	Carrier      string `json:"carrier" yaml:"carrier"`
	FlightNumber string `json:"flight_number" yaml:"flight_number"`
	Duration     string `json:"duration,omitempty" yaml:"duration"`
	Stops        int    `json:"stops" yaml:"stops"`
	Price        string `json:"price" yaml:"price"`
	Currency     string `json:"currency" yaml:"currency"`
}

type GeoResult struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Type string  `json:"type,omitempty"`
}

type Place struct {
	XID         string   `json:"xid"`
	Name        string   `json:"name"`
	Kinds       string   `json:"kinds,omitempty"`
	Distance    *float64 `json:"dist,omitempty"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lon"`
	Address     string   `json:"address,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	URL         string   `json:"url,omitempty"`
}
