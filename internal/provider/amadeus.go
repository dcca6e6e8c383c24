package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"aventra/internal/config"
	"aventra/internal/models"
)

// AmadeusClient talks to the Amadeus self-service APIs. A fresh OAuth2
// client-credentials token is requested for every call.
type AmadeusClient struct {
	client       *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

func NewAmadeusClient(cfg config.Providers, client *http.Client) *AmadeusClient {
	return &AmadeusClient{
		client:       client,
		baseURL:      strings.TrimRight(cfg.AmadeusBaseURL, "/"),
		clientID:     cfg.AmadeusClientID,
		clientSecret: cfg.AmadeusClientSecret,
	}
}

func (c *AmadeusClient) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

func (c *AmadeusClient) token(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", &UpstreamError{Provider: Amadeus, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := doJSON(c.client, Amadeus, req, &body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", &UpstreamError{Provider: Amadeus, Err: errors.New("empty access token")}
	}

	return body.AccessToken, nil
}

func (c *AmadeusClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := newGet(ctx, Amadeus, c.baseURL+path+"?"+params.Encode())
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return doJSON(c.client, Amadeus, req, out)
}

type amadeusGeo struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// HotelsByCity lists hotels registered for an IATA city code.
func (c *AmadeusClient) HotelsByCity(ctx context.Context, cityCode string) ([]models.Hotel, error) {
	params := url.Values{}
	params.Set("cityCode", strings.ToUpper(cityCode))

	var body struct {
		Data []struct {
			HotelID  string     `json:"hotelId"`
			Name     string     `json:"name"`
			IATACode string     `json:"iataCode"`
			GeoCode  amadeusGeo `json:"geoCode"`
			Address  struct {
				Lines       []string `json:"lines"`
				CityName    string   `json:"cityName"`
				CountryCode string   `json:"countryCode"`
			} `json:"address"`
			Rating string `json:"rating"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v1/reference-data/locations/hotels/by-city", params, &body); err != nil {
		return nil, err
	}

	hotels := make([]models.Hotel, 0, len(body.Data))
	for _, h := range body.Data {
		parts := append([]string{}, h.Address.Lines...)
		parts = append(parts, h.Address.CityName, h.Address.CountryCode)

		hotels = append(hotels, models.Hotel{
			ID:       h.HotelID,
			Name:     h.Name,
			CityCode: h.IATACode,
			Address:  joinNonEmpty(parts, ", "),
			Lat:      h.GeoCode.Latitude,
			Lng:      h.GeoCode.Longitude,
			Rating:   h.Rating,
		})
	}

	return hotels, nil
}

type OfferQuery struct {
	HotelIDs []string
	CheckIn  string
	CheckOut string
	Adults   int
}

// HotelOffers returns the hotels among q.HotelIDs that have offers, each
// with its offers attached and Price set to the cheapest one.
func (c *AmadeusClient) HotelOffers(ctx context.Context, q OfferQuery) ([]models.Hotel, error) {
	params := url.Values{}
	params.Set("hotelIds", strings.Join(q.HotelIDs, ","))
	if q.CheckIn != "" {
		params.Set("checkInDate", q.CheckIn)
	}
	if q.CheckOut != "" {
		params.Set("checkOutDate", q.CheckOut)
	}
	if q.Adults > 0 {
		params.Set("adults", strconv.Itoa(q.Adults))
	}

	var body struct {
		Data []struct {
			Hotel struct {
				HotelID   string   `json:"hotelId"`
				Name      string   `json:"name"`
				CityCode  string   `json:"cityCode"`
				Latitude  *float64 `json:"latitude"`
				Longitude *float64 `json:"longitude"`
			} `json:"hotel"`
			Offers []struct {
				ID           string `json:"id"`
				CheckInDate  string `json:"checkInDate"`
				CheckOutDate string `json:"checkOutDate"`
				Room         struct {
					Description struct {
						Text string `json:"text"`
					} `json:"description"`
				} `json:"room"`
				Price struct {
					Currency string `json:"currency"`
					Total    string `json:"total"`
				} `json:"price"`
			} `json:"offers"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v3/shopping/hotel-offers", params, &body); err != nil {
		return nil, err
	}

	hotels := make([]models.Hotel, 0, len(body.Data))
	for _, d := range body.Data {
		hotel := models.Hotel{
			ID:       d.Hotel.HotelID,
			Name:     d.Hotel.Name,
			CityCode: d.Hotel.CityCode,
			Lat:      d.Hotel.Latitude,
			Lng:      d.Hotel.Longitude,
			Offers:   make([]models.Offer, 0, len(d.Offers)),
		}

		cheapest := -1.0
		for _, o := range d.Offers {
			hotel.Offers = append(hotel.Offers, models.Offer{
				ID:           o.ID,
				CheckInDate:  o.CheckInDate,
				CheckOutDate: o.CheckOutDate,
				Room:         o.Room.Description.Text,
				Price:        o.Price.Total,
				Currency:     o.Price.Currency,
			})

			if total, err := strconv.ParseFloat(o.Price.Total, 64); err == nil && (cheapest < 0 || total < cheapest) {
				cheapest = total
				hotel.Price = o.Price.Total
				hotel.Currency = o.Price.Currency
			}
		}

		hotels = append(hotels, hotel)
	}

	return hotels, nil
}

// SearchLocations looks up airports and cities by keyword.
func (c *AmadeusClient) SearchLocations(ctx context.Context, keyword string) ([]models.Airport, error) {
	params := url.Values{}
	params.Set("subType", "AIRPORT,CITY")
	params.Set("keyword", keyword)

	var body struct {
		Data []struct {
			SubType  string `json:"subType"`
			Name     string `json:"name"`
			IATACode string `json:"iataCode"`
			Address  struct {
				CityName    string `json:"cityName"`
				CountryName string `json:"countryName"`
				CountryCode string `json:"countryCode"`
			} `json:"address"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v1/reference-data/locations", params, &body); err != nil {
		return nil, err
	}

	airports := make([]models.Airport, 0, len(body.Data))
	for _, d := range body.Data {
		airports = append(airports, models.Airport{
			Code:    d.IATACode,
			Name:    d.Name,
			City:    d.Address.CityName,
			Country: firstNonEmpty(d.Address.CountryName, d.Address.CountryCode),
			Type:    strings.ToLower(d.SubType),
		})
	}

	return airports, nil
}

type FlightQuery struct {
	Origin      string
	Destination string
	Date        string
	Adults      int
	Max         int
}

// FlightOffers searches one-way offers; each offer is flattened to its first
// itinerary.
func (c *AmadeusClient) FlightOffers(ctx context.Context, q FlightQuery) ([]models.Flight, error) {
	adults := q.Adults
	if adults < 1 {
		adults = 1
	}

	params := url.Values{}
	params.Set("originLocationCode", strings.ToUpper(q.Origin))
	params.Set("destinationLocationCode", strings.ToUpper(q.Destination))
	params.Set("departureDate", q.Date)
	params.Set("adults", strconv.Itoa(adults))
	if q.Max > 0 {
		params.Set("max", strconv.Itoa(q.Max))
	}

	type endpoint struct {
		IATACode string `json:"iataCode"`
		At       string `json:"at"`
	}

	var body struct {
		Data []struct {
			ID          string `json:"id"`
			Itineraries []struct {
				Duration string `json:"duration"`
				Segments []struct {
					Departure   endpoint `json:"departure"`
					Arrival     endpoint `json:"arrival"`
					CarrierCode string   `json:"carrierCode"`
					Number      string   `json:"number"`
				} `json:"segments"`
			} `json:"itineraries"`
			Price struct {
				Currency   string `json:"currency"`
				Total      string `json:"total"`
				GrandTotal string `json:"grandTotal"`
			} `json:"price"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v2/shopping/flight-offers", params, &body); err != nil {
		return nil, err
	}

	flights := make([]models.Flight, 0, len(body.Data))
	for _, d := range body.Data {
		if len(d.Itineraries) == 0 || len(d.Itineraries[0].Segments) == 0 {
			continue
		}

		it := d.Itineraries[0]
		first, last := it.Segments[0], it.Segments[len(it.Segments)-1]

		flights = append(flights, models.Flight{
			ID:           d.ID,
			Origin:       first.Departure.IATACode,
			Destination:  last.Arrival.IATACode,
			DepartureAt:  first.Departure.At,
			ArrivalAt:    last.Arrival.At,
			Carrier:      first.CarrierCode,
			FlightNumber: fmt.Sprintf("%s%s", first.CarrierCode, first.Number),
			Duration:     it.Duration,
			Stops:        len(it.Segments) - 1,
			Price:        firstNonEmpty(d.Price.GrandTotal, d.Price.Total),
			Currency:     d.Price.Currency,
		})
	}

	return flights, nil
}

func joinNonEmpty(parts []string, sep string) string {
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
