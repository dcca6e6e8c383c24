package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"aventra/internal/mockdata"
	"aventra/internal/models"
	"aventra/internal/provider"
	"aventra/internal/repository"
)

// maxOfferHotels caps how many hotel ids one offers request carries.
const maxOfferHotels = 20

type HotelSearch struct {
	City     string
	CheckIn  string
	CheckOut string
	Adults   int
}

type HotelService interface {
	SearchHotels(ctx context.Context, q HotelSearch) ([]models.Hotel, string, error)
	GetHotel(ctx context.Context, hotelID string, q HotelSearch) (*models.Hotel, string, error)
}

type hotelService struct {
	travel  TravelAPI
	catalog *mockdata.Catalog
}

func NewHotelService(travel TravelAPI, catalog *mockdata.Catalog) HotelService {
	return &hotelService{travel: travel, catalog: catalog}
}

func (s *hotelService) configured() bool {
	return s.travel != nil && s.travel.Configured()
}

// SearchHotels lists hotels in a city. With a check-in date the cheapest
// offers are attached; a failing offers call leaves the list without them.
func (s *hotelService) SearchHotels(ctx context.Context, q HotelSearch) ([]models.Hotel, string, error) {
	city := strings.ToUpper(strings.TrimSpace(q.City))
	if city == "" {
		return nil, "", invalidf("city is required")
	}

	if !s.configured() {
		fallback(provider.Amadeus, provider.ErrNotConfigured)
		return s.catalog.HotelsByCity(city), mockdata.Source, nil
	}

	hotels, err := s.travel.HotelsByCity(ctx, city)
	if err != nil || len(hotels) == 0 {
		fallback(provider.Amadeus, err)
		return s.catalog.HotelsByCity(city), mockdata.Source, nil
	}

	if q.CheckIn == "" {
		return hotels, provider.Amadeus, nil
	}

	ids := make([]string, 0, maxOfferHotels)
	for i := 0; i < len(hotels) && i < maxOfferHotels; i++ {
		ids = append(ids, hotels[i].ID)
	}

	priced, err := s.travel.HotelOffers(ctx, provider.OfferQuery{
		HotelIDs: ids,
		CheckIn:  q.CheckIn,
		CheckOut: q.CheckOut,
		Adults:   q.Adults,
	})
	if err != nil {
		log.Printf("amadeus hotel offers for %s failed: %v", city, err)
		return hotels, provider.Amadeus, nil
	}

	byID := make(map[string]models.Hotel, len(priced))
	for _, h := range priced {
		byID[h.ID] = h
	}
	for i, h := range hotels {
		if p, ok := byID[h.ID]; ok {
			hotels[i].Offers = p.Offers
			hotels[i].Price = p.Price
			hotels[i].Currency = p.Currency
		}
	}

	return hotels, provider.Amadeus, nil
}

// GetHotel returns one hotel with its offers. An upstream 404 is final;
// other upstream failures fall back to the catalog and surface only when
// the catalog has no such hotel.
func (s *hotelService) GetHotel(ctx context.Context, hotelID string, q HotelSearch) (*models.Hotel, string, error) {
	hotelID = strings.TrimSpace(hotelID)
	if hotelID == "" {
		return nil, "", invalidf("hotel id is required")
	}

	fromCatalog := func() (*models.Hotel, string, error) {
		if h, ok := s.catalog.Hotel(hotelID); ok {
			return &h, mockdata.Source, nil
		}
		return nil, "", fmt.Errorf("hotel %s: %w", hotelID, repository.ErrNotFound)
	}

	if !s.configured() {
		fallback(provider.Amadeus, provider.ErrNotConfigured)
		return fromCatalog()
	}

	hotels, err := s.travel.HotelOffers(ctx, provider.OfferQuery{
		HotelIDs: []string{hotelID},
		CheckIn:  q.CheckIn,
		CheckOut: q.CheckOut,
		Adults:   q.Adults,
	})
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, "", fmt.Errorf("hotel %s: %w", hotelID, repository.ErrNotFound)
		}
		if h, ok := s.catalog.Hotel(hotelID); ok {
			fallback(provider.Amadeus, err)
			return &h, mockdata.Source, nil
		}
		return nil, "", err
	}

	for _, h := range hotels {
		if h.ID == hotelID {
			return &h, provider.Amadeus, nil
		}
	}

	return fromCatalog()
}
