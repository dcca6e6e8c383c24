package handlers

import (
	"net/http"
	"strconv"

	"aventra/internal/models"
	"aventra/internal/service"

	"github.com/gorilla/mux"
)

type EventSearchResponse struct {
	Results []models.EventResult `json:"results"`
	Source  string               `json:"source"`
}

type HotelSearchResponse struct {
	Hotels []models.Hotel `json:"hotels"`
	Source string         `json:"source"`
}

type HotelResponse struct {
	Hotel  *models.Hotel `json:"hotel"`
	Source string        `json:"source"`
}

type AirportsResponse struct {
	Airports []models.Airport `json:"airports"`
}

type FlightSearchResponse struct {
	Flights []models.Flight `json:"flights"`
	Source  string          `json:"source"`
}

type GeocodeResponse struct {
	Results []models.GeoResult `json:"results"`
}

type PlacesResponse struct {
	Results []models.Place `json:"results"`
}

func (h *Handlers) SearchEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, source, err := h.SearchService.SearchEvents(r.Context(), service.EventSearch{
		Query: q.Get("q"),
		Start: q.Get("start"),
		End:   q.Get("end"),
		Limit: queryInt(r, "limit"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, EventSearchResponse{Results: results, Source: source}, http.StatusOK)
}

func hotelQuery(r *http.Request) service.HotelSearch {
	q := r.URL.Query()
	return service.HotelSearch{
		City:     q.Get("city"),
		CheckIn:  q.Get("check_in"),
		CheckOut: q.Get("check_out"),
		Adults:   queryInt(r, "adults"),
	}
}

func (h *Handlers) SearchHotels(w http.ResponseWriter, r *http.Request) {
	hotels, source, err := h.HotelService.SearchHotels(r.Context(), hotelQuery(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, HotelSearchResponse{Hotels: hotels, Source: source}, http.StatusOK)
}

func (h *Handlers) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotel, source, err := h.HotelService.GetHotel(r.Context(), mux.Vars(r)["id"], hotelQuery(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, HotelResponse{Hotel: hotel, Source: source}, http.StatusOK)
}

func (h *Handlers) SearchAirports(w http.ResponseWriter, r *http.Request) {
	airports, err := h.FlightService.SearchAirports(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, AirportsResponse{Airports: airports}, http.StatusOK)
}

func (h *Handlers) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	flights, source, err := h.FlightService.SearchFlights(r.Context(), service.FlightSearch{
		Origin:      q.Get("origin"),
		Destination: q.Get("destination"),
		Date:        q.Get("date"),
		Adults:      queryInt(r, "adults"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, FlightSearchResponse{Flights: flights, Source: source}, http.StatusOK)
}

func (h *Handlers) GetFlight(w http.ResponseWriter, r *http.Request) {
	flight, err := h.FlightService.GetFlight(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, flight, http.StatusOK)
}

func (h *Handlers) Geocode(w http.ResponseWriter, r *http.Request) {
	results, err := h.GeoService.Geocode(r.Context(), r.URL.Query().Get("q"), queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, GeocodeResponse{Results: results}, http.StatusOK)
}

func (h *Handlers) PlacesRadius(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	if errLat != nil || errLon != nil {
		WriteError(w, "lat and lon are required numbers", http.StatusBadRequest)
		return
	}

	places, err := h.GeoService.PlacesNearby(r.Context(), service.PlacesSearch{
		Lat:    lat,
		Lon:    lon,
		Radius: queryInt(r, "radius"),
		Limit:  queryInt(r, "limit"),
		Kinds:  q.Get("kinds"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, PlacesResponse{Results: places}, http.StatusOK)
}

func (h *Handlers) PlaceDetails(w http.ResponseWriter, r *http.Request) {
	place, err := h.GeoService.PlaceDetails(r.Context(), mux.Vars(r)["xid"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, place, http.StatusOK)
}
