package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"aventra/internal/config"
	"aventra/internal/middleware"
	"aventra/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	UserService     service.UserService
	TripService     service.TripService
	AuthService     service.AuthService
	WishlistService service.WishlistService
	PostService     service.PostService
	CommentService  service.CommentService
	LikeService     service.LikeService
	SearchService   service.SearchService
	HotelService    service.HotelService
	FlightService   service.FlightService
	GeoService      service.GeoService
	UploadService   service.UploadService
	TablesService   service.TablesService
	DB              HealthChecker
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(service *service.Service, db HealthChecker, config *config.Config) *Handlers {
	return &Handlers{
		UserService:     service.User,
		TripService:     service.Trip,
		AuthService:     service.Auth,
		WishlistService: service.Wishlist,
		PostService:     service.Post,
		CommentService:  service.Comment,
		LikeService:     service.Like,
		SearchService:   service.Search,
		HotelService:    service.Hotel,
		FlightService:   service.Flight,
		GeoService:      service.Geo,
		UploadService:   service.Upload,
		TablesService:   service.Tables,
		DB:              db,
		Cfg:             config,
		Validate:        validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, MessageResponse{Message: "Aventra API is running"}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		WriteError(w, "database is not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.DB.HealthCheck(r.Context()); err != nil {
		WriteJSON(w, ErrorResponse{Error: "database unavailable", Details: err.Error()}, http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// decodeJSON reads the request body into dst and runs struct validation.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}

	if err := h.Validate.Struct(dst); err != nil {
		WriteError(w, describeValidation(err), http.StatusBadRequest)
		return false
	}

	return true
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}

// pathID parses the numeric {name} route variable.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// callerID resolves who is acting: the body's user_id, then the user_id
// query parameter, then the token identity.
func callerID(r *http.Request, fromBody *int64) *int64 {
	if fromBody != nil {
		return fromBody
	}

	if raw := r.URL.Query().Get("user_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return &id
		}
	}

	if id, ok := middleware.UserIDFromContext(r.Context()); ok {
		return &id
	}

	return nil
}

func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}
