package handlers

import (
	"net/http"

	"aventra/internal/middleware"
	"aventra/internal/ratelimit"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewRouter registers every route and wraps them in the middleware stack.
// limiter may be nil, in which case the proxy routes are not limited.
func NewRouter(h *Handlers, limiter *ratelimit.Limiter) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	r.HandleFunc("/", HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/tables", h.CountTables).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/add_user", h.AddUser).Methods(http.MethodPost)
	r.HandleFunc("/trips", h.ListTrips).Methods(http.MethodGet)
	r.HandleFunc("/add_trip", h.AddTrip).Methods(http.MethodPost)

	r.HandleFunc("/api/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)

	r.HandleFunc("/api/wishlist/add", h.AddToWishlist).Methods(http.MethodPost)
	r.HandleFunc("/api/wishlist", h.GetWishlist).Methods(http.MethodGet)

	r.HandleFunc("/api/posts", h.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/posts", h.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/{id}", h.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id}", h.UpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/api/posts/{id}", h.DeletePost).Methods(http.MethodDelete)
	r.HandleFunc("/api/posts/{id}/comments", h.GetComments).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id}/comments", h.CreateComment).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/{id}/like", h.LikePost).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/{id}/like", h.UnlikePost).Methods(http.MethodDelete)

	r.HandleFunc("/api/comments/{id}", h.UpdateComment).Methods(http.MethodPut)
	r.HandleFunc("/api/comments/{id}", h.DeleteComment).Methods(http.MethodDelete)
	r.HandleFunc("/api/comments/{id}/like", h.LikeComment).Methods(http.MethodPost)
	r.HandleFunc("/api/comments/{id}/like", h.UnlikeComment).Methods(http.MethodDelete)

	r.HandleFunc("/api/upload", h.UploadImage).Methods(http.MethodPost)
	r.HandleFunc("/uploads/{file}", h.ServeUpload).Methods(http.MethodGet)
	r.HandleFunc("/placeholder-image", PlaceholderImage).Methods(http.MethodGet)

	proxy := r.PathPrefix("/api").Subrouter()
	proxy.Use(mux.MiddlewareFunc(middleware.RateLimitMiddleware(limiter)))
	proxy.HandleFunc("/search", h.SearchEvents).Methods(http.MethodGet)
	proxy.HandleFunc("/hotels/search", h.SearchHotels).Methods(http.MethodGet)
	proxy.HandleFunc("/hotels/{id}", h.GetHotel).Methods(http.MethodGet)
	proxy.HandleFunc("/airports/search", h.SearchAirports).Methods(http.MethodGet)
	proxy.HandleFunc("/flights/search", h.SearchFlights).Methods(http.MethodGet)
	proxy.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet)
	proxy.HandleFunc("/geocode", h.Geocode).Methods(http.MethodGet)
	proxy.HandleFunc("/opentripmap/radius", h.PlacesRadius).Methods(http.MethodGet)
	proxy.HandleFunc("/opentripmap/xid/{xid}", h.PlaceDetails).Methods(http.MethodGet)

	secret := ""
	if h.Cfg != nil {
		secret = h.Cfg.JWTSecretKey
	}

	chain := middleware.Chain(
		r,
		middleware.IdentityMiddleware(secret),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
		middleware.RecoverMiddleware,
	)

	return otelhttp.NewHandler(chain, "aventra")
}
