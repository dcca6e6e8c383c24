package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"aventra/internal/provider"
	"aventra/internal/repository"
	"aventra/internal/service"
	"aventra/internal/storage"
)

// ErrorResponse is the body of every error reply. Details carries the
// upstream failure on 502 responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeServiceError maps service, repository and provider errors to HTTP
// statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var upErr *provider.UpstreamError

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrInvalidName):
		WriteError(w, "invalid file name", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "you are not the owner of this resource", http.StatusForbidden)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, storage.ErrObjectNotFound):
		WriteError(w, "not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrConflict):
		WriteError(w, "already exists", http.StatusConflict)
	case errors.Is(err, service.ErrAuthDisabled), errors.Is(err, provider.ErrNotConfigured):
		WriteError(w, err.Error(), http.StatusServiceUnavailable)
	case errors.As(err, &upErr):
		log.Printf("upstream failure: %v", err)
		WriteJSON(w, ErrorResponse{Error: "upstream request failed", Details: err.Error()}, http.StatusBadGateway)
	default:
		log.Printf("internal error: %v", err)
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
