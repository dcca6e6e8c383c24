package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"aventra/internal/models"
	"aventra/internal/service"
)

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AddUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

type AddTripRequest struct {
	UserID      int64   `json:"user_id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

type WishlistRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Destination string `json:"destination" validate:"required"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}

	WriteJSON(w, response, http.StatusOK)
}

// AddUser accepts a JSON body or a submitted form.
func (h *Handlers) AddUser(w http.ResponseWriter, r *http.Request) {
	var req AddUserRequest

	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			WriteError(w, "invalid form", http.StatusBadRequest)
			return
		}
		req = AddUserRequest{
			Username: strings.TrimSpace(r.FormValue("username")),
			Email:    strings.TrimSpace(r.FormValue("email")),
			Password: r.FormValue("password"),
		}
		if err := h.Validate.Struct(req); err != nil {
			WriteError(w, describeValidation(err), http.StatusBadRequest)
			return
		}
	} else if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, IDResponse{ID: user.ID}, http.StatusCreated)
}

func (h *Handlers) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.TripService.ListTrips(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, trips, http.StatusOK)
}

func (h *Handlers) AddTrip(w http.ResponseWriter, r *http.Request) {
	var req AddTripRequest

	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			WriteError(w, "invalid form", http.StatusBadRequest)
			return
		}
		userID, _ := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
		req = AddTripRequest{
			UserID:      userID,
			Title:       strings.TrimSpace(r.FormValue("title")),
			Description: optional(r.FormValue("description")),
			StartDate:   optional(r.FormValue("start_date")),
			EndDate:     optional(r.FormValue("end_date")),
		}
		if err := h.Validate.Struct(req); err != nil {
			WriteError(w, describeValidation(err), http.StatusBadRequest)
			return
		}
	} else if !h.decodeJSON(w, r, &req) {
		return
	}

	id, err := h.TripService.CreateTrip(r.Context(), &models.Trip{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, IDResponse{ID: id}, http.StatusCreated)
}

func (h *Handlers) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var req WishlistRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	created, err := h.WishlistService.Add(r.Context(), req.Email, req.Destination)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !created {
		WriteJSON(w, MessageResponse{Message: "Destination already in wishlist"}, http.StatusOK)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Destination added to wishlist"}, http.StatusCreated)
}

func (h *Handlers) GetWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.WishlistService.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]interface{}{"items": items}, http.StatusOK)
}
