package service

import (
	"context"
	"fmt"
	"strings"

	"aventra/internal/models"
	"aventra/internal/repository"
)

type TripService interface {
	ListTrips(ctx context.Context) ([]models.Trip, error)
	CreateTrip(ctx context.Context, trip *models.Trip) (int64, error)
}

type tripService struct {
	tripRepo repository.TripRepository
	userRepo repository.UserRepository
}

func NewTripService(tripRepo repository.TripRepository, userRepo repository.UserRepository) TripService {
	return &tripService{tripRepo: tripRepo, userRepo: userRepo}
}

func (s *tripService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	return s.tripRepo.List(ctx)
}

func (s *tripService) CreateTrip(ctx context.Context, trip *models.Trip) (int64, error) {
	trip.Title = strings.TrimSpace(trip.Title)
	if trip.UserID == 0 || trip.Title == "" {
		return 0, invalidf("user_id and title are required")
	}

	exists, err := s.userRepo.Exists(ctx, trip.UserID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("user %d: %w", trip.UserID, repository.ErrNotFound)
	}

	return s.tripRepo.Create(ctx, trip)
}
