package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aventra/internal/models"
	"aventra/internal/repository"
)

type WishlistService interface {
	// Add reports whether a new entry was stored; an existing entry is
	// left as is.
	Add(ctx context.Context, email, destination string) (bool, error)
	List(ctx context.Context, email string) ([]models.WishlistItem, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	userRepo     repository.UserRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, userRepo repository.UserRepository) WishlistService {
	return &wishlistService{wishlistRepo: wishlistRepo, userRepo: userRepo}
}

func (s *wishlistService) Add(ctx context.Context, email, destination string) (bool, error) {
	email = strings.TrimSpace(email)
	destination = strings.TrimSpace(destination)
	if email == "" || destination == "" {
		return false, invalidf("email and destination are required")
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return false, err
	}

	exists, err := s.wishlistRepo.Exists(ctx, email, destination)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	_, err = s.wishlistRepo.Create(ctx, &models.WishlistItem{Email: email, Destination: destination})
	if errors.Is(err, repository.ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to add %s to wishlist: %w", destination, err)
	}

	return true, nil
}

func (s *wishlistService) List(ctx context.Context, email string) ([]models.WishlistItem, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, invalidf("email is required")
	}
	return s.wishlistRepo.ListByEmail(ctx, email)
}
