package service

import (
	"context"
	"fmt"
	"strings"

	"aventra/internal/models"
	"aventra/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func hashPassword(password string) (*string, error) {
	if password == "" {
		return nil, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashed := string(hash)
	return &hashed, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// CreateUser stores a user; the password is optional and kept only as a
// bcrypt hash. A taken email yields repository.ErrConflict.
func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" {
		return nil, invalidf("username and email are required")
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
