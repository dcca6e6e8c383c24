package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"aventra/internal/config"
	"aventra/internal/models"
	"aventra/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.PasswordHash != nil &&
			bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("secret1")) == nil
	})).Return(int64(1), nil)

	user, err := NewUserService(repo).CreateUser(context.Background(), CreateUserInput{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	repo.AssertExpectations(t)
}

func TestCreateUser_Validation(t *testing.T) {
	repo := new(MockUserRepository)

	_, err := NewUserService(repo).CreateUser(context.Background(), CreateUserInput{Username: "alice"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), fmt.Errorf("user: %w", repository.ErrConflict))

	_, err := NewUserService(repo).CreateUser(context.Background(), CreateUserInput{Username: "a", Email: "a@b.c"})

	assert.ErrorIs(t, err, repository.ErrConflict)
}

func authConfig(secret string) *config.Config {
	return &config.Config{JWTSecretKey: secret, AccessTokenDuration: time.Hour}
}

func TestAuth_RegisterIssuesToken(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(int64(42), nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = 42
	})

	user, token, err := NewAuthService(repo, authConfig("s3cret")).Register(context.Background(), CreateUserInput{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return []byte("s3cret"), nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["user_id"])
}

func TestAuth_RegisterShortPassword(t *testing.T) {
	_, _, err := NewAuthService(new(MockUserRepository), authConfig("s")).Register(context.Background(), CreateUserInput{
		Username: "a", Email: "a@b.c", Password: "123",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuth_Disabled(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), authConfig(""))

	_, _, err := svc.Register(context.Background(), CreateUserInput{Username: "a", Email: "a@b.c", Password: "secret1"})
	assert.ErrorIs(t, err, ErrAuthDisabled)

	_, _, err = svc.Login(context.Background(), "a@b.c", "secret1")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestAuth_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&models.User{ID: 1, Email: "alice@example.com", PasswordHash: &hashed}, nil)
	repo.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrNotFound)
	repo.On("GetByEmail", mock.Anything, "nopass@example.com").
		Return(&models.User{ID: 2, Email: "nopass@example.com"}, nil)

	svc := NewAuthService(repo, authConfig("s3cret"))

	user, token, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nopass@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestWishlist_Add(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		mockSetup     func(*MockUserRepository, *MockWishlistRepository)
		expectCreated bool
		expectedErr   error
	}{
		{
			name:  "New entry",
			email: "alice@example.com",
			mockSetup: func(users *MockUserRepository, wl *MockWishlistRepository) {
				users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&models.User{ID: 1}, nil)
				wl.On("Exists", mock.Anything, "alice@example.com", "Lisbon").Return(false, nil)
				wl.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)
			},
			expectCreated: true,
		},
		{
			name:  "Already present",
			email: "alice@example.com",
			mockSetup: func(users *MockUserRepository, wl *MockWishlistRepository) {
				users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&models.User{ID: 1}, nil)
				wl.On("Exists", mock.Anything, "alice@example.com", "Lisbon").Return(true, nil)
			},
		},
		{
			name:  "Lost race",
			email: "alice@example.com",
			mockSetup: func(users *MockUserRepository, wl *MockWishlistRepository) {
				users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&models.User{ID: 1}, nil)
				wl.On("Exists", mock.Anything, "alice@example.com", "Lisbon").Return(false, nil)
				wl.On("Create", mock.Anything, mock.Anything).Return(int64(0), repository.ErrConflict)
			},
		},
		{
			name:  "Unknown user",
			email: "ghost@example.com",
			mockSetup: func(users *MockUserRepository, wl *MockWishlistRepository) {
				users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)
			},
			expectedErr: repository.ErrNotFound,
		},
		{
			name:        "Missing email",
			mockSetup:   func(users *MockUserRepository, wl *MockWishlistRepository) {},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			wl := new(MockWishlistRepository)
			tt.mockSetup(users, wl)

			created, err := NewWishlistService(wl, users).Add(context.Background(), tt.email, "Lisbon")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectCreated, created)
		})
	}
}

func TestWishlist_ListRequiresEmail(t *testing.T) {
	_, err := NewWishlistService(new(MockWishlistRepository), new(MockUserRepository)).List(context.Background(), " ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

type stubTripRepository struct {
	created *models.Trip
}

func (s *stubTripRepository) Create(_ context.Context, trip *models.Trip) (int64, error) {
	s.created = trip
	return 3, nil
}

func (s *stubTripRepository) List(context.Context) ([]models.Trip, error) {
	return []models.Trip{}, nil
}

func TestCreateTrip(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	users.On("Exists", mock.Anything, int64(2)).Return(false, nil)
	trips := &stubTripRepository{}
	svc := NewTripService(trips, users)

	id, err := svc.CreateTrip(context.Background(), &models.Trip{UserID: 1, Title: " Japan "})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, "Japan", trips.created.Title)

	_, err = svc.CreateTrip(context.Background(), &models.Trip{UserID: 2, Title: "Peru"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.CreateTrip(context.Background(), &models.Trip{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
