package service

import (
	"context"
	"sync"

	"aventra/internal/activity"
	"aventra/internal/models"
	"aventra/internal/provider"
	"aventra/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetSummary(ctx context.Context, postID int64) (*models.PostSummary, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostSummary), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]models.PostSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostSummary), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]models.CommentRow, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentRow), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID int64, targetType string, targetID int64) (bool, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Create(ctx context.Context, like *models.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Count(ctx context.Context, targetType string, targetID int64) (int, error) {
	args := m.Called(ctx, targetType, targetID)
	return args.Int(0), args.Error(1)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID int64, targetType string, targetID int64) error {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Exists(ctx context.Context, email, destination string) (bool, error) {
	args := m.Called(ctx, email, destination)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepository) Create(ctx context.Context, item *models.WishlistItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWishlistRepository) ListByEmail(ctx context.Context, email string) ([]models.WishlistItem, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Search(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) CreateBatch(ctx context.Context, events []models.Event) (int, error) {
	args := m.Called(ctx, events)
	return args.Int(0), args.Error(1)
}

type MockEventSearcher struct {
	mock.Mock
}

func (m *MockEventSearcher) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockEventSearcher) SearchEvents(ctx context.Context, q provider.EventQuery) ([]models.EventResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EventResult), args.Error(1)
}

type MockTravelAPI struct {
	mock.Mock
}

func (m *MockTravelAPI) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockTravelAPI) HotelsByCity(ctx context.Context, cityCode string) ([]models.Hotel, error) {
	args := m.Called(ctx, cityCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hotel), args.Error(1)
}

func (m *MockTravelAPI) HotelOffers(ctx context.Context, q provider.OfferQuery) ([]models.Hotel, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hotel), args.Error(1)
}

func (m *MockTravelAPI) SearchLocations(ctx context.Context, keyword string) ([]models.Airport, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Airport), args.Error(1)
}

func (m *MockTravelAPI) FlightOffers(ctx context.Context, q provider.FlightQuery) ([]models.Flight, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

// recordingPublisher keeps published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []activity.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e activity.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

func int64Ptr(i int64) *int64 { return &i }

func stringPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
