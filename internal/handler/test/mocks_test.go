package test

import (
	"context"

	"aventra/internal/models"
	"aventra/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, in service.CreatePostInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]models.PostSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostSummary), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID int64) (*models.PostDetail, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostDetail), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID int64, in service.UpdatePostInput) error {
	args := m.Called(ctx, postID, in)
	return args.Error(0)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID int64, callerID *int64) error {
	args := m.Called(ctx, postID, callerID)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(ctx context.Context, postID int64, in service.CreateCommentInput) (int64, error) {
	args := m.Called(ctx, postID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentService) ListComments(ctx context.Context, postID int64) ([]*models.CommentNode, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CommentNode), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, commentID int64, in service.UpdateCommentInput) error {
	args := m.Called(ctx, commentID, in)
	return args.Error(0)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID int64, callerID *int64) error {
	args := m.Called(ctx, commentID, callerID)
	return args.Error(0)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) Like(ctx context.Context, userID *int64, targetType string, targetID int64) (int, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Int(0), args.Error(1)
}

func (m *MockLikeService) Unlike(ctx context.Context, userID *int64, targetType string, targetID int64) (int, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Int(0), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, in service.CreateUserInput) (*models.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.CreateUserInput) (*models.User, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) Add(ctx context.Context, email, destination string) (bool, error) {
	args := m.Called(ctx, email, destination)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistService) List(ctx context.Context, email string) ([]models.WishlistItem, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripService) CreateTrip(ctx context.Context, trip *models.Trip) (int64, error) {
	args := m.Called(ctx, trip)
	return args.Get(0).(int64), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func int64Ptr(v int64) *int64 { return &v }

func stringPtr(v string) *string { return &v }
