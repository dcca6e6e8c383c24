package service

import (
	"context"
	"fmt"
	"testing"

	"aventra/internal/activity"
	"aventra/internal/models"
	"aventra/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type likeFixture struct {
	svc         LikeService
	likeRepo    *MockLikeRepository
	postRepo    *MockPostRepository
	commentRepo *MockCommentRepository
	pub         *recordingPublisher
}

func newLikeFixture() *likeFixture {
	f := &likeFixture{
		likeRepo:    new(MockLikeRepository),
		postRepo:    new(MockPostRepository),
		commentRepo: new(MockCommentRepository),
		pub:         &recordingPublisher{},
	}
	f.svc = NewLikeService(f.likeRepo, f.postRepo, f.commentRepo, f.pub)
	return f
}

func TestLike_NewLike(t *testing.T) {
	f := newLikeFixture()
	f.postRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Post{ID: 1}, nil)
	f.likeRepo.On("Exists", mock.Anything, int64(7), models.TargetPost, int64(1)).Return(false, nil)
	f.likeRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.likeRepo.On("Count", mock.Anything, models.TargetPost, int64(1)).Return(1, nil)

	count, err := f.svc.Like(context.Background(), int64Ptr(7), models.TargetPost, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{activity.LikeCreated}, f.pub.Types())
}

func TestLike_AlreadyLikedIsNoop(t *testing.T) {
	f := newLikeFixture()
	f.postRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Post{ID: 1}, nil)
	f.likeRepo.On("Exists", mock.Anything, int64(7), models.TargetPost, int64(1)).Return(true, nil)
	f.likeRepo.On("Count", mock.Anything, models.TargetPost, int64(1)).Return(1, nil)

	count, err := f.svc.Like(context.Background(), int64Ptr(7), models.TargetPost, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	f.likeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, f.pub.Types())
}

func TestLike_ConcurrentDuplicateTreatedAsLiked(t *testing.T) {
	f := newLikeFixture()
	f.commentRepo.On("GetByID", mock.Anything, int64(4)).Return(&models.Comment{ID: 4, PostID: 1}, nil)
	f.likeRepo.On("Exists", mock.Anything, int64(7), models.TargetComment, int64(4)).Return(false, nil)
	f.likeRepo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("like: %w", repository.ErrConflict))
	f.likeRepo.On("Count", mock.Anything, models.TargetComment, int64(4)).Return(1, nil)

	count, err := f.svc.Like(context.Background(), int64Ptr(7), models.TargetComment, 4)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Empty(t, f.pub.Types())
}

func TestLike_Validation(t *testing.T) {
	f := newLikeFixture()

	_, err := f.svc.Like(context.Background(), nil, models.TargetPost, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Like(context.Background(), int64Ptr(1), "trip", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f.postRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)
	_, err = f.svc.Like(context.Background(), int64Ptr(1), models.TargetPost, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUnlike_Idempotent(t *testing.T) {
	f := newLikeFixture()
	f.postRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Post{ID: 1}, nil)
	f.likeRepo.On("Delete", mock.Anything, int64(7), models.TargetPost, int64(1)).Return(repository.ErrNotFound)
	f.likeRepo.On("Count", mock.Anything, models.TargetPost, int64(1)).Return(0, nil)

	count, err := f.svc.Unlike(context.Background(), int64Ptr(7), models.TargetPost, 1)

	require.NoError(t, err)
	assert.Zero(t, count)
}
