package service

import (
	"context"
	"testing"

	"aventra/internal/activity"
	"aventra/internal/models"
	"aventra/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentService() (CommentService, *MockCommentRepository, *MockPostRepository, *recordingPublisher) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	pub := &recordingPublisher{}
	return NewCommentService(commentRepo, postRepo, pub), commentRepo, postRepo, pub
}

func TestCreateComment(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateCommentInput
		postErr     error
		expectedErr error
	}{
		{name: "Success", input: CreateCommentInput{Text: "Great", Rating: intPtr(5), ParentCommentID: int64Ptr(1)}},
		{name: "Missing text", input: CreateCommentInput{Text: ""}, expectedErr: ErrInvalidInput},
		{name: "Rating too low", input: CreateCommentInput{Text: "x", Rating: intPtr(0)}, expectedErr: ErrInvalidInput},
		{name: "Rating too high", input: CreateCommentInput{Text: "x", Rating: intPtr(6)}, expectedErr: ErrInvalidInput},
		{name: "Unknown post", input: CreateCommentInput{Text: "x"}, postErr: repository.ErrNotFound, expectedErr: repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, commentRepo, postRepo, pub := newCommentService()
			if tt.postErr != nil {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, tt.postErr)
			} else {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Post{ID: 1}, nil)
			}
			commentRepo.On("Create", mock.Anything, mock.Anything).Return(int64(12), nil)

			id, err := svc.CreateComment(context.Background(), 1, tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(12), id)
			assert.Equal(t, []string{activity.CommentCreated}, pub.Types())
		})
	}
}

func TestListComments_UnknownPost(t *testing.T) {
	svc, _, postRepo, _ := newCommentService()
	postRepo.On("GetByID", mock.Anything, int64(2)).Return(nil, repository.ErrNotFound)

	_, err := svc.ListComments(context.Background(), 2)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateComment(t *testing.T) {
	t.Run("Owner changes rating", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentService()
		commentRepo.On("GetByID", mock.Anything, int64(3)).Return(&models.Comment{ID: 3, UserID: int64Ptr(1), Text: "old"}, nil)
		commentRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.Text == "old" && c.Rating != nil && *c.Rating == 4
		})).Return(nil)

		err := svc.UpdateComment(context.Background(), 3, UpdateCommentInput{CallerID: int64Ptr(1), Rating: intPtr(4)})

		require.NoError(t, err)
		commentRepo.AssertExpectations(t)
	})

	t.Run("Non-owner forbidden", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentService()
		commentRepo.On("GetByID", mock.Anything, int64(3)).Return(&models.Comment{ID: 3, UserID: int64Ptr(1), Text: "old"}, nil)

		err := svc.UpdateComment(context.Background(), 3, UpdateCommentInput{CallerID: int64Ptr(2), Text: stringPtr("new")})

		assert.ErrorIs(t, err, ErrForbidden)
		commentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Invalid rating", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentService()
		commentRepo.On("GetByID", mock.Anything, int64(3)).Return(&models.Comment{ID: 3, Text: "old"}, nil)

		err := svc.UpdateComment(context.Background(), 3, UpdateCommentInput{Rating: intPtr(9)})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDeleteComment(t *testing.T) {
	svc, commentRepo, _, pub := newCommentService()
	commentRepo.On("GetByID", mock.Anything, int64(3)).Return(&models.Comment{ID: 3, PostID: 1, UserID: int64Ptr(1)}, nil)
	commentRepo.On("Delete", mock.Anything, int64(3)).Return(nil)

	require.NoError(t, svc.DeleteComment(context.Background(), 3, int64Ptr(1)))
	assert.Equal(t, []string{activity.CommentDeleted}, pub.Types())

	err := svc.DeleteComment(context.Background(), 3, int64Ptr(2))
	assert.ErrorIs(t, err, ErrForbidden)
}
