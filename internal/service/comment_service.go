package service

import (
	"context"
	"fmt"
	"strings"

	"aventra/internal/activity"
	"aventra/internal/models"
	"aventra/internal/repository"
)

const (
	minRating = 1
	maxRating = 5
)

type CreateCommentInput struct {
	UserID          *int64
	Text            string
	Rating          *int
	Image           *string
	ParentCommentID *int64
}

type UpdateCommentInput struct {
	CallerID *int64
	Text     *string
	Rating   *int
	Image    *string
}

type CommentService interface {
	CreateComment(ctx context.Context, postID int64, in CreateCommentInput) (int64, error)
	ListComments(ctx context.Context, postID int64) ([]*models.CommentNode, error)
	UpdateComment(ctx context.Context, commentID int64, in UpdateCommentInput) error
	DeleteComment(ctx context.Context, commentID int64, callerID *int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	publisher   activity.Publisher
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, publisher activity.Publisher) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		publisher:   publisher,
	}
}

func validateRating(rating *int) error {
	if rating != nil && (*rating < minRating || *rating > maxRating) {
		return invalidf("rating must be between %d and %d", minRating, maxRating)
	}
	return nil
}

// CreateComment does not check that ParentCommentID belongs to the same
// post; BuildCommentTree copes with any parent reference.
func (s *commentService) CreateComment(ctx context.Context, postID int64, in CreateCommentInput) (int64, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return 0, invalidf("text is required")
	}
	if err := validateRating(in.Rating); err != nil {
		return 0, err
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return 0, err
	}

	comment := &models.Comment{
		PostID:          postID,
		UserID:          in.UserID,
		Text:            text,
		Rating:          in.Rating,
		Image:           in.Image,
		ParentCommentID: in.ParentCommentID,
	}

	id, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return 0, err
	}

	s.publisher.Publish(ctx, activity.Event{
		Type:      activity.CommentCreated,
		UserID:    in.UserID,
		PostID:    &postID,
		CommentID: &id,
	})
	return id, nil
}

func (s *commentService) ListComments(ctx context.Context, postID int64) ([]*models.CommentNode, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	rows, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return BuildCommentTree(rows), nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID int64, in UpdateCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !sameOwner(comment.UserID, in.CallerID) {
		return fmt.Errorf("comment %d: %w", commentID, ErrForbidden)
	}

	if in.Text != nil {
		text := strings.TrimSpace(*in.Text)
		if text == "" {
			return invalidf("text must not be empty")
		}
		comment.Text = text
	}
	if in.Rating != nil {
		if err := validateRating(in.Rating); err != nil {
			return err
		}
		comment.Rating = in.Rating
	}
	if in.Image != nil {
		comment.Image = in.Image
	}

	return s.commentRepo.Update(ctx, comment)
}

// DeleteComment removes the comment with its direct replies and their
// likes. Deeper replies stay and surface at the root of the tree.
func (s *commentService) DeleteComment(ctx context.Context, commentID int64, callerID *int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !sameOwner(comment.UserID, callerID) {
		return fmt.Errorf("comment %d: %w", commentID, ErrForbidden)
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.publisher.Publish(ctx, activity.Event{
		Type:      activity.CommentDeleted,
		UserID:    callerID,
		PostID:    &comment.PostID,
		CommentID: &commentID,
	})
	return nil
}
