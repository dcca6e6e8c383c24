package service

import (
	"context"
	"errors"

	"aventra/internal/activity"
	"aventra/internal/models"
	"aventra/internal/repository"
)

type LikeService interface {
	// Like records the caller's like once and returns the target's like
	// count. Repeating it is a no-op.
	Like(ctx context.Context, userID *int64, targetType string, targetID int64) (int, error)
	// Unlike removes the caller's like, if any, and returns the count.
	Unlike(ctx context.Context, userID *int64, targetType string, targetID int64) (int, error)
}

type likeService struct {
	likeRepo    repository.LikeRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	publisher   activity.Publisher
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository,
	commentRepo repository.CommentRepository, publisher activity.Publisher) LikeService {
	return &likeService{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
	}
}

// target loads the liked row and returns the event for a new like on it.
func (s *likeService) target(ctx context.Context, userID *int64, targetType string, targetID int64) (activity.Event, error) {
	event := activity.Event{Type: activity.LikeCreated, UserID: userID}

	switch targetType {
	case models.TargetPost:
		if _, err := s.postRepo.GetByID(ctx, targetID); err != nil {
			return event, err
		}
		event.PostID = &targetID
	case models.TargetComment:
		comment, err := s.commentRepo.GetByID(ctx, targetID)
		if err != nil {
			return event, err
		}
		event.PostID = &comment.PostID
		event.CommentID = &targetID
	default:
		return event, invalidf("unknown like target %q", targetType)
	}

	return event, nil
}

func (s *likeService) Like(ctx context.Context, userID *int64, targetType string, targetID int64) (int, error) {
	if userID == nil {
		return 0, invalidf("user_id is required")
	}

	event, err := s.target(ctx, userID, targetType, targetID)
	if err != nil {
		return 0, err
	}

	exists, err := s.likeRepo.Exists(ctx, *userID, targetType, targetID)
	if err != nil {
		return 0, err
	}

	if !exists {
		err := s.likeRepo.Create(ctx, &models.Like{UserID: *userID, TargetType: targetType, TargetID: targetID})
		switch {
		case err == nil:
			s.publisher.Publish(ctx, event)
		case errors.Is(err, repository.ErrConflict):
			// a concurrent request inserted the same like
		default:
			return 0, err
		}
	}

	return s.likeRepo.Count(ctx, targetType, targetID)
}

func (s *likeService) Unlike(ctx context.Context, userID *int64, targetType string, targetID int64) (int, error) {
	if userID == nil {
		return 0, invalidf("user_id is required")
	}

	if _, err := s.target(ctx, userID, targetType, targetID); err != nil {
		return 0, err
	}

	if err := s.likeRepo.Delete(ctx, *userID, targetType, targetID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}

	return s.likeRepo.Count(ctx, targetType, targetID)
}
