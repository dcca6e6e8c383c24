package repository

import (
	"context"
	"errors"
	"strings"

	"aventra/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, userID int64) (bool, error)
}

type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) (int64, error)
	List(ctx context.Context) ([]models.Trip, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetSummary(ctx context.Context, postID int64) (*models.PostSummary, error)
	List(ctx context.Context) ([]models.PostSummary, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (int64, error)
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.CommentRow, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID int64) error
}

type LikeRepository interface {
	Exists(ctx context.Context, userID int64, targetType string, targetID int64) (bool, error)
	Create(ctx context.Context, like *models.Like) error
	Count(ctx context.Context, targetType string, targetID int64) (int, error)
	Delete(ctx context.Context, userID int64, targetType string, targetID int64) error
}

type EventRepository interface {
	Search(ctx context.Context, filter EventFilter) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) (int64, error)
	CreateBatch(ctx context.Context, events []models.Event) (int, error)
}

type WishlistRepository interface {
	Exists(ctx context.Context, email, destination string) (bool, error)
	Create(ctx context.Context, item *models.WishlistItem) (int64, error)
	ListByEmail(ctx context.Context, email string) ([]models.WishlistItem, error)
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User     UserRepository
	Trip     TripRepository
	Post     PostRepository
	Comment  CommentRepository
	Like     LikeRepository
	Event    EventRepository
	Wishlist WishlistRepository
	Tables   TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Trip:     NewTripRepository(db),
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
		Like:     NewLikeRepository(db),
		Event:    NewEventRepository(db),
		Wishlist: NewWishlistRepository(db),
		Tables:   NewTablesRepository(db),
	}
}

// isUniqueViolation reports whether err came from a UNIQUE constraint on
// either supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
