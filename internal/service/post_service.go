package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"aventra/internal/activity"
	"aventra/internal/models"
	"aventra/internal/repository"
)

type CreatePostInput struct {
	UserID  *int64
	Title   string
	Content *string
	Image   *string
	Extra   json.RawMessage
}

// UpdatePostInput is a partial update: nil fields are left unchanged. An
// Extra of JSON null clears the stored value.
type UpdatePostInput struct {
	CallerID *int64
	Title    *string
	Content  *string
	Image    *string
	Extra    json.RawMessage
}

type PostService interface {
	CreatePost(ctx context.Context, in CreatePostInput) (int64, error)
	ListPosts(ctx context.Context) ([]models.PostSummary, error)
	GetPost(ctx context.Context, postID int64) (*models.PostDetail, error)
	UpdatePost(ctx context.Context, postID int64, in UpdatePostInput) error
	DeletePost(ctx context.Context, postID int64, callerID *int64) error
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	publisher   activity.Publisher
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, publisher activity.Publisher) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
	}
}

// encodeExtra validates raw client JSON. Absent or null extra is stored as
// NULL.
func encodeExtra(raw json.RawMessage) (*string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	if !json.Valid([]byte(trimmed)) {
		return nil, invalidf("extra must be valid JSON")
	}
	return &trimmed, nil
}

func decodeExtra(stored *string) json.RawMessage {
	if stored == nil {
		return nil
	}
	if json.Valid([]byte(*stored)) {
		return json.RawMessage(*stored)
	}
	// text written outside the API is returned as a JSON string
	quoted, _ := json.Marshal(*stored)
	return quoted
}

func (p *postService) CreatePost(ctx context.Context, in CreatePostInput) (int64, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return 0, invalidf("title is required")
	}

	extra, err := encodeExtra(in.Extra)
	if err != nil {
		return 0, err
	}

	post := &models.Post{
		UserID:  in.UserID,
		Title:   title,
		Content: in.Content,
		Image:   in.Image,
		Extra:   extra,
	}

	id, err := p.postRepo.Create(ctx, post)
	if err != nil {
		return 0, err
	}

	p.publisher.Publish(ctx, activity.Event{Type: activity.PostCreated, UserID: in.UserID, PostID: &id})
	return id, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]models.PostSummary, error) {
	posts, err := p.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.PostSummary{}
	}
	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (*models.PostDetail, error) {
	post, err := p.postRepo.GetSummary(ctx, postID)
	if err != nil {
		return nil, err
	}

	rows, err := p.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &models.PostDetail{
		ID:        post.ID,
		UserID:    post.UserID,
		Username:  post.Username,
		Title:     post.Title,
		Content:   post.Content,
		Image:     post.Image,
		Extra:     decodeExtra(post.Extra),
		CreatedAt: post.CreatedAt,
		Likes:     post.Likes,
		Comments:  BuildCommentTree(rows),
	}, nil
}

func (p *postService) UpdatePost(ctx context.Context, postID int64, in UpdatePostInput) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !sameOwner(post.UserID, in.CallerID) {
		return fmt.Errorf("post %d: %w", postID, ErrForbidden)
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return invalidf("title must not be empty")
		}
		post.Title = title
	}
	if in.Content != nil {
		post.Content = in.Content
	}
	if in.Image != nil {
		post.Image = in.Image
	}
	if in.Extra != nil {
		extra, err := encodeExtra(in.Extra)
		if err != nil {
			return err
		}
		post.Extra = extra
	}

	return p.postRepo.Update(ctx, post)
}

func (p *postService) DeletePost(ctx context.Context, postID int64, callerID *int64) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !sameOwner(post.UserID, callerID) {
		return fmt.Errorf("post %d: %w", postID, ErrForbidden)
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	p.publisher.Publish(ctx, activity.Event{Type: activity.PostDeleted, UserID: callerID, PostID: &postID})
	return nil
}
