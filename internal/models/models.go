package models

import (
	"encoding/json"
	"time"
)

const (
	TargetPost    = "post"
	TargetComment = "comment"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Trip struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	StartDate   *string   `json:"start_date" db:"start_date"`
	EndDate     *string   `json:"end_date" db:"end_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Post is a persisted post row. Extra holds arbitrary JSON supplied by
// the client and is stored verbatim as text.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   *string   `json:"content" db:"content"`
	Image     *string   `json:"image" db:"image"`
	Extra     *string   `json:"-" db:"extra"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PostSummary is a row of the post listing.
type PostSummary struct {
	Post
	Username     *string `json:"username" db:"username"`
	Likes        int     `json:"likes" db:"likes"`
	CommentCount int     `json:"comment_count" db:"comment_count"`
}

type Comment struct {
	ID              int64     `json:"id" db:"id"`
	PostID          int64     `json:"post_id" db:"post_id"`
	UserID          *int64    `json:"user_id" db:"user_id"`
	Text            string    `json:"text" db:"text"`
	Rating          *int      `json:"rating" db:"rating"`
	Image           *string   `json:"image" db:"image"`
	ParentCommentID *int64    `json:"parent_comment_id" db:"parent_comment_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CommentRow is a comment joined with its author's username and like count.
type CommentRow struct {
	Comment
	Username *string `db:"username"`
	Likes    int     `db:"likes"`
}

// CommentNode is a comment inside an assembled reply tree.
type CommentNode struct {
	Comment
	Author  string         `json:"author"`
	Likes   int            `json:"likes"`
	Replies []*CommentNode `json:"replies"`
}

type Like struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	TargetType string    `json:"target_type" db:"target_type"`
	TargetID   int64     `json:"target_id" db:"target_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       *string   `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	StartTime   *string   `json:"start_time" db:"start_time"`
	EndTime     *string   `json:"end_time" db:"end_time"`
	Venue       *string   `json:"venue" db:"venue"`
	Lat         *float64  `json:"lat" db:"lat"`
	Lng         *float64  `json:"lng" db:"lng"`
	URL         *string   `json:"url" db:"url"`
	Source      *string   `json:"source" db:"source"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type WishlistItem struct {
	ID          int64     `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	Destination string    `json:"destination" db:"destination"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// PostDetail is the response of the post detail endpoint.
type PostDetail struct {
	ID        int64           `json:"id"`
	UserID    *int64          `json:"user_id"`
	Username  *string         `json:"username"`
	Title     string          `json:"title"`
	Content   *string         `json:"content"`
	Image     *string         `json:"image"`
	Extra     json.RawMessage `json:"extra"`
	CreatedAt time.Time       `json:"created_at"`
	Likes     int             `json:"likes"`
	Comments  []*CommentNode  `json:"comments"`
}
