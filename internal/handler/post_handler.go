package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"aventra/internal/models"
	"aventra/internal/service"
)

type CreatePostRequest struct {
	UserID  *int64          `json:"user_id"`
	Title   string          `json:"title" validate:"required"`
	Content *string         `json:"content"`
	Image   *string         `json:"image"`
	Extra   json.RawMessage `json:"extra"`
}

type UpdatePostRequest struct {
	UserID  *int64          `json:"user_id"`
	Title   *string         `json:"title"`
	Content *string         `json:"content"`
	Image   *string         `json:"image"`
	Extra   json.RawMessage `json:"extra"`
}

// CallerRequest is the optional body of delete and like requests.
type CallerRequest struct {
	UserID *int64 `json:"user_id"`
}

type LikesResponse struct {
	Likes int `json:"likes"`
}

// decodeCaller reads an optional {"user_id": n} body. An empty body is
// fine; a malformed one is not.
func decodeCaller(w http.ResponseWriter, r *http.Request) (*int64, bool) {
	var req CallerRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			WriteError(w, "invalid request body", http.StatusBadRequest)
			return nil, false
		}
	}
	return callerID(r, req.UserID), true
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	id, err := h.PostService.CreatePost(r.Context(), service.CreatePostInput{
		UserID:  callerID(r, req.UserID),
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
		Extra:   req.Extra,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, IDResponse{ID: id}, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	err := h.PostService.UpdatePost(r.Context(), postID, service.UpdatePostInput{
		CallerID: callerID(r, req.UserID),
		Title:    req.Title,
		Content:  req.Content,
		Image:    req.Image,
		Extra:    req.Extra,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post updated"}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	caller, ok := decodeCaller(w, r)
	if !ok {
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID, caller); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}

func (h *Handlers) likeHandler(targetType string, unlike bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		caller, ok := decodeCaller(w, r)
		if !ok {
			return
		}

		var (
			count int
			err   error
		)
		if unlike {
			count, err = h.LikeService.Unlike(r.Context(), caller, targetType, targetID)
		} else {
			count, err = h.LikeService.Like(r.Context(), caller, targetType, targetID)
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}

		WriteJSON(w, LikesResponse{Likes: count}, http.StatusOK)
	}
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	h.likeHandler(models.TargetPost, false)(w, r)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	h.likeHandler(models.TargetPost, true)(w, r)
}

func (h *Handlers) LikeComment(w http.ResponseWriter, r *http.Request) {
	h.likeHandler(models.TargetComment, false)(w, r)
}

func (h *Handlers) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	h.likeHandler(models.TargetComment, true)(w, r)
}
