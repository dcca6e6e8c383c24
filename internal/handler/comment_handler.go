package handlers

import (
	"net/http"

	"aventra/internal/service"
)

type CreateCommentRequest struct {
	UserID          *int64  `json:"user_id"`
	Text            string  `json:"text" validate:"required"`
	Rating          *int    `json:"rating"`
	Image           *string `json:"image"`
	ParentCommentID *int64  `json:"parent_comment_id"`
}

type UpdateCommentRequest struct {
	UserID *int64  `json:"user_id"`
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
	Image  *string `json:"image"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	id, err := h.CommentService.CreateComment(r.Context(), postID, service.CreateCommentInput{
		UserID:          callerID(r, req.UserID),
		Text:            req.Text,
		Rating:          req.Rating,
		Image:           req.Image,
		ParentCommentID: req.ParentCommentID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, IDResponse{ID: id}, http.StatusCreated)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	err := h.CommentService.UpdateComment(r.Context(), commentID, service.UpdateCommentInput{
		CallerID: callerID(r, req.UserID),
		Text:     req.Text,
		Rating:   req.Rating,
		Image:    req.Image,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Comment updated"}, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	caller, ok := decodeCaller(w, r)
	if !ok {
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), commentID, caller); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Comment deleted"}, http.StatusOK)
}
