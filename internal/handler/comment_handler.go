package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogapp/internal/repository"
	"blogapp/internal/service"
)

type CreateCommentRequest struct {
	Name     string `json:"name"`
	PostID   int    `json:"postId" validate:"required"`
	Comments string `json:"comments" validate:"required"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	// автор комментария берется из токена
	username, ok := r.Context().Value("username").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	serviceReq := repository.CreateCommentRequest{
		PostID:   req.PostID,
		Name:     username,
		Comments: req.Comments,
	}

	comment, err := h.CommentService.CreateComment(r.Context(), serviceReq)
	if err != nil {
		WriteInternalError(w, "Error creating comment", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"success":   true,
		"message":   "Comment created successfully",
		"commentId": comment.CommentID,
	}, http.StatusCreated)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentRepo.GetByPostID(r.Context(), postID)
	if err != nil {
		WriteInternalError(w, "Error fetching comments", err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.Atoi(mux.Vars(r)["commentId"])
	if err != nil {
		WriteError(w, "Invalid comment id", http.StatusBadRequest)
		return
	}

	username, ok := r.Context().Value("username").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), commentID, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Comment not found", http.StatusNotFound)
		} else if errors.Is(err, service.ErrForbidden) {
			WriteError(w, "You are not the author of this comment", http.StatusForbidden)
		} else {
			WriteInternalError(w, "Error deleting comment", err)
		}
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"success": true,
		"message": "Comment deleted successfully",
	}, http.StatusOK)
}
