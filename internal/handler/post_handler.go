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

type CreatePostRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	Username    string `json:"username"`
	Categories  string `json:"categories"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	// владелец поста берется из токена, а не из тела запроса
	username, ok := r.Context().Value("username").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	serviceReq := repository.CreatePostRequest{
		Title:       req.Title,
		Description: req.Description,
		Picture:     req.Picture,
		Username:    username,
		Categories:  req.Categories,
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		WriteInternalError(w, "Error creating post", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"success": true,
		"message": "Post created successfully",
		"postId":  post.PostID,
	}, http.StatusCreated)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	posts, err := h.PostRepo.GetAll(r.Context(), category)
	if err != nil {
		WriteInternalError(w, "Error fetching posts", err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
		} else {
			WriteInternalError(w, "Error fetching post", err)
		}
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	// частичное обновление: перезаписываются только присланные поля
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	username, ok := r.Context().Value("username").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.PostService.UpdatePost(r.Context(), postID, fields, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
		} else if errors.Is(err, service.ErrForbidden) {
			WriteError(w, "You are not the owner of this post", http.StatusForbidden)
		} else {
			WriteInternalError(w, "Error updating post", err)
		}
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"success": true,
		"message": "Post updated successfully",
	}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	username, ok := r.Context().Value("username").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
		} else if errors.Is(err, service.ErrForbidden) {
			WriteError(w, "You are not the owner of this post", http.StatusForbidden)
		} else {
			WriteInternalError(w, "Error deleting post", err)
		}
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"success": true,
		"message": "Post deleted successfully",
	}, http.StatusOK)
}
