package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogapp/internal/repository"
	"blogapp/internal/service"
)

type AddUserRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	UserId   int    `json:"userId"`
	Name     string `json:"name"`
	UserName string `json:"user_name"`
}

type AuthResponse struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

func (h *Handlers) AddUser(w http.ResponseWriter, r *http.Request) {
	var req AddUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateUserRequest{
		UserName: req.UserName,
		Password: req.Password,
		Name:     req.Name,
	}

	user, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			WriteError(w, "Username already exists", http.StatusBadRequest)
		} else {
			WriteInternalError(w, "Error creating user", err)
		}
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"success": true,
		"message": "User created successfully",
		"userId":  user.UserID,
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		// неизвестный пользователь и неверный пароль неразличимы снаружи
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Invalid username or password", http.StatusUnauthorized)
		} else {
			WriteInternalError(w, "Login failed", err)
		}
		return
	}

	response := AuthResponse{
		Success:      true,
		Message:      "Login successful",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			UserId:   user.UserID,
			Name:     user.Name,
			UserName: user.UserName,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Missing refresh token", http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			WriteError(w, "Invalid or expired refresh token", http.StatusUnauthorized)
		} else {
			WriteInternalError(w, "Token refresh failed", err)
		}
		return
	}

	response := AuthResponse{
		Success:      true,
		Message:      "Token refreshed successfully",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			UserId:   user.UserID,
			Name:     user.Name,
			UserName: user.UserName,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}
