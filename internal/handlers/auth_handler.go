package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"rootle-backend/internal/dto"
	"rootle-backend/internal/services"
	"rootle-backend/internal/store"
	"rootle-backend/utils/response"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, response.KindInvalidInput, "Invalid request body")
		return
	}

	if err := h.service.Register(req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			response.Error(w, http.StatusBadRequest, response.KindInvalidInput, "Username and password are required")
		case errors.Is(err, store.ErrDuplicateAccount):
			response.Error(w, http.StatusConflict, response.KindDuplicateAccount, "Username already exists")
		default:
			slog.Error("registration failed", "error", err)
			response.Error(w, http.StatusInternalServerError, response.KindStoreFailure, "Server error during registration")
		}
		return
	}

	response.OK(w, http.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, response.KindInvalidInput, "Invalid request body")
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			response.Error(w, http.StatusBadRequest, response.KindInvalidInput, "Username and password are required")
		case errors.Is(err, services.ErrInvalidCredentials):
			response.Error(w, http.StatusBadRequest, response.KindInvalidCredentials, "Invalid credentials")
		default:
			slog.Error("login failed", "error", err)
			response.Error(w, http.StatusInternalServerError, response.KindStoreFailure, "Server error during login")
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Logged in successfully",
		Token:   token,
	})
}
