package handlers

import (
	"fmt"
	"net/http"

	"rootle-backend/internal/middleware"
	"rootle-backend/utils/response"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Root is the health banner.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Rootle grown and bearing fruits! Backend can take API requests.")
}

// Protected is an auth smoke test: any valid token gets a greeting.
func (h *SystemHandler) Protected(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUserFromContext(r.Context())
	if username == "" {
		response.Error(w, http.StatusUnauthorized, response.KindMissingToken, "No token, authorization denied")
		return
	}
	response.OK(w, http.StatusOK, fmt.Sprintf("Welcome, %s! You successfully accessed a protected route.", username))
}
