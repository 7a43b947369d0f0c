package handlers

import (
	"net/http"

	"rootle-backend/internal/middleware"
)

// NewRouter wires every route. Download and the root banner are the only
// unauthenticated GET routes; register and login are the only
// unauthenticated POSTs.
func NewRouter(authHandler *AuthHandler, fileHandler *FileHandler, systemHandler *SystemHandler, authMiddleware *middleware.AuthMiddleware) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("POST /api/register", authHandler.Register)
	router.HandleFunc("POST /api/login", authHandler.Login)

	router.Handle("POST /api/upload", authMiddleware.RequireAuth(http.HandlerFunc(fileHandler.Upload)))
	router.Handle("GET /api/my-files", authMiddleware.RequireAuth(http.HandlerFunc(fileHandler.MyFiles)))
	router.Handle("GET /api/all-files", authMiddleware.RequireAuth(http.HandlerFunc(fileHandler.AllFiles)))

	// Unauthenticated on purpose: anyone holding a storage key may fetch
	// the blob. See FileHandler.Download.
	router.HandleFunc("GET /api/download/{filename}", fileHandler.Download)

	router.Handle("GET /api/protected", authMiddleware.RequireAuth(http.HandlerFunc(systemHandler.Protected)))
	router.HandleFunc("GET /{$}", systemHandler.Root)

	return router
}
