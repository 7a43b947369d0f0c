package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"rootle-backend/internal/auth"
	"rootle-backend/internal/blob"
	"rootle-backend/internal/config"
	"rootle-backend/internal/handlers"
	"rootle-backend/internal/middleware"
	"rootle-backend/internal/services"
	"rootle-backend/internal/store"
	"rootle-backend/internal/store/jsonstore"
	"rootle-backend/internal/store/postgres"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg := config.Load()

	users, files, err := openStores(cfg)
	if err != nil {
		slog.Error("failed to open stores", "error", err)
		os.Exit(1)
	}

	blobs, err := blob.NewStore(cfg.UploadsDir)
	if err != nil {
		slog.Error("failed to open uploads directory", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewManager(cfg.JWTSecret)

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	authHandler := handlers.NewAuthHandler(services.NewAuthService(users, tokens))
	fileHandler := handlers.NewFileHandler(services.NewFileService(files, blobs))
	systemHandler := handlers.NewSystemHandler()

	router := handlers.NewRouter(authHandler, fileHandler, systemHandler, authMiddleware)
	handler := corsMiddleware(router)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	slog.Info("server starting", "addr", addr, "store", cfg.StoreDriver)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func openStores(cfg *config.Config) (store.UserStore, store.FileStore, error) {
	switch cfg.StoreDriver {
	case "json", "":
		return jsonstore.NewUserStore(cfg.DataDir), jsonstore.NewFileStore(cfg.DataDir), nil
	case "postgres":
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewUserStore(db), postgres.NewFileStore(db), nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Tokens travel in headers, not cookies, so a wildcard origin is fine.
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, x-auth-token")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
