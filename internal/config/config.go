package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// devJWTSecret is the known-weak fallback signing secret. It exists so
// the server runs out of the box in development; set JWT_SECRET in any
// real deployment.
const devJWTSecret = "If hate is real, then the pain you feel is justified. As emotions assures your humanity."

type Config struct {
	Host        string
	Port        string
	JWTSecret   string
	DataDir     string
	UploadsDir  string
	StoreDriver string
	DatabaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		slog.Warn("JWT_SECRET not set, falling back to the built-in development secret")
		jwtSecret = devJWTSecret
	}

	return &Config{
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "5000"),
		JWTSecret:   jwtSecret,
		DataDir:     getEnv("DATA_DIR", "data"),
		UploadsDir:  getEnv("UPLOADS_DIR", "uploads"),
		StoreDriver: getEnv("STORE_DRIVER", "json"),
		DatabaseURL: getDatabaseURL(),
	}
}

func getDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "postgres")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, dbname, sslmode,
	)
}

func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
