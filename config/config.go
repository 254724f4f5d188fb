package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	Environment   string
	Debug         bool
	SessionSecret string
	DataDir       string
	UploadDir     string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	// Optional .env overlay for local development; deployed environments
	// provide real env vars.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			slog.Warn("Failed to load .env file", "error", err)
		}
	}

	return &Config{
		ServerPort:    getEnv("PORT", "8080"),
		Environment:   getEnv("ENV", "development"),
		Debug:         getEnv("DEBUG", "false") == "true",
		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production"),
		DataDir:       getEnv("DATA_DIR", "data"),
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@modabrasileira.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
