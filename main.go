package main

import (
	"log/slog"
	"net/http"
	"os"

	"vitrine/config"
	"vitrine/handlers"
	"vitrine/logger"
	"vitrine/services"
	"vitrine/store"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Environment, cfg.Debug)

	// Initialize session store
	services.InitSessionStore(cfg)

	// Data and upload directories must exist before the first request
	for _, dir := range []string{cfg.DataDir, cfg.UploadDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			slog.Error("Failed to create directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	fileStore := store.NewFileStore(cfg.DataDir)
	users := services.NewUserService(fileStore)
	products := services.NewProductService(fileStore)
	uploads := services.NewUploadService(cfg.UploadDir)

	// Seed the default admin on first boot
	if err := users.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("Failed to seed admin user", "error", err)
		os.Exit(1)
	}

	h, err := handlers.New(users, products, uploads, "templates")
	if err != nil {
		slog.Error("Failed to set up handlers", "error", err)
		os.Exit(1)
	}

	addr := ":" + cfg.ServerPort
	slog.Info("Vitrine is starting", "addr", addr, "environment", cfg.Environment)

	if err := http.ListenAndServe(addr, h.Routes("static")); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
