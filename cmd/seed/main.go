package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/logger"
	"portfolio/internal/service"
)

func main() {
	cfg := config.Load()
	logger.SetupDefault(os.Stdout, cfg.LogLevel)

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	v := validator.New()
	if err := auth.RegisterValidations(v); err != nil {
		slog.Error("register validations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := v.Var(email, "required,email,max=255"); err != nil {
		slog.Error("ADMIN_EMAIL must be a valid email address")
		os.Exit(2)
	}
	if err := v.Var(password, "required,min=6,bcryptlen"); err != nil {
		slog.Error("ADMIN_PASSWORD must be at least 6 characters and at most 72 bytes")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("store init", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore(context.Background())

	// Running this binary is the operator's consent, so the HTTP seed gate does not apply.
	authService := service.NewAuthService(store.Admins, auth.NewJWTService(cfg.JWTSecret), true, nil)

	admin, created, err := authService.SeedAdmin(ctx, email, password)
	if err != nil {
		slog.Error("seed admin", slog.String("error", err.Error()))
		closeStore(context.Background())
		os.Exit(1)
	}

	if created {
		slog.Info("admin created", slog.String("id", admin.ID), slog.String("email", admin.Email))
	} else {
		slog.Info("admin already exists, left unchanged", slog.String("id", admin.ID), slog.String("email", admin.Email))
	}
}
