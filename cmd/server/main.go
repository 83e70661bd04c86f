package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"portfolio/docs"
	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/logger"
	"portfolio/internal/metrics"
	"portfolio/internal/router"
	"portfolio/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Portfolio API
// @version 1.0
// @description Portfolio backend with admin authentication, a contact inbox and projects.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	logger.SetupDefault(os.Stdout, cfg.LogLevel)

	for _, w := range cfg.Warnings() {
		slog.Warn("configuration", slog.String("warning", w))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("store init", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			slog.Error("close store", slog.String("error", err.Error()))
		}
	}()
	slog.Info("store ready", slog.String("driver", cfg.StoreDriver))

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if cfg.RedisAddr != "" {
		if err := cacheClient.Ping(ctx); err != nil {
			slog.Warn("redis unreachable, caching disabled until it recovers", slog.String("error", err.Error()))
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewCollector(registry)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(store.Admins, jwtService, cfg.AllowSeed, recorder)
	messageService := service.NewMessageService(store.Messages, cacheClient, recorder)
	projectService := service.NewProjectService(store.Projects, cacheClient, recorder)

	e := echo.New()
	router.Register(e, cfg, jwtService, metrics.Handler(registry), router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Seed:     handler.NewSeedHandler(authService),
		Messages: handler.NewMessageHandler(messageService),
		Projects: handler.NewProjectHandler(projectService),
		Health:   handler.NewHealthHandler(),
	})

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
		swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		if host == cfg.SwaggerHost {
			swaggerURL = "http://" + swaggerURL
		}
	}
	slog.Info("swagger documentation available", slog.String("url", swaggerURL))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", slog.String("addr", cfg.ListenAddr()))
		return e.Start(cfg.ListenAddr())
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped with error", slog.String("error", err.Error()))
	}
}
