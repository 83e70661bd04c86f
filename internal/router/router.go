package router

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/handler"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth     *handler.AuthHandler
	Seed     *handler.SeedHandler
	Messages *handler.MessageHandler
	Projects *handler.ProjectHandler
	Health   *handler.HealthHandler
}

// Register wires routes and middleware.
// metricsHandler is mounted on /metrics when non-nil.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	metricsHandler http.Handler,
	h Handlers,
) {
	e.HideBanner = true
	e.Validator = NewCustomValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return cfg.OriginAllowed(origin), nil
		},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		MaxAge:       86400,
	}))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(metricsHandler))
	}

	api := e.Group("/api")
	limit := rateLimiter(cfg.RateLimitPerMinute)

	// Public routes
	api.GET("/health", h.Health.Health)
	api.POST("/auth/login", h.Auth.Login, limit...)
	api.POST("/auth/seed-admin", h.Seed.SeedAdmin, limit...)
	api.POST("/messages", h.Messages.CreateMessage, limit...)
	api.GET("/projects", h.Projects.ListProjects)

	// Secured routes. The middleware is attached per route so unknown
	// paths under /api still answer 404 instead of 401.
	requireAdmin := auth.Middleware(jwtService)
	api.GET("/auth/me", h.Auth.Me, requireAdmin)
	api.GET("/messages", h.Messages.ListMessages, requireAdmin)
	api.POST("/projects", h.Projects.CreateProject, requireAdmin)
	api.DELETE("/projects/:id", h.Projects.DeleteProject, requireAdmin)
}

// rateLimiter returns a per-client limiter for public write endpoints,
// or nothing when perMinute is not positive.
func rateLimiter(perMinute int) []echo.MiddlewareFunc {
	if perMinute <= 0 {
		return nil
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / 60),
		Burst:     perMinute,
		ExpiresIn: 3 * time.Minute,
	})
	return []echo.MiddlewareFunc{middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
	})}
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/swagger") || c.Path() == "/metrics"
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator returns a validator with the project's custom tags registered.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	if err := auth.RegisterValidations(v); err != nil {
		panic(err)
	}
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
