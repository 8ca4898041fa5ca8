package http

import (
	"context"
	"log/slog"
	"net/http"

	_ "oms/docs"
	"oms/internal/core/ports"
	"oms/internal/generated/servers"
	"oms/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BasePath is the prefix of every order endpoint.
const BasePath = "/api/v1"

// PingFunc reports whether the store is reachable.
type PingFunc func(ctx context.Context) error

// RouterConfig carries the collaborators of the service endpoints that live
// outside the order API.
type RouterConfig struct {
	Logger   *slog.Logger
	Metrics  *telemetry.Metrics
	Verifier ports.IdentityVerifier
	Ping     PingFunc
}

// NewRouter builds the echo instance serving the order API under BasePath
// together with the health, banner, metrics and documentation endpoints.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler()

	e.Use(middleware.RequestID())
	e.Use(Observe(cfg.Logger, cfg.Metrics))
	e.Use(middleware.Recover())

	e.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{
			"message": "Order Management System API",
			"status":  "running",
		})
	})
	e.GET("/health", healthHandler(cfg.Ping, cfg.Logger.With("component", "health")))
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BasePath, Authenticate(cfg.Verifier))
	servers.RegisterHandlers(api, server)

	return e, nil
}

// healthHandler keeps the ping error out of the response; it can carry host
// and DSN details.
func healthHandler(ping PingFunc, logger *slog.Logger) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if ping != nil {
			if err := ping(ctx.Request().Context()); err != nil {
				logger.ErrorContext(ctx.Request().Context(), "database ping failed", "error", err)
				status, body := errorBody(http.StatusServiceUnavailable, "Database connection failed", "")
				return ctx.JSON(status, body)
			}
		}
		return ctx.JSON(http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	}
}
