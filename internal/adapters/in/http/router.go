package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"visadesk/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestMetrics records one finished request.
type RequestMetrics interface {
	HTTPRequest(method, route string, code int, took time.Duration)
}

type RouterConfig struct {
	BodyLimit      string
	Metrics        RequestMetrics
	MetricsHandler http.Handler
	Reporter       ErrorReporter
	Logger         *slog.Logger
}

// NewRouter builds the echo instance with middleware and every route
// registered.
func NewRouter(s *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Reporter)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			cfg.Logger.LogAttrs(c.Request().Context(), level, "HTTP request", attrs...)
			return nil
		},
	}))
	if cfg.Metrics != nil {
		e.Use(observe(cfg.Metrics))
	}
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableErrorHandler: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			cfg.Logger.ErrorContext(c.Request().Context(), "Panic recovered",
				"error", err, "stack", string(stack))
			cfg.Reporter.Report(alertSource, fmt.Errorf("panic in %s %s: %w", c.Request().Method, c.Path(), err))
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
		AllowCredentials: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
	}))
	e.Use(middleware.Gzip())
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}
	e.Use(s.LoadSession)

	e.GET("/health", s.Health)
	if cfg.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.MetricsHandler))
	}

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout, RequireSignedIn)
	auth.GET("/me", s.Me, RequireSignedIn)

	orders := api.Group("/orders", RequireSignedIn)
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetOrders)
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id/status", s.ChangeOrderStatus, RequireRole(user.Expert, user.Support, user.Admin))

	api.POST("/applications/:id/documents", s.AttachDocument, RequireSignedIn)
	api.PATCH("/applications/:id/status", s.ChangeApplicationStatus, RequireRole(user.Expert, user.Support, user.Admin))

	admin := api.Group("/admin", RequireRole(user.Admin))
	admin.POST("/jobs/status-reconciliation", s.RunStatusReconciliation)

	return e
}

// observe records route-level metrics. It renders the error itself so the
// recorded status matches what the client receives.
func observe(m RequestMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.HTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))
			return err
		}
	}
}
