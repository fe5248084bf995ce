package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Eursukkul/eventhub/config"
	"github.com/Eursukkul/eventhub/internal/handler"
	"github.com/Eursukkul/eventhub/internal/middleware"
	"github.com/Eursukkul/eventhub/internal/service"
	"github.com/Eursukkul/eventhub/internal/view"
	"github.com/Eursukkul/eventhub/pkg/database"
	"github.com/Eursukkul/eventhub/pkg/logger"
	"github.com/Eursukkul/eventhub/pkg/rabbitmq"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func provideConfig() *config.Config {
	return config.Load()
}

func provideLogger(cfg *config.Config) *slog.Logger {
	log := logger.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(log)
	return log
}

func provideDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() error {
		return database.Close(db)
	}))
	return db, nil
}

// provideNotifier connects to RabbitMQ when RABBITMQ_URL is set. Without it
// the services get a nil Notifier and skip change notifications.
func provideNotifier(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (service.Notifier, error) {
	if cfg.RabbitURL == "" {
		log.Info("RABBITMQ_URL not set, change notifications disabled")
		return nil, nil
	}

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	lc.Append(fx.StopHook(publisher.Close))
	return publisher, nil
}

func provideClock(cfg *config.Config) service.Clock {
	return cfg.Now
}

func provideDeletePolicy(cfg *config.Config) (service.DeletePolicy, error) {
	return service.ParseDeletePolicy(cfg.CategoryDeletePolicy)
}

func provideMetrics() (*middleware.Metrics, error) {
	return middleware.NewMetrics(prometheus.DefaultRegisterer)
}

func NewServer(
	cfg *config.Config,
	log *slog.Logger,
	metrics *middleware.Metrics,
	dashboard *handler.DashboardHandler,
	events *handler.EventHandler,
	categories *handler.CategoryHandler,
	participants *handler.ParticipantHandler,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Pre(echoMw.AddTrailingSlashWithConfig(echoMw.TrailingSlashConfig{
		Skipper:      isProbe,
		RedirectCode: http.StatusMovedPermanently,
	}))
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMw.Recover())
	e.Use(metrics.Middleware())
	e.Use(echoMw.CSRFWithConfig(echoMw.CSRFConfig{
		TokenLookup:    "form:csrf_token",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CSRFCookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "eventhub"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	dashboard.RegisterRoutes(e)
	events.RegisterRoutes(e)
	categories.RegisterRoutes(e)
	participants.RegisterRoutes(e)

	renderer, err := view.New(e)
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	return e, nil
}

// isProbe reports whether the request is for the health or metrics endpoint,
// which keep their slash-less paths.
func isProbe(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/health" || p == "/metrics"
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, e *echo.Echo, cfg *config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("EventHub starting", "port", cfg.ServerPort)
				if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server stopped", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return e.Shutdown(ctx)
		},
	})
}
