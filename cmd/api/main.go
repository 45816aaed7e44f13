// Package main is the entrypoint for the Mefact API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mefact/mefact/internal/cache"
	"github.com/mefact/mefact/internal/config"
	"github.com/mefact/mefact/internal/fact"
	"github.com/mefact/mefact/internal/handler"
	"github.com/mefact/mefact/internal/metrics"
	"github.com/mefact/mefact/internal/middleware"
	"github.com/mefact/mefact/internal/model"
	"github.com/mefact/mefact/internal/server"
	"github.com/mefact/mefact/internal/service"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize the optional last-good-fact cache
	var cacheClient *cache.Cache
	if cfg.CacheEnabled() {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("connected to Redis")
	} else {
		logger.Info("last-good-fact cache disabled, degraded fetches use the static fallback")
	}

	// Initialize services
	recorder := metrics.NewInMemory()
	fetcher := fact.NewFetcher(fact.NewHTTPClient(), cfg.FactAPIURL, cfg.FactTimeout(), logger)

	var store service.LastFactStore
	if cacheClient != nil {
		store = cacheClient
	}
	factService := service.NewFactService(fetcher, store, cfg.FallbackFact, cfg.FactCacheTTL, recorder, logger)

	profile := model.Profile{
		Email: cfg.UserEmail,
		Name:  cfg.UserName,
		Stack: cfg.UserStack,
	}

	// Initialize handlers
	h := handler.New()
	meHandler := handler.NewMeHandler(profile, factService, recorder)
	metricsHandler := handler.NewMetricsHandler(recorder)

	var healthChecker handler.HealthChecker
	if cacheClient != nil {
		healthChecker = cacheClient
	}
	healthHandler := handler.NewHealthHandler(healthChecker)

	// Setup router
	r := setupRouter(h, meHandler, healthHandler, metricsHandler, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	if cacheClient != nil {
		srv.OnShutdown("redis", func(ctx context.Context) error {
			return cacheClient.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"upstream", cfg.FactAPIURL,
		"fact_timeout", cfg.FactTimeout().String(),
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	meHandler *handler.MeHandler,
	healthHandler *handler.HealthHandler,
	metricsHandler *handler.MetricsHandler,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security())
	r.Use(middleware.CORS(corsCfg))

	// Profile endpoint
	r.Get("/me", meHandler.Me)

	// Health endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Operational endpoints
	r.Get("/metrics", metricsHandler.Metrics)

	// Root info endpoint
	r.Get("/", h.Hello)

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
