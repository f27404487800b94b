package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/spf13/pflag"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/apps"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/apps/counsellor"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/apps/guidance"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/apps/universities"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/config"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/database"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/logging"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/routes"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/services"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/telemetry"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	pflag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	pflag.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "university catalog file (.yaml, .json or .jsonc); empty uses the built-in catalog")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	pflag.Parse()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	// University catalog
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			slog.Error("failed to load catalog", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("catalog loaded", "universities", cat.Len())

	// Optional error log sink (ERROR+ async batch)
	var dbLogHandler *logging.DBHandler
	cleanupDone := make(chan struct{})
	if cfg.LogSink != config.LogSinkNone {
		if err := database.Connect(cfg); err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		if err := database.Migrate(); err != nil {
			slog.Error("log sink migration failed", "error", err)
			os.Exit(1)
		}
		dbLogHandler = logging.NewDBHandler(database.DB)
		logging.Setup(cfg.LogLevel, dbLogHandler)
		logging.StartCleanup(database.DB, cfg.LogRetention, cleanupDone)
	}

	// Tracing
	shutdownTracing := telemetry.Init(context.Background(), cfg)

	// Sessions
	reducer := store.NewReducer(cat, nil)
	registry := session.NewRegistry(reducer, cfg.SessionIdleTTL, slog.Default())
	sweepDone := make(chan struct{})
	registry.StartSweeper(cfg.SessionSweepInterval, sweepDone)

	// Services
	authService := services.NewAuthService(registry, cfg)

	plugins := []apps.Plugin{
		guidance.New(cat, cfg.OnboardingDelay),
		counsellor.New(cat, cfg.ReplyDelay),
		universities.New(cat),
	}
	for _, p := range plugins {
		slog.Info("plugin registered", "plugin", p.ID())
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(registry, cat, cfg.LogSink)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, registry, authHandler, healthHandler, plugins)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(sweepDone)
	close(cleanupDone)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		slog.Error("tracing shutdown error", "error", err)
	}

	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := database.Close(); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.Locals("requestid"),
			"error", err.Error(),
		)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
