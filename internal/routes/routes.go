package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/apps"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/config"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	registry *session.Registry,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	plugins []apps.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth: stricter limit, 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/signup", authHandler.Signup)

	for _, p := range plugins {
		if pp, ok := p.(apps.PublicPlugin); ok {
			pp.RegisterPublicRoutes(api)
		}
	}

	// Session routes: token verified, then resolved to a live session
	protected := api.Group("/p", middleware.JWTProtected(cfg), middleware.SessionRequired(registry))
	protected.Get("/session", authHandler.Session)
	protected.Post("/session/logout", authHandler.Logout)
	for _, p := range plugins {
		p.RegisterRoutes(protected)
	}
}
