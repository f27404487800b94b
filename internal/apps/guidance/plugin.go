package guidance

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type GuidancePlugin struct {
	catalog         *catalog.Catalog
	onboardingDelay time.Duration
}

func New(c *catalog.Catalog, onboardingDelay time.Duration) *GuidancePlugin {
	return &GuidancePlugin{catalog: c, onboardingDelay: onboardingDelay}
}

func (p *GuidancePlugin) ID() string { return "guidance" }

func (p *GuidancePlugin) RegisterRoutes(router fiber.Router) {
	svc := NewJourneyService(p.catalog, p.onboardingDelay)
	handler := NewJourneyHandler(svc)

	// Available before onboarding
	router.Get("/state", handler.State)
	router.Get("/dashboard", handler.Dashboard)
	router.Post("/onboarding", handler.CompleteOnboarding)

	onboarded := middleware.OnboardedRequired()
	router.Patch("/profile", onboarded, handler.UpdateProfile)
	router.Put("/stage", onboarded, handler.UpdateStage)
	router.Post("/shortlist/:id", onboarded, handler.Shortlist)
	router.Delete("/shortlist/:id", onboarded, handler.RemoveShortlist)
	router.Post("/lock/:id", onboarded, handler.Lock)
	router.Delete("/lock", onboarded, handler.Unlock)
	router.Get("/tasks", onboarded, handler.ListTasks)
	router.Post("/tasks", onboarded, handler.AddTask)
	router.Post("/tasks/:id/toggle", onboarded, handler.ToggleTask)
	router.Get("/guidance", onboarded, handler.Guidance)
}
