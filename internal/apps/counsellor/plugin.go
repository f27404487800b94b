package counsellor

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type CounsellorPlugin struct {
	catalog    *catalog.Catalog
	replyDelay time.Duration
}

func New(c *catalog.Catalog, replyDelay time.Duration) *CounsellorPlugin {
	return &CounsellorPlugin{catalog: c, replyDelay: replyDelay}
}

func (p *CounsellorPlugin) ID() string { return "counsellor" }

func (p *CounsellorPlugin) RegisterRoutes(router fiber.Router) {
	svc := NewChatService(p.catalog, p.replyDelay)
	handler := NewChatHandler(svc)

	chat := router.Group("/chat", middleware.OnboardedRequired())
	chat.Get("/", handler.History)
	chat.Post("/", handler.Send)
	chat.Post("/actions", handler.Execute)
	chat.Post("/messages/:id/actions/:index", handler.ExecuteSuggested)
}
