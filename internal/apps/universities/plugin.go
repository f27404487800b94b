package universities

import (
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type UniversitiesPlugin struct {
	handler *CatalogHandler
}

func New(c *catalog.Catalog) *UniversitiesPlugin {
	return &UniversitiesPlugin{handler: NewCatalogHandler(NewCatalogService(c))}
}

func (p *UniversitiesPlugin) ID() string { return "universities" }

func (p *UniversitiesPlugin) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/universities", p.handler.List)
	router.Get("/universities/:id", p.handler.Get)
}

func (p *UniversitiesPlugin) RegisterRoutes(router fiber.Router) {
	router.Get("/universities/recommended", middleware.OnboardedRequired(), p.handler.Recommended)
}
