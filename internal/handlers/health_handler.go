package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/database"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	registry *session.Registry
	catalog  *catalog.Catalog
	logSink  string
}

func NewHealthHandler(registry *session.Registry, c *catalog.Catalog, logSink string) *HealthHandler {
	return &HealthHandler{registry: registry, catalog: c, logSink: logSink}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	sinkStatus := "disabled"
	if database.DB != nil {
		sinkStatus = h.logSink + ": ok"
		if err := database.Ping(); err != nil {
			sinkStatus = h.logSink + ": unhealthy: " + err.Error()
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		LogSink:     sinkStatus,
		Sessions:    h.registry.Len(),
		CatalogSize: h.catalog.Len(),
	})
}
