package universities

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/services"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service *CatalogService
}

func NewCatalogHandler(service *CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List supports ?country=USA,UK&category=dream&program=data&max_cost=60000&limit=5.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	f := catalog.Filter{
		Program:  strings.TrimSpace(c.Query("program")),
		Category: models.UniversityCategory(c.Query("category")),
	}
	if f.Category != "" && !f.Category.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "category must be dream, target or safe",
		})
	}
	for _, country := range strings.Split(c.Query("country"), ",") {
		if country = strings.TrimSpace(country); country != "" {
			f.Countries = append(f.Countries, country)
		}
	}
	if raw := c.Query("max_cost"); raw != "" {
		maxCost, err := strconv.Atoi(raw)
		if err != nil || maxCost < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "max_cost must be a non-negative number",
			})
		}
		f.MaxTotalCost = maxCost
	}
	f.Limit, _ = strconv.Atoi(c.Query("limit", "0"))

	list := h.service.List(f)
	return c.JSON(dto.UniversityListResponse{Universities: list, Total: len(list)})
}

func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	u, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrUniversityNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return err
	}
	return c.JSON(u)
}

func (h *CatalogHandler) Recommended(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	state := sess.Store.Snapshot()
	list := h.service.Recommend(state.Onboarding(), state.IsShortlisted)
	return c.JSON(dto.UniversityListResponse{Universities: list, Total: len(list)})
}
