package guidance

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/services"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
	"github.com/gofiber/fiber/v2"
)

type JourneyHandler struct {
	service *JourneyService
}

func NewJourneyHandler(service *JourneyService) *JourneyHandler {
	return &JourneyHandler{service: service}
}

func (h *JourneyHandler) State(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}
	return c.JSON(sess.Store.Snapshot())
}

func (h *JourneyHandler) Dashboard(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}
	return c.JSON(store.BuildDashboard(sess.Store.Snapshot()))
}

func (h *JourneyHandler) Guidance(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}
	return c.JSON(store.BuildGuidance(sess.Store.Snapshot()))
}

func (h *JourneyHandler) CompleteOnboarding(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	state, changed, err := h.service.CompleteOnboarding(c.UserContext(), sess, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.StateResponse{Changed: changed, State: state})
}

func (h *JourneyHandler) UpdateProfile(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	var patch models.OnboardingPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	state, changed, err := h.service.UpdateProfile(c.UserContext(), sess, patch)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.StateResponse{Changed: changed, State: state})
}

func (h *JourneyHandler) UpdateStage(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.StageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	state, changed, err := h.service.UpdateStage(c.UserContext(), sess, req.Stage)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.StateResponse{Changed: changed, State: state})
}

func (h *JourneyHandler) Shortlist(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	state, changed, err := h.service.Shortlist(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.StateResponse{Changed: changed, State: state})
}

func (h *JourneyHandler) RemoveShortlist(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	state, changed := h.service.RemoveShortlist(c.UserContext(), sess, c.Params("id"))
	return c.JSON(dto.StateResponse{Changed: changed, State: state})
}

func (h *JourneyHandler) Lock(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	state, changed, err := h.service.Lock(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.StateResponse{Changed: changed, State: state})
}

func (h *JourneyHandler) Unlock(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	state, changed := h.service.Unlock(c.UserContext(), sess)
	return c.JSON(dto.StateResponse{Changed: changed, State: state})
}

func (h *JourneyHandler) ListTasks(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	state := sess.Store.Snapshot()
	return c.JSON(dto.TaskListResponse{
		Tasks:    state.Tasks,
		Progress: store.TaskProgress(state.Tasks),
	})
}

func (h *JourneyHandler) AddTask(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	state, changed, err := h.service.AddTask(c.UserContext(), sess, &req)
	if err != nil {
		return serviceError(c, err)
	}
	status := fiber.StatusCreated
	if !changed {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(dto.StateResponse{Changed: changed, State: state})
}

func (h *JourneyHandler) ToggleTask(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	state, err := h.service.ToggleTask(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.StateResponse{Changed: true, State: state})
}

func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidOnboarding),
		errors.Is(err, services.ErrInvalidStage),
		errors.Is(err, services.ErrInvalidTask):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrUniversityNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
			Error: true, Message: "Request cancelled",
		})
	}
	return err
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
