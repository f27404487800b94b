package counsellor

import (
	"context"
	"errors"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/services"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	service *ChatService
}

func NewChatHandler(service *ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) History(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.JSON(dto.ChatHistoryResponse{Messages: sess.Store.Snapshot().ChatHistory})
}

func (h *ChatHandler) Send(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.service.Send(c.UserContext(), sess, req.Message)
	if err != nil {
		return chatError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ChatHandler) Execute(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var env models.AIActionEnvelope
	if err := c.BodyParser(&env); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	state, changed, err := h.service.Execute(c.UserContext(), sess, env)
	if err != nil {
		return chatError(c, err)
	}
	return c.JSON(dto.StateResponse{Changed: changed, State: state})
}

func (h *ChatHandler) ExecuteSuggested(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "action index must be a number",
		})
	}

	state, changed, err := h.service.ExecuteSuggested(c.UserContext(), sess, c.Params("id"), index)
	if err != nil {
		return chatError(c, err)
	}
	return c.JSON(dto.StateResponse{Changed: changed, State: state})
}

func chatError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrUnknownAction),
		errors.Is(err, services.ErrInvalidTask),
		errors.Is(err, services.ErrInvalidStage):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrActionNotFound):
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
