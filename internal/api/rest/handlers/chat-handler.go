package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unipath/counsel-svc/internal/api/rest/middleware"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper/utils"
	"github.com/unipath/counsel-svc/internal/services"
)

type ChatHandler struct {
	svc services.CounselService
}

func NewChatHandler(svc services.CounselService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func (h *ChatHandler) SetupRoutes(protected fiber.Router) {
	chat := protected.Group("/chat")
	chat.Post("/", h.Chat)
	chat.Get("/history", h.History)
}

func (h *ChatHandler) Chat(ctx *fiber.Ctx) error {
	var input dto.ChatRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "message is required")
	}

	resp, err := h.svc.Chat(ctx.UserContext(), middleware.UserID(ctx), input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *ChatHandler) History(ctx *fiber.Ctx) error {
	messages, err := h.svc.History(middleware.UserID(ctx))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"messages": messages})
}
