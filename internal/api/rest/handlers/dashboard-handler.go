package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unipath/counsel-svc/internal/api/rest/middleware"
	"github.com/unipath/counsel-svc/internal/helper/utils"
	"github.com/unipath/counsel-svc/internal/services"
)

type DashboardHandler struct {
	svc services.DashboardService
}

func NewDashboardHandler(svc services.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) SetupRoutes(protected fiber.Router) {
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/", h.Get)
	dashboard.Get("/stage", h.Stage)
}

func (h *DashboardHandler) Get(ctx *fiber.Ctx) error {
	resp, err := h.svc.Get(middleware.UserID(ctx))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *DashboardHandler) Stage(ctx *fiber.Ctx) error {
	current, err := h.svc.CurrentStage(middleware.UserID(ctx))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"current_stage": current})
}
