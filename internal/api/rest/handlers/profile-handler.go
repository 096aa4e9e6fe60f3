package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unipath/counsel-svc/internal/api/rest/middleware"
	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper"
	"github.com/unipath/counsel-svc/internal/helper/utils"
	"github.com/unipath/counsel-svc/internal/services"
)

type ProfileHandler struct {
	svc     services.ProfileService
	taskSvc services.TaskService
	userSvc services.UserService
}

func NewProfileHandler(svc services.ProfileService, taskSvc services.TaskService, userSvc services.UserService) *ProfileHandler {
	return &ProfileHandler{svc: svc, taskSvc: taskSvc, userSvc: userSvc}
}

func (h *ProfileHandler) SetupRoutes(protected fiber.Router) {
	profile := protected.Group("/profile")
	profile.Get("/", h.Get)
	profile.Put("/", h.Save)
	profile.Get("/strength", h.Strength)
}

func (h *ProfileHandler) Get(ctx *fiber.Ctx) error {
	userID := middleware.UserID(ctx)
	profile, err := h.svc.Get(userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "profile not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *ProfileHandler) Save(ctx *fiber.Ctx) error {
	var input dto.ProfileInput
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	userID := middleware.UserID(ctx)
	profile, err := h.svc.Save(userID, input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	// Completing onboarding seeds a starter task list once.
	if profile.IsComplete {
		name := ""
		if user, userErr := h.userSvc.GetUser(userID); userErr == nil {
			name = user.FullName
		}
		_ = h.taskSvc.SeedInitial(ctx.UserContext(), userID, name, domain.StageProfileReady)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *ProfileHandler) Strength(ctx *fiber.Ctx) error {
	strength, err := h.svc.Strength(middleware.UserID(ctx))
	if err != nil {
		if helper.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "profile not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, strength)
}
