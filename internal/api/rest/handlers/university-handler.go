package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unipath/counsel-svc/internal/api/rest/middleware"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper/utils"
	"github.com/unipath/counsel-svc/internal/services"
)

type UniversityHandler struct {
	recSvc       services.RecommendationService
	shortlistSvc services.ShortlistService
}

func NewUniversityHandler(recSvc services.RecommendationService, shortlistSvc services.ShortlistService) *UniversityHandler {
	return &UniversityHandler{recSvc: recSvc, shortlistSvc: shortlistSvc}
}

func (h *UniversityHandler) SetupRoutes(protected fiber.Router) {
	universities := protected.Group("/universities")
	universities.Get("/", h.Search)
	universities.Get("/recommendations", h.Recommendations)
	universities.Get("/:id", h.Get)
	universities.Get("/:id/match", h.Match)
}

func (h *UniversityHandler) Search(ctx *fiber.Ctx) error {
	var query dto.UniversitySearchQuery
	if err := ctx.QueryParser(&query); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid query parameters")
	}

	resp, err := h.recSvc.Search(middleware.UserID(ctx), query)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *UniversityHandler) Recommendations(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 0)
	resp, err := h.recSvc.Recommend(middleware.UserID(ctx), limit)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *UniversityHandler) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid university id")
	}

	result, err := h.recSvc.GetUniversity(middleware.UserID(ctx), uint(id))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, result)
}

func (h *UniversityHandler) Match(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid university id")
	}

	result, err := h.shortlistSvc.Match(ctx.UserContext(), middleware.UserID(ctx), uint(id))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, result)
}
