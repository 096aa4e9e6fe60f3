package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/unipath/counsel-svc/internal/api/rest/middleware"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper/utils"
	"github.com/unipath/counsel-svc/internal/services"
)

type ShortlistHandler struct {
	svc services.ShortlistService
}

func NewShortlistHandler(svc services.ShortlistService) *ShortlistHandler {
	return &ShortlistHandler{svc: svc}
}

func (h *ShortlistHandler) SetupRoutes(protected fiber.Router) {
	shortlist := protected.Group("/shortlist")
	shortlist.Get("/", h.List)
	shortlist.Post("/", h.Add)
	shortlist.Delete("/:id", h.Remove)
	shortlist.Patch("/:id/bucket", h.MoveBucket)
	shortlist.Post("/:id/toggle-lock", h.ToggleLock)
}

func (h *ShortlistHandler) List(ctx *fiber.Ctx) error {
	resp, err := h.svc.List(middleware.UserID(ctx))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *ShortlistHandler) Add(ctx *fiber.Ctx) error {
	var input dto.AddToShortlistRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	entry, err := h.svc.Add(middleware.UserID(ctx), input)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyShortlisted) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "University already in shortlist")
		}
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, entry)
}

func (h *ShortlistHandler) Remove(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid shortlist id")
	}

	if err := h.svc.Remove(middleware.UserID(ctx), uint(id)); err != nil {
		if errors.Is(err, services.ErrEntryLocked) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Cannot remove a locked university. Unlock it first.")
		}
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Removed from shortlist")
}

func (h *ShortlistHandler) MoveBucket(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid shortlist id")
	}

	var input dto.UpdateBucketRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.MoveBucket(middleware.UserID(ctx), uint(id), input.Bucket); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Bucket updated")
}

func (h *ShortlistHandler) ToggleLock(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid shortlist id")
	}

	locked, err := h.svc.ToggleLock(middleware.UserID(ctx), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrLockLimitReached) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "You can only lock a maximum of 4 universities in total.")
		}
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message":   "Lock status updated",
		"is_locked": locked,
	})
}
