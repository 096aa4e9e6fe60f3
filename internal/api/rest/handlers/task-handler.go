package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unipath/counsel-svc/internal/api/rest/middleware"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper/utils"
	"github.com/unipath/counsel-svc/internal/services"
)

type TaskHandler struct {
	svc services.TaskService
}

func NewTaskHandler(svc services.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

func (h *TaskHandler) SetupRoutes(protected fiber.Router) {
	tasks := protected.Group("/tasks")
	tasks.Get("/", h.List)
	tasks.Post("/", h.Create)
	tasks.Get("/recommended", h.Recommended)
	tasks.Patch("/:id/complete", h.Complete)
}

func (h *TaskHandler) List(ctx *fiber.Ctx) error {
	tasks, err := h.svc.List(middleware.UserID(ctx))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"tasks": tasks})
}

func (h *TaskHandler) Create(ctx *fiber.Ctx) error {
	var input dto.CreateTaskRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	task, err := h.svc.Create(middleware.UserID(ctx), input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, task)
}

func (h *TaskHandler) Recommended(ctx *fiber.Ctx) error {
	recommended, err := h.svc.Recommended(middleware.UserID(ctx))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"recommended_tasks": recommended})
}

func (h *TaskHandler) Complete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid task id")
	}

	if err := h.svc.Complete(middleware.UserID(ctx), uint(id)); err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Task completed")
}
