package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/talentgate/recruiting-backend/internal/dto"
	"github.com/talentgate/recruiting-backend/internal/middleware"
	"github.com/talentgate/recruiting-backend/internal/pagination"
	"github.com/talentgate/recruiting-backend/internal/services"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// Create handles POST /api/job — hiring managers open listings.
func (h *JobHandler) Create(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	job, err := h.jobService.Create(caller, &req)
	if err != nil {
		return jobError(c, err)
	}
	return c.JSON(job)
}

// Get handles GET /api/job/:id — readable by any authenticated caller.
func (h *JobHandler) Get(c *fiber.Ctx) error {
	jobID, err := c.ParamsInt("id")
	if err != nil || jobID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid job ID",
		})
	}

	job, err := h.jobService.Get(uint(jobID))
	if err != nil {
		return jobError(c, err)
	}
	return c.JSON(job)
}

// Update handles PUT /api/job/:id — owning manager only.
func (h *JobHandler) Update(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	jobID, err := c.ParamsInt("id")
	if err != nil || jobID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid job ID",
		})
	}

	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	job, err := h.jobService.Update(caller, uint(jobID), &req)
	if err != nil {
		return jobError(c, err)
	}
	return c.JSON(job)
}

// Transfer handles PUT /api/job/transfer — admin reassigns ownership.
func (h *JobHandler) Transfer(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.TransferJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.JobID == 0 || req.FromUserID == 0 || req.ToUserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "jobId, fromUserId and toUserId are required",
		})
	}

	job, err := h.jobService.Transfer(caller, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return jobError(c, err)
	}
	return c.JSON(job)
}

// Delete handles DELETE /api/job/:id — owning manager only.
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	jobID, err := c.ParamsInt("id")
	if err != nil || jobID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid job ID",
		})
	}

	if err := h.jobService.Delete(caller, uint(jobID)); err != nil {
		return jobError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List handles GET /api/job?page&items — paginated listings.
func (h *JobHandler) List(c *fiber.Ctx) error {
	p := pagination.Normalize(c.QueryInt("page", pagination.DefaultPage), c.QueryInt("items", pagination.DefaultItems))

	resp, err := h.jobService.List(p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list jobs",
		})
	}
	return c.JSON(resp)
}

func jobError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden",
		})
	case errors.Is(err, services.ErrJobNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Job not found",
		})
	case errors.Is(err, services.ErrNotManager):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	slog.Error("job request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
