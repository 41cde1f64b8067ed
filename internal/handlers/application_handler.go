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

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Create handles POST /api/application — applicants apply to open jobs.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.JobID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "jobId is required",
		})
	}

	app, err := h.applicationService.Create(caller, &req)
	if err != nil {
		return applicationError(c, err)
	}
	return c.JSON(app)
}

// Get handles GET /api/application/:id.
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	appID, err := c.ParamsInt("id")
	if err != nil || appID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	app, err := h.applicationService.Get(caller, uint(appID))
	if err != nil {
		return applicationError(c, err)
	}
	return c.JSON(app)
}

// Update handles PUT /api/application/:id — owning applicant revises their
// cover letter or resume.
func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	appID, err := c.ParamsInt("id")
	if err != nil || appID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	app, err := h.applicationService.Update(caller, uint(appID), &req)
	if err != nil {
		return applicationError(c, err)
	}
	return c.JSON(app)
}

// UpdateStatus handles PUT /api/application/manager/:id — the owning
// manager moves an application through the review pipeline.
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	appID, err := c.ParamsInt("id")
	if err != nil || appID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	app, err := h.applicationService.UpdateStatus(caller, uint(appID), req.ApplicationStatus)
	if err != nil {
		return applicationError(c, err)
	}
	return c.JSON(app)
}

// Delete handles DELETE /api/application/:id — owning applicant withdraws.
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	appID, err := c.ParamsInt("id")
	if err != nil || appID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	if err := h.applicationService.Delete(caller, uint(appID)); err != nil {
		return applicationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByJob handles GET /api/application/job/:id?page&items — the owning
// manager's paginated applicant list.
func (h *ApplicationHandler) ListByJob(c *fiber.Ctx) error {
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

	p := pagination.Normalize(c.QueryInt("page", pagination.DefaultPage), c.QueryInt("items", pagination.DefaultItems))

	resp, err := h.applicationService.ListByJob(caller, uint(jobID), p)
	if err != nil {
		return applicationError(c, err)
	}
	return c.JSON(resp)
}

func applicationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden",
		})
	case errors.Is(err, services.ErrApplicationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Application not found",
		})
	case errors.Is(err, services.ErrJobNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Job not found",
		})
	case errors.Is(err, services.ErrJobClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	slog.Error("application request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
