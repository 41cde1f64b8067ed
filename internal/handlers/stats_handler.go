package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/talentgate/recruiting-backend/internal/dto"
	"github.com/talentgate/recruiting-backend/internal/middleware"
	"github.com/talentgate/recruiting-backend/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Applicant handles GET /api/stats/applicant.
func (h *StatsHandler) Applicant(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	stats, err := h.statsService.Applicant(caller)
	if err != nil {
		return statsError(c, err)
	}
	return c.JSON(stats)
}

// Manager handles GET /api/stats/manager.
func (h *StatsHandler) Manager(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	stats, err := h.statsService.Manager(caller)
	if err != nil {
		return statsError(c, err)
	}
	return c.JSON(stats)
}

// Admin handles GET /api/stats/admin.
func (h *StatsHandler) Admin(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	stats, err := h.statsService.Admin(caller)
	if err != nil {
		return statsError(c, err)
	}
	return c.JSON(stats)
}

func statsError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to compute statistics",
	})
}
