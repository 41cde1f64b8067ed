package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/talentgate/recruiting-backend/internal/config"
	"github.com/talentgate/recruiting-backend/internal/handlers"
	"github.com/talentgate/recruiting-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
) {
	jwt := middleware.JWTProtected(cfg)

	// Users — auth endpoints are public with a stricter rate limit.
	users := app.Group("/users")
	auth := users.Group("")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/registration", authHandler.Register)
	auth.Post("/refresh", authHandler.Refresh)

	users.Post("/registration/admin", jwt, authHandler.RegisterManager)
	users.Post("/logout", jwt, authHandler.Logout)
	users.Get("/:id", jwt, userHandler.Get)
	users.Put("/:id", jwt, userHandler.Update)
	users.Delete("/:id", jwt, userHandler.Delete)

	// API — everything below requires a bearer credential.
	api := app.Group("/api")
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	job := api.Group("/job", jwt)
	job.Get("/", jobHandler.List)
	job.Post("/", jobHandler.Create)
	// Registered before /:id so "transfer" is not swallowed as an id.
	job.Put("/transfer", jobHandler.Transfer)
	job.Get("/:id", jobHandler.Get)
	job.Put("/:id", jobHandler.Update)
	job.Delete("/:id", jobHandler.Delete)

	application := api.Group("/application", jwt)
	application.Post("/", applicationHandler.Create)
	application.Get("/job/:id", applicationHandler.ListByJob)
	application.Put("/manager/:id", applicationHandler.UpdateStatus)
	application.Get("/:id", applicationHandler.Get)
	application.Put("/:id", applicationHandler.Update)
	application.Delete("/:id", applicationHandler.Delete)

	stats := api.Group("/stats", jwt)
	stats.Get("/applicant", statsHandler.Applicant)
	stats.Get("/manager", statsHandler.Manager)
	stats.Get("/admin", statsHandler.Admin)
}
