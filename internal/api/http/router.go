package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/healthcare-blog/internal/api/http/handlers"
	"github.com/spec-kit/healthcare-blog/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Posts          *handlers.PostsHandler
	Intake         *handlers.IntakeHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Mutating post routes pass through the
// auth gate; reads and intake endpoints are open.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)

	app.Get("/posts", cfg.Posts.List)
	app.Get("/posts/:id", cfg.Posts.GetByID)
	app.Post("/posts", cfg.AuthMiddleware.Handle, cfg.Posts.Create)
	app.Put("/posts/:id", cfg.AuthMiddleware.Handle, cfg.Posts.Update)
	app.Delete("/posts/:id", cfg.AuthMiddleware.Handle, cfg.Posts.Delete)

	api := app.Group("/api")
	api.Post("/diagnosis", cfg.Intake.Diagnosis)
	api.Post("/consultation", cfg.Intake.Consultation)
	api.Post("/healthcare-plan", cfg.Intake.HealthcarePlan)
	api.Post("/data-analysis", cfg.Intake.DataAnalysis)
}
