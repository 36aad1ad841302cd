package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/videogames-portal/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Catalog *handlers.CatalogHandler
	Guard   *RouteGuard
}

// RegisterRoutes wires the portal route table. The root path and any
// unmatched path redirect to the login view; the catalog routes are
// guarded.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(LoginPath, fiber.StatusFound)
	})
	app.Get(LoginPath, cfg.Auth.LoginView)
	app.Post("/auth/token", cfg.Auth.IssueToken)
	app.Delete("/auth/token", cfg.Auth.Logout)

	games := app.Group("/video-games", cfg.Guard.Handle)
	games.Get("/", cfg.Catalog.List)
	games.Get("/:id", cfg.Catalog.Detail)

	// wildcard fallback
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect(LoginPath, fiber.StatusFound)
	})
}
