package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-ticketing/internal/api/http/handlers"
	"github.com/spec-kit/event-ticketing/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Events         *handlers.EventsHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	userGroup := app.Group("/user")
	userGroup.Post("/create/", cfg.Users.Create)
	userGroup.Post("/token/", cfg.Users.Token)
	userGroup.Get("/me/", cfg.AuthMiddleware.Handle, cfg.Users.Me)
	userGroup.Patch("/me/", cfg.AuthMiddleware.Handle, cfg.Users.UpdateMe)
	userGroup.Post("/me/", cfg.AuthMiddleware.Handle, cfg.Users.MeNotAllowed)

	ticketGroup := app.Group("/ticket", cfg.AuthMiddleware.Handle)
	ticketGroup.Get("/event/", cfg.Events.List)
	ticketGroup.Post("/event/", cfg.Events.Create)
	ticketGroup.Get("/event/:id/", cfg.Events.Get)
	ticketGroup.Put("/event/:id/", cfg.Events.Update)
	ticketGroup.Patch("/event/:id/", cfg.Events.Update)
	ticketGroup.Delete("/event/:id/", cfg.Events.Delete)

	ticketGroup.Get("/ticket/", cfg.Tickets.List)
	ticketGroup.Post("/ticket/", cfg.Tickets.Create)
	ticketGroup.Get("/ticket/:id/", cfg.Tickets.Get)
	ticketGroup.Put("/ticket/:id/", cfg.Tickets.Update)
	ticketGroup.Patch("/ticket/:id/", cfg.Tickets.Update)
	ticketGroup.Delete("/ticket/:id/", cfg.Tickets.Delete)
}
