package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-ticketing/internal/api/dto"
	"github.com/spec-kit/event-ticketing/internal/auth"
	"github.com/spec-kit/event-ticketing/internal/service"
	apperrors "github.com/spec-kit/event-ticketing/pkg/util"
)

// EventsHandler exposes event CRUD. Listing is owner-scoped; retrieval
// and mutation address events globally by ID.
type EventsHandler struct {
	catalog *service.CatalogService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(catalog *service.CatalogService) *EventsHandler {
	return &EventsHandler{catalog: catalog}
}

// List handles GET /ticket/event/.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	events, err := h.catalog.ListEvents(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventListResponse(events))
}

// Create handles POST /ticket/event/.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	event, err := h.catalog.CreateEvent(c.Context(), user.ID, service.EventInput{
		Name:          req.Name,
		Description:   req.Description,
		StartedAt:     req.StartedAt,
		DurationHours: req.DurationHours,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewEventResponse(event))
}

// Get handles GET /ticket/event/:id/.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("event", nil)
	}

	event, err := h.catalog.GetEvent(c.Context(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventResponse(event))
}

// Update handles PUT and PATCH /ticket/event/:id/.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("event", nil)
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	partial := c.Method() == fiber.MethodPatch
	event, err := h.catalog.UpdateEvent(c.Context(), int64(id), service.EventUpdate{
		Name:          req.Name,
		Description:   req.Description,
		StartedAt:     req.StartedAt,
		DurationHours: req.DurationHours,
	}, partial)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventResponse(event))
}

// Delete handles DELETE /ticket/event/:id/.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("event", nil)
	}

	if err := h.catalog.DeleteEvent(c.Context(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
