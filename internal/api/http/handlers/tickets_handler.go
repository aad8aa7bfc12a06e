package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-ticketing/internal/api/dto"
	"github.com/spec-kit/event-ticketing/internal/auth"
	"github.com/spec-kit/event-ticketing/internal/service"
	apperrors "github.com/spec-kit/event-ticketing/pkg/util"
)

// TicketsHandler exposes owner-scoped ticket CRUD.
type TicketsHandler struct {
	ledger *service.LedgerService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ledger *service.LedgerService) *TicketsHandler {
	return &TicketsHandler{ledger: ledger}
}

// List handles GET /ticket/ticket/. The list shape withholds paid_at.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	tickets, err := h.ledger.ListTickets(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketListResponse(tickets))
}

// Create handles POST /ticket/ticket/. Owner is always the requester.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.TicketCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.ledger.CreateTicket(c.Context(), user.ID, service.TicketInput{
		EventID: req.Event,
		Price:   req.Price,
		Paid:    req.Paid,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTicketDetailResponse(ticket))
}

// Get handles GET /ticket/ticket/:id/.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("ticket", nil)
	}

	ticket, err := h.ledger.GetTicket(c.Context(), int64(id), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketDetailResponse(ticket))
}

// Update handles PUT and PATCH /ticket/ticket/:id/.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("ticket", nil)
	}

	var req dto.TicketUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	partial := c.Method() == fiber.MethodPatch
	ticket, err := h.ledger.UpdateTicket(c.Context(), int64(id), user.ID, service.TicketUpdate{
		EventID: req.Event,
		Price:   req.Price,
		Paid:    req.Paid,
	}, partial)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketDetailResponse(ticket))
}

// Delete handles DELETE /ticket/ticket/:id/.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("ticket", nil)
	}

	if err := h.ledger.DeleteTicket(c.Context(), int64(id), user.ID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
