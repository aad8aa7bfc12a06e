package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-ticketing/internal/domain"
)

// TicketCreateRequest payload for ticket issuance. Owner is taken from
// the authenticated requester, never from the body. Price is a pointer
// so an omitted field is distinguishable from zero.
type TicketCreateRequest struct {
	Event int64            `json:"event"`
	Price *decimal.Decimal `json:"price"`
	Paid  bool             `json:"paid"`
}

// TicketUpdateRequest payload for full or partial ticket mutation.
type TicketUpdateRequest struct {
	Event *int64           `json:"event"`
	Price *decimal.Decimal `json:"price"`
	Paid  *bool            `json:"paid"`
}

// TicketResponse is the list shape of a ticket; paid_at is withheld.
type TicketResponse struct {
	ID        int64     `json:"id"`
	Event     int64     `json:"event"`
	Price     string    `json:"price"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketDetailResponse additionally reveals the read-only paid_at.
type TicketDetailResponse struct {
	TicketResponse
	PaidAt *time.Time `json:"paid_at"`
}

// NewTicketResponse maps a domain ticket to its list shape.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:        ticket.ID,
		Event:     ticket.EventID,
		Price:     ticket.Price.StringFixed(2),
		Paid:      ticket.Paid,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}

// NewTicketDetailResponse maps a domain ticket to its detail shape.
func NewTicketDetailResponse(ticket *domain.Ticket) TicketDetailResponse {
	return TicketDetailResponse{
		TicketResponse: NewTicketResponse(ticket),
		PaidAt:         ticket.PaidAt,
	}
}

// NewTicketListResponse maps a slice of tickets.
func NewTicketListResponse(tickets []domain.Ticket) []TicketResponse {
	result := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		result = append(result, NewTicketResponse(&tickets[i]))
	}
	return result
}
