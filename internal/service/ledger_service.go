package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-ticketing/internal/domain"
	"github.com/spec-kit/event-ticketing/internal/events"
	"github.com/spec-kit/event-ticketing/internal/repository"
	apperrors "github.com/spec-kit/event-ticketing/pkg/util"
)

// LedgerService owns ticket records and the pay transition.
type LedgerService struct {
	tickets    repository.TicketRepository
	events     repository.EventRepository
	dispatcher events.Dispatcher
}

// TicketInput describes ticket creation payload. Price is a pointer
// because the field is required; nil means it was not supplied.
type TicketInput struct {
	EventID int64
	Price   *decimal.Decimal
	Paid    bool
}

// TicketUpdate describes a full or partial ticket mutation.
type TicketUpdate struct {
	EventID *int64
	Price   *decimal.Decimal
	Paid    *bool
}

// NewLedgerService constructs the service.
func NewLedgerService(ticketRepo repository.TicketRepository, eventRepo repository.EventRepository, dispatcher events.Dispatcher) *LedgerService {
	return &LedgerService{tickets: ticketRepo, events: eventRepo, dispatcher: dispatcher}
}

// CreateTicket issues a ticket owned by the requester against an
// existing event. Owner always comes from the authenticated identity.
func (s *LedgerService) CreateTicket(ctx context.Context, ownerID int64, input TicketInput) (*domain.Ticket, error) {
	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewValidationError("event does not exist", map[string]any{"event": input.EventID})
		}
		return nil, err
	}
	if input.Price == nil {
		return nil, apperrors.NewValidationError("price is required", nil)
	}
	if err := validateAmount("price", *input.Price); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		EventID:   event.ID,
		EventName: event.Name,
		OwnerID:   ownerID,
		Price:     *input.Price,
		Paid:      input.Paid,
	}
	if ticket.Paid {
		now := time.Now()
		ticket.PaidAt = &now
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventTicketIssued,
		ActorID:   ownerID,
		Timestamp: time.Now(),
		Payload: events.TicketIssuedPayload{
			TicketID: ticket.ID,
			EventID:  ticket.EventID,
			Price:    ticket.Price.StringFixed(2),
		},
	})
	return ticket, nil
}

// ListTickets returns the requester's tickets, newest first.
func (s *LedgerService) ListTickets(ctx context.Context, requesterID int64) ([]domain.Ticket, error) {
	return s.tickets.ListByOwner(ctx, requesterID)
}

// GetTicket fetches a ticket only when owned by the requester. Tickets
// outside the requester's scope surface as not found.
func (s *LedgerService) GetTicket(ctx context.Context, id, requesterID int64) (*domain.Ticket, error) {
	return s.tickets.GetByIDForOwner(ctx, id, requesterID)
}

// UpdateTicket mutates an owned ticket. A full update requires event,
// price and paid; a partial update accepts any subset. Changing the
// event re-parents the ticket; the new event only has to exist, not to
// belong to the requester.
func (s *LedgerService) UpdateTicket(ctx context.Context, id, requesterID int64, update TicketUpdate, partial bool) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByIDForOwner(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if !partial && (update.EventID == nil || update.Price == nil || update.Paid == nil) {
		return nil, apperrors.NewValidationError("event, price and paid are required", nil)
	}

	if update.EventID != nil && *update.EventID != ticket.EventID {
		event, err := s.events.GetByID(ctx, *update.EventID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewValidationError("event does not exist", map[string]any{"event": *update.EventID})
			}
			return nil, err
		}
		ticket.EventID = event.ID
		ticket.EventName = event.Name
	}
	if update.Price != nil {
		if err := validateAmount("price", *update.Price); err != nil {
			return nil, err
		}
		ticket.Price = *update.Price
	}
	if update.Paid != nil && *update.Paid != ticket.Paid {
		ticket.Paid = *update.Paid
		if ticket.Paid {
			now := time.Now()
			ticket.PaidAt = &now
		} else {
			ticket.PaidAt = nil
		}
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// DeleteTicket removes an owned ticket.
func (s *LedgerService) DeleteTicket(ctx context.Context, id, requesterID int64) error {
	return s.tickets.Delete(ctx, id, requesterID)
}

// Pay marks a ticket paid and stamps paid_at with the current server
// time. Repeat invocations simply refresh the timestamp; there is no
// locking, concurrent pays are last-write-wins on paid_at.
func (s *LedgerService) Pay(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticket.Paid = true
	ticket.PaidAt = &now
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventTicketPaid,
		ActorID:   ticket.OwnerID,
		Timestamp: now,
		Payload:   events.TicketPaidPayload{TicketID: ticket.ID, PaidAt: now},
	})
	return ticket, nil
}

func (s *LedgerService) publish(ctx context.Context, ev events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, ev)
}
