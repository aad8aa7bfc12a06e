package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-ticketing/internal/domain"
	"github.com/spec-kit/event-ticketing/internal/events"
	"github.com/spec-kit/event-ticketing/internal/repository"
	apperrors "github.com/spec-kit/event-ticketing/pkg/util"
)

// CatalogService owns event records. All operations take the acting
// identity explicitly; nothing is read from ambient request state.
type CatalogService struct {
	events     repository.EventRepository
	dispatcher events.Dispatcher
}

// EventInput describes event creation payload. DurationHours is a
// pointer because the field is required; nil means it was not supplied.
type EventInput struct {
	Name          string
	Description   string
	StartedAt     time.Time
	DurationHours *decimal.Decimal
}

// EventUpdate describes a full or partial event mutation.
type EventUpdate struct {
	Name          *string
	Description   *string
	StartedAt     *time.Time
	DurationHours *decimal.Decimal
}

// NewCatalogService constructs the service.
func NewCatalogService(eventRepo repository.EventRepository, dispatcher events.Dispatcher) *CatalogService {
	return &CatalogService{events: eventRepo, dispatcher: dispatcher}
}

// CreateEvent creates an event owned by the requester. Description may
// be empty, every other field is required.
func (s *CatalogService) CreateEvent(ctx context.Context, ownerID int64, input EventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("event name is required", nil)
	}
	if input.StartedAt.IsZero() {
		return nil, apperrors.NewValidationError("started_at is required", nil)
	}
	if input.DurationHours == nil {
		return nil, apperrors.NewValidationError("duration_hours is required", nil)
	}
	if err := validateAmount("duration_hours", *input.DurationHours); err != nil {
		return nil, err
	}

	event := &domain.Event{
		OwnerID:       ownerID,
		Name:          input.Name,
		Description:   input.Description,
		StartedAt:     input.StartedAt,
		DurationHours: *input.DurationHours,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventEventCreated,
		ActorID:   ownerID,
		Timestamp: time.Now(),
		Payload:   events.EventCreatedPayload{EventID: event.ID, Name: event.Name},
	})
	return event, nil
}

// ListEvents returns the requester's events, newest first.
func (s *CatalogService) ListEvents(ctx context.Context, requesterID int64) ([]domain.Event, error) {
	return s.events.ListByOwner(ctx, requesterID)
}

// GetEvent fetches an event by ID. Unlike listing, retrieval is not
// owner-scoped; any authenticated caller may read any event.
func (s *CatalogService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

// UpdateEvent mutates an event. Mutations follow the same by-ID access
// policy as retrieval. A full update requires all mutable fields.
func (s *CatalogService) UpdateEvent(ctx context.Context, id int64, update EventUpdate, partial bool) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !partial && (update.Name == nil || update.StartedAt == nil || update.DurationHours == nil) {
		return nil, apperrors.NewValidationError("name, started_at and duration_hours are required", nil)
	}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, apperrors.NewValidationError("event name is required", nil)
		}
		event.Name = *update.Name
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.StartedAt != nil {
		event.StartedAt = *update.StartedAt
	}
	if update.DurationHours != nil {
		if err := validateAmount("duration_hours", *update.DurationHours); err != nil {
			return nil, err
		}
		event.DurationHours = *update.DurationHours
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event; its tickets cascade.
func (s *CatalogService) DeleteEvent(ctx context.Context, id int64) error {
	return s.events.Delete(ctx, id)
}

func (s *CatalogService) publish(ctx context.Context, ev events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, ev)
}
