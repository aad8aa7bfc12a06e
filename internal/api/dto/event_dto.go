package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-ticketing/internal/domain"
)

// EventCreateRequest payload for event creation. Owner and the
// server-assigned fields are never read from the body. DurationHours
// is a pointer so an omitted field is distinguishable from zero.
type EventCreateRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	StartedAt     time.Time        `json:"started_at"`
	DurationHours *decimal.Decimal `json:"duration_hours"`
}

// EventUpdateRequest payload for full or partial event mutation.
type EventUpdateRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	StartedAt     *time.Time       `json:"started_at"`
	DurationHours *decimal.Decimal `json:"duration_hours"`
}

// EventResponse serializes an event. Duration is rendered with two
// fixed decimal places.
type EventResponse struct {
	ID            int64     `json:"id"`
	Owner         int64     `json:"owner"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	DurationHours string    `json:"duration_hours"`
	StartedAt     time.Time `json:"started_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewEventResponse maps a domain event.
func NewEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		ID:            event.ID,
		Owner:         event.OwnerID,
		Name:          event.Name,
		Description:   event.Description,
		DurationHours: event.DurationHours.StringFixed(2),
		StartedAt:     event.StartedAt,
		CreatedAt:     event.CreatedAt,
		UpdatedAt:     event.UpdatedAt,
	}
}

// NewEventListResponse maps a slice of events.
func NewEventListResponse(events []domain.Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for i := range events {
		result = append(result, NewEventResponse(&events[i]))
	}
	return result
}
