package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventEventCreated   EventType = "event_created"
	EventTicketIssued   EventType = "ticket_issued"
	EventTicketPaid     EventType = "ticket_paid"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// EventCreatedPayload payload.
type EventCreatedPayload struct {
	EventID int64  `json:"event_id"`
	Name    string `json:"name"`
}

// TicketIssuedPayload payload.
type TicketIssuedPayload struct {
	TicketID int64  `json:"ticket_id"`
	EventID  int64  `json:"event_id"`
	Price    string `json:"price"`
}

// TicketPaidPayload payload.
type TicketPaidPayload struct {
	TicketID int64     `json:"ticket_id"`
	PaidAt   time.Time `json:"paid_at"`
}
