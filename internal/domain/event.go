package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is an organizer-owned happening tickets are issued against.
// DurationHours is a fixed-point value with two decimal places.
type Event struct {
	ID            int64
	OwnerID       int64
	Name          string
	Description   string
	StartedAt     time.Time
	DurationHours decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (e *Event) String() string {
	return e.Name
}
