package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket is a purchase record tying one owner to one event. PaidAt is
// non-nil exactly when Paid is true.
type Ticket struct {
	ID        int64
	EventID   int64
	EventName string
	OwnerID   int64
	Price     decimal.Decimal
	Paid      bool
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// String renders the ticket as the name of its event.
func (t *Ticket) String() string {
	return t.EventName
}
