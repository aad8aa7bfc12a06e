package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-ticketing/internal/domain"
)

// amount builds a required fixed-point input value.
func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// memoryClock hands out strictly increasing timestamps so created_at
// ordering is deterministic in tests.
type memoryClock struct {
	mu  sync.Mutex
	now time.Time
}

func newMemoryClock() *memoryClock {
	return &memoryClock{now: time.Now()}
}

func (c *memoryClock) tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

type memoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User
	clock  *memoryClock

	// Set when a test needs the schema's ON DELETE CASCADE behavior.
	events  *memoryEventRepo
	tickets *memoryTicketRepo
}

func newMemoryUserRepo(clock *memoryClock) *memoryUserRepo {
	return &memoryUserRepo{users: make(map[int64]domain.User), clock: clock}
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = r.clock.tick()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	user.UpdatedAt = r.clock.tick()
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	if _, ok := r.users[id]; !ok {
		r.mu.Unlock()
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	r.mu.Unlock()

	// Mirrors the ON DELETE CASCADE actions declared in the schema.
	if r.tickets != nil {
		r.tickets.deleteByOwner(id)
	}
	if r.events != nil {
		for _, eventID := range r.events.idsByOwner(id) {
			if r.tickets != nil {
				r.tickets.deleteByEvent(eventID)
			}
			r.events.remove(eventID)
		}
	}
	return nil
}

type memoryEventRepo struct {
	mu     sync.Mutex
	nextID int64
	events map[int64]domain.Event
	clock  *memoryClock
}

func newMemoryEventRepo(clock *memoryClock) *memoryEventRepo {
	return &memoryEventRepo{events: make(map[int64]domain.Event), clock: clock}
}

func (r *memoryEventRepo) Create(_ context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	event.ID = r.nextID
	event.CreatedAt = r.clock.tick()
	event.UpdatedAt = event.CreatedAt
	r.events[event.ID] = *event
	return nil
}

func (r *memoryEventRepo) Update(_ context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return pgx.ErrNoRows
	}
	event.UpdatedAt = r.clock.tick()
	r.events[event.ID] = *event
	return nil
}

func (r *memoryEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &event, nil
}

func (r *memoryEventRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Event
	for _, event := range r.events {
		if event.OwnerID == ownerID {
			result = append(result, event)
		}
	}
	sortByCreatedDesc(result, func(e domain.Event) time.Time { return e.CreatedAt })
	return result, nil
}

func (r *memoryEventRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.events, id)
	return nil
}

func (r *memoryEventRepo) idsByOwner(ownerID int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []int64
	for id, event := range r.events {
		if event.OwnerID == ownerID {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *memoryEventRepo) remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, id)
}

type memoryTicketRepo struct {
	mu      sync.Mutex
	nextID  int64
	tickets map[int64]domain.Ticket
	events  *memoryEventRepo
	clock   *memoryClock
}

func newMemoryTicketRepo(clock *memoryClock, events *memoryEventRepo) *memoryTicketRepo {
	return &memoryTicketRepo{tickets: make(map[int64]domain.Ticket), events: events, clock: clock}
}

func (r *memoryTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ticket.ID = r.nextID
	ticket.CreatedAt = r.clock.tick()
	ticket.UpdatedAt = ticket.CreatedAt
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *memoryTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	ticket.UpdatedAt = r.clock.tick()
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *memoryTicketRepo) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	r.mu.Lock()
	ticket, ok := r.tickets[id]
	r.mu.Unlock()
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return r.withEventName(ctx, ticket)
}

func (r *memoryTicketRepo) GetByIDForOwner(ctx context.Context, id, ownerID int64) (*domain.Ticket, error) {
	ticket, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket.OwnerID != ownerID {
		return nil, pgx.ErrNoRows
	}
	return ticket, nil
}

func (r *memoryTicketRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Ticket, error) {
	r.mu.Lock()
	var owned []domain.Ticket
	for _, ticket := range r.tickets {
		if ticket.OwnerID == ownerID {
			owned = append(owned, ticket)
		}
	}
	r.mu.Unlock()

	result := make([]domain.Ticket, 0, len(owned))
	for _, ticket := range owned {
		joined, err := r.withEventName(ctx, ticket)
		if err != nil {
			return nil, err
		}
		result = append(result, *joined)
	}
	sortByCreatedDesc(result, func(t domain.Ticket) time.Time { return t.CreatedAt })
	return result, nil
}

func (r *memoryTicketRepo) Delete(_ context.Context, id, ownerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok || ticket.OwnerID != ownerID {
		return pgx.ErrNoRows
	}
	delete(r.tickets, id)
	return nil
}

func (r *memoryTicketRepo) deleteByOwner(ownerID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ticket := range r.tickets {
		if ticket.OwnerID == ownerID {
			delete(r.tickets, id)
		}
	}
}

func (r *memoryTicketRepo) deleteByEvent(eventID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ticket := range r.tickets {
		if ticket.EventID == eventID {
			delete(r.tickets, id)
		}
	}
}

func (r *memoryTicketRepo) withEventName(ctx context.Context, ticket domain.Ticket) (*domain.Ticket, error) {
	event, err := r.events.GetByID(ctx, ticket.EventID)
	if err != nil {
		return nil, err
	}
	ticket.EventName = event.Name
	return &ticket, nil
}

func sortByCreatedDesc[T any](items []T, createdAt func(T) time.Time) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && createdAt(items[j]).After(createdAt(items[j-1])); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]int64
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]int64)}
}

func (s *memoryTokenStore) Save(_ context.Context, tokenID string, userID int64, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenID] = userID
	return nil
}

func (s *memoryTokenStore) Exists(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[tokenID]
	return ok, nil
}

func (s *memoryTokenStore) Revoke(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenID)
	return nil
}
