package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/event-ticketing/internal/config"
	"github.com/spec-kit/event-ticketing/internal/service"
)

func newDirectory(users *memoryUserRepo) *service.DirectoryService {
	cfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            bcrypt.MinCost,
		MinPasswordLength:     8,
	}
	return service.NewDirectoryService(cfg, service.DirectoryDependencies{
		UserRepo:   users,
		TokenStore: newMemoryTokenStore(),
	})
}

func TestCreateUserHashesPassword(t *testing.T) {
	ctx := context.Background()
	directory := newDirectory(newMemoryUserRepo(newMemoryClock()))

	user, err := directory.CreateUser(ctx, "test@example.com", "test123", "Test User")
	require.NoError(t, err)
	require.Equal(t, "test@example.com", user.Email)
	require.NotEqual(t, "test123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("test123")))
}

func TestCreateUserNormalizesEmailDomain(t *testing.T) {
	ctx := context.Background()
	directory := newDirectory(newMemoryUserRepo(newMemoryClock()))

	samples := [][2]string{
		{"test1@EXAMPLE.com", "test1@example.com"},
		{"Test2@Example.com", "Test2@example.com"},
		{"Test3@EXAMPLE.COM", "Test3@example.com"},
		{"Test4@example.COM", "Test4@example.com"},
	}
	for _, sample := range samples {
		user, err := directory.CreateUser(ctx, sample[0], "test123", "")
		require.NoError(t, err)
		require.Equal(t, sample[1], user.Email)
	}
}

func TestCreateUserWithoutEmailFails(t *testing.T) {
	ctx := context.Background()
	directory := newDirectory(newMemoryUserRepo(newMemoryClock()))

	_, err := directory.CreateUser(ctx, "", "test123", "")
	require.Error(t, err)
}

func TestCreateUserDuplicateEmailFails(t *testing.T) {
	ctx := context.Background()
	directory := newDirectory(newMemoryUserRepo(newMemoryClock()))

	_, err := directory.CreateUser(ctx, "test@example.com", "test123", "")
	require.NoError(t, err)

	_, err = directory.CreateUser(ctx, "test@example.com", "other456", "")
	require.Error(t, err)
}

func TestRegisterUserRejectsShortPassword(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUserRepo(newMemoryClock())
	directory := newDirectory(users)

	_, err := directory.RegisterUser(ctx, "test@example.com", "test123", "Test User")
	require.Error(t, err)

	_, err = users.GetByEmail(ctx, "test@example.com")
	require.Error(t, err, "no record should persist for a rejected registration")
}

func TestCreateSuperuserSetsFlags(t *testing.T) {
	ctx := context.Background()
	directory := newDirectory(newMemoryUserRepo(newMemoryClock()))

	user, err := directory.CreateSuperuser(ctx, "admin@example.com", "test123")
	require.NoError(t, err)
	require.True(t, user.IsStaff)
	require.True(t, user.IsSuperuser)
}

func TestDeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	clock := newMemoryClock()
	users := newMemoryUserRepo(clock)
	events := newMemoryEventRepo(clock)
	tickets := newMemoryTicketRepo(clock, events)
	users.events = events
	users.tickets = tickets

	directory := newDirectory(users)
	catalog := service.NewCatalogService(events, nil)
	ledger := service.NewLedgerService(tickets, events, nil)

	user, err := directory.CreateUser(ctx, "owner@example.com", "testpass1", "")
	require.NoError(t, err)

	event, err := catalog.CreateEvent(ctx, user.ID, service.EventInput{
		Name:          "Test event",
		StartedAt:     time.Now(),
		DurationHours: amount("5"),
	})
	require.NoError(t, err)

	ticket, err := ledger.CreateTicket(ctx, user.ID, service.TicketInput{
		EventID: event.ID,
		Price:   amount("10.00"),
	})
	require.NoError(t, err)

	require.NoError(t, directory.DeleteUser(ctx, user.ID))

	_, err = users.GetByID(ctx, user.ID)
	require.Error(t, err)
	_, err = catalog.GetEvent(ctx, event.ID)
	require.Error(t, err)
	_, err = tickets.GetByID(ctx, ticket.ID)
	require.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	directory := newDirectory(newMemoryUserRepo(newMemoryClock()))

	_, err := directory.CreateUser(ctx, "user@example.com", "testpass1", "")
	require.NoError(t, err)

	user, err := directory.Authenticate(ctx, "user@example.com", "testpass1")
	require.NoError(t, err)
	require.Equal(t, "user@example.com", user.Email)

	_, err = directory.Authenticate(ctx, "user@example.com", "wrongpass")
	require.Error(t, err)

	_, err = directory.Authenticate(ctx, "unknown@example.com", "testpass1")
	require.Error(t, err)
}

func TestAuthenticateRejectsBlankPassword(t *testing.T) {
	ctx := context.Background()
	directory := newDirectory(newMemoryUserRepo(newMemoryClock()))

	_, err := directory.CreateUser(ctx, "user@example.com", "testpass1", "")
	require.NoError(t, err)

	_, err = directory.Authenticate(ctx, "user@example.com", "")
	require.Error(t, err)
}

func TestLoginIssuesToken(t *testing.T) {
	ctx := context.Background()
	directory := newDirectory(newMemoryUserRepo(newMemoryClock()))

	_, err := directory.CreateUser(ctx, "user@example.com", "testpass1", "")
	require.NoError(t, err)

	token, exp, err := directory.Login(ctx, "user@example.com", "testpass1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, exp.IsZero())

	claims, err := directory.TokenManager().ParseToken(token)
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, int64(1), userID)
}
