package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-ticketing/internal/auth"
	"github.com/spec-kit/event-ticketing/internal/config"
	"github.com/spec-kit/event-ticketing/internal/domain"
	"github.com/spec-kit/event-ticketing/internal/events"
	"github.com/spec-kit/event-ticketing/internal/repository"
	apperrors "github.com/spec-kit/event-ticketing/pkg/util"
)

// DirectoryService owns identity records and the credential exchange.
type DirectoryService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	tokenStore auth.TokenStore
	dispatcher events.Dispatcher
	bcryptCost int
	minPassLen int
}

// DirectoryDependencies bundles requirements for the directory service.
type DirectoryDependencies struct {
	UserRepo   repository.UserRepository
	TokenStore auth.TokenStore
	Dispatcher events.Dispatcher
}

// NewDirectoryService builds the service.
func NewDirectoryService(cfg config.AuthConfig, deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		tokenStore: deps.TokenStore,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.BcryptCost,
		minPassLen: cfg.MinPasswordLength,
	}
}

// NormalizeEmail lower-cases the domain portion of an address. The
// local part is preserved verbatim.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// CreateUser persists a new identity. Email is required; the password
// is hashed and never stored in plaintext. No length rule applies at
// this level, only at registration.
func (s *DirectoryService) CreateUser(ctx context.Context, email, password, name string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("email address is required", nil)
	}
	email = NormalizeEmail(email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("email already registered", map[string]any{"email": email})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterUser creates an account through the public API, enforcing the
// minimum password length on top of CreateUser.
func (s *DirectoryService) RegisterUser(ctx context.Context, email, password, name string) (*domain.User, error) {
	if len(password) < s.minPassLen {
		return nil, apperrors.NewValidationError("password too short", map[string]any{"min_length": s.minPassLen})
	}
	user, err := s.CreateUser(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventUserRegistered,
		ActorID:   user.ID,
		Timestamp: time.Now(),
		Payload:   events.UserRegisteredPayload{UserID: user.ID, Email: user.Email},
	})
	return user, nil
}

// CreateSuperuser delegates to CreateUser, then grants the staff and
// superuser flags.
func (s *DirectoryService) CreateSuperuser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.CreateUser(ctx, email, password, "")
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials. Blank passwords are rejected before
// any lookup.
func (s *DirectoryService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if password == "" {
		return nil, apperrors.NewAuthenticationError("password must not be blank")
	}

	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewAuthenticationError("invalid credentials")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewAuthenticationError("invalid credentials")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewAuthenticationError("invalid credentials")
	}
	return user, nil
}

// Login authenticates and issues a persisted token.
func (s *DirectoryService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", time.Time{}, err
	}

	token, tokenID, exp, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return "", time.Time{}, err
	}
	if err := s.tokenStore.Save(ctx, tokenID, user.ID, s.tokenMgr.TTL()); err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// UpdateProfile mutates name and/or password of an account.
func (s *DirectoryService) UpdateProfile(ctx context.Context, user *domain.User, name, password *string) (*domain.User, error) {
	if name != nil {
		user.Name = *name
	}
	if password != nil {
		if len(*password) < s.minPassLen {
			return nil, apperrors.NewValidationError("password too short", map[string]any{"min_length": s.minPassLen})
		}
		hash, err := auth.HashPassword(*password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account; owned events and their tickets cascade.
func (s *DirectoryService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *DirectoryService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *DirectoryService) publish(ctx context.Context, ev events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, ev)
}
