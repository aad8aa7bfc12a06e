package dto

import "github.com/spec-kit/event-ticketing/internal/domain"

// UserCreateRequest payload for account registration.
type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenRequest payload for the credential exchange.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public shape of an account. The password hash is
// never serialized.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MeUpdateRequest payload for profile mutation.
type MeUpdateRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}
}
