package domain

import "time"

// User is the identity record for account holders. Capability is
// expressed through flat boolean flags rather than roles.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanAccessAdmin reports whether the user may use staff-only surfaces.
func (u *User) CanAccessAdmin() bool {
	return u.IsActive && u.IsStaff
}
