package model

import (
	"context"
	"time"
)

// UserStore defines storage operations for users.
type UserStore interface {
	Save(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Delete(ctx context.Context, id int64) bool
	Count(ctx context.Context) int
	GetActive(ctx context.Context) []User
	List(ctx context.Context) []User
}

// Status enumerates user lifecycle states.
type Status string

const (
	// StatusActive is a live, usable account.
	StatusActive Status = "active"
	// StatusInactive is a dormant account.
	StatusInactive Status = "inactive"
	// StatusPending is an account awaiting activation.
	StatusPending Status = "pending"
	// StatusSuspended is an account blocked by an operator.
	StatusSuspended Status = "suspended"
)

// Role enumerates user permission levels.
type Role string

const (
	// RoleAdmin has full access.
	RoleAdmin Role = "admin"
	// RoleUser is the default level.
	RoleUser Role = "user"
	// RoleGuest has read-only access.
	RoleGuest Role = "guest"
)

// User represents a stored user record. A zero ID means the record has
// not been persisted yet; the store assigns the ID on first save.
type User struct {
	ID        int64
	Name      string
	Email     string
	Status    Status
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser returns an unpersisted user with default status and role.
// Timestamps are assigned by the store on first save.
func NewUser(name, email string) User {
	return User{
		Name:   name,
		Email:  email,
		Status: StatusActive,
		Role:   RoleUser,
	}
}

// IsActive reports whether the user is in the active state.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}
