package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser_Defaults(t *testing.T) {
	u := NewUser("Alice", "alice@example.com")

	assert.Equal(t, int64(0), u.ID)
	assert.Equal(t, StatusActive, u.Status)
	assert.Equal(t, RoleUser, u.Role)
	assert.True(t, u.CreatedAt.IsZero())
	assert.True(t, u.UpdatedAt.IsZero())
}

func TestUser_IsActive(t *testing.T) {
	u := NewUser("Alice", "alice@example.com")
	assert.True(t, u.IsActive())

	for _, status := range []Status{StatusInactive, StatusPending, StatusSuspended} {
		u.Status = status
		assert.False(t, u.IsActive())
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "email", Message: "must contain @"}
	assert.Equal(t, "validation failed: email: must contain @", err.Error())
}
