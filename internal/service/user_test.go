package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"userstore/internal/mocks"
	"userstore/internal/model"
	"userstore/internal/testutil"
)

func TestUser_CreateUser_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}

	saved := model.NewUser("Alice", "alice@example.com")
	saved.ID = 1
	store.On("Save", mock.Anything, model.NewUser("Alice", "alice@example.com")).Return(saved, nil)

	s := NewUser(store, testutil.MakeNoopLogger())

	got, err := s.CreateUser(ctx, "Alice", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	store.AssertExpectations(t)
}

func TestUser_CreateUser_TrimsWhitespace(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}

	saved := model.NewUser("Alice", "alice@example.com")
	saved.ID = 1
	store.On("Save", mock.Anything, model.NewUser("Alice", "alice@example.com")).Return(saved, nil)

	s := NewUser(store, testutil.MakeNoopLogger())

	_, err := s.CreateUser(ctx, "  Alice ", " alice@example.com\n")
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUser_CreateUser_SaveError(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}

	store.On("Save", mock.Anything, mock.Anything).Return(model.User{}, &model.ValidationError{Field: "name", Message: "must be at least 2 characters"})

	s := NewUser(store, testutil.MakeNoopLogger())

	_, err := s.CreateUser(ctx, "A", "a@example.com")
	require.Error(t, err)

	var vErr *model.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestUser_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}

	store.On("GetByID", mock.Anything, int64(42)).Return(model.User{}, model.ErrNotFound)

	s := NewUser(store, testutil.MakeNoopLogger())

	_, err := s.GetUser(ctx, 42)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUser_DeleteUser(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}

	store.On("Delete", mock.Anything, int64(1)).Return(true)
	store.On("Delete", mock.Anything, int64(2)).Return(false)

	s := NewUser(store, testutil.MakeNoopLogger())

	assert.True(t, s.DeleteUser(ctx, 1))
	assert.False(t, s.DeleteUser(ctx, 2))
}

func TestUser_PromoteToAdmin(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}

	stored := model.NewUser("Alice", "alice@example.com")
	stored.ID = 1
	store.On("GetByID", mock.Anything, int64(1)).Return(stored, nil)

	promoted := stored
	promoted.Role = model.RoleAdmin
	store.On("Save", mock.Anything, promoted).Return(promoted, nil)

	s := NewUser(store, testutil.MakeNoopLogger())

	got, err := s.PromoteToAdmin(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, got.Role)
	store.AssertExpectations(t)
}

func TestUser_PromoteToAdmin_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}

	store.On("GetByID", mock.Anything, int64(42)).Return(model.User{}, model.ErrNotFound)

	s := NewUser(store, testutil.MakeNoopLogger())

	_, err := s.PromoteToAdmin(ctx, 42)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUser_SuspendUser(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}

	stored := model.NewUser("Bob", "bob@example.com")
	stored.ID = 2
	store.On("GetByID", mock.Anything, int64(2)).Return(stored, nil)

	suspended := stored
	suspended.Status = model.StatusSuspended
	store.On("Save", mock.Anything, suspended).Return(suspended, nil)

	s := NewUser(store, testutil.MakeNoopLogger())

	got, err := s.SuspendUser(ctx, 2, "manual review")
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuspended, got.Status)
	assert.False(t, got.IsActive())
	store.AssertExpectations(t)
}

func TestUser_Listings(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}

	alice := model.NewUser("Alice", "alice@example.com")
	alice.ID = 1
	bob := model.NewUser("Bob", "bob@example.com")
	bob.ID = 2
	bob.Status = model.StatusSuspended

	store.On("List", mock.Anything).Return([]model.User{alice, bob})
	store.On("GetActive", mock.Anything).Return([]model.User{alice})
	store.On("Count", mock.Anything).Return(2)

	s := NewUser(store, testutil.MakeNoopLogger())

	assert.Len(t, s.ListUsers(ctx), 2)
	active := s.ActiveUsers(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, alice.ID, active[0].ID)
	assert.Equal(t, 2, s.CountUsers(ctx))
}
