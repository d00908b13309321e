package service

import (
	"context"
	"fmt"
	"strings"

	"userstore/internal/logger"
	"userstore/internal/model"
)

// User orchestrates user lifecycle operations on top of a UserStore.
type User struct {
	store  model.UserStore
	logger *logger.Logger
}

// NewUser creates the user service.
func NewUser(store model.UserStore, logger *logger.Logger) *User {
	return &User{
		store:  store,
		logger: logger,
	}
}

// CreateUser builds a new user from the given fields and saves it.
// Surrounding whitespace is stripped before validation.
func (s *User) CreateUser(ctx context.Context, name, email string) (model.User, error) {
	user := model.NewUser(strings.TrimSpace(name), strings.TrimSpace(email))

	saved, err := s.store.Save(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("user created", "id", saved.ID, "name", saved.Name)
	return saved, nil
}

// GetUser returns the user with the given ID.
func (s *User) GetUser(ctx context.Context, id int64) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// DeleteUser removes the user with the given ID and reports whether a
// removal happened.
func (s *User) DeleteUser(ctx context.Context, id int64) bool {
	deleted := s.store.Delete(ctx, id)
	if deleted {
		s.logger.Info("user deleted", "id", id)
	}
	return deleted
}

// ListUsers returns all stored users.
func (s *User) ListUsers(ctx context.Context) []model.User {
	return s.store.List(ctx)
}

// ActiveUsers returns the stored users with active status.
func (s *User) ActiveUsers(ctx context.Context) []model.User {
	return s.store.GetActive(ctx)
}

// CountUsers returns the number of stored users.
func (s *User) CountUsers(ctx context.Context) int {
	return s.store.Count(ctx)
}

// PromoteToAdmin grants the admin role to the user with the given ID
// and saves the change.
func (s *User) PromoteToAdmin(ctx context.Context, id int64) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	user.Role = model.RoleAdmin

	saved, err := s.store.Save(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("user promoted to admin", "id", saved.ID, "name", saved.Name)
	return saved, nil
}

// SuspendUser puts the user with the given ID into the suspended state
// and saves the change. The reason is logged, not stored.
func (s *User) SuspendUser(ctx context.Context, id int64, reason string) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	user.Status = model.StatusSuspended

	saved, err := s.store.Save(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("user suspended", "id", saved.ID, "reason", reason)
	return saved, nil
}
