// Package memory provides the in-memory user store. Records live in a
// map keyed by ID with a separate slice preserving insertion order, so
// listings stay stable between calls.
package memory

import (
	"context"
	"sync"
	"time"

	"userstore/internal/model"
	"userstore/internal/validation"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository stores users in process memory. A single write lock
// guards mutations while reads may run concurrently. With a positive
// capacity the store is bounded and rejects new users once full;
// updates to existing users always go through.
type UserRepository struct {
	mu       sync.RWMutex
	users    map[int64]model.User
	order    []int64
	nextID   int64
	capacity int
}

// NewUserRepository returns an unbounded in-memory store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int64]model.User),
		order:  make([]int64, 0),
		nextID: 1,
	}
}

// NewBoundedUserRepository returns a store holding at most capacity
// users.
func NewBoundedUserRepository(capacity int) *UserRepository {
	r := NewUserRepository()
	r.capacity = capacity
	return r
}

// Save validates the user and persists it. A user without an ID gets
// the next identifier and its creation timestamp; a user with an ID
// must already exist and only has its fields and update timestamp
// replaced. The returned value is a snapshot independent of the
// caller's argument.
func (r *UserRepository) Save(ctx context.Context, user model.User) (model.User, error) {
	if err := validation.ValidateUser(user); err != nil {
		return model.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	if user.ID == 0 {
		if r.capacity > 0 && len(r.users) >= r.capacity {
			return model.User{}, model.ErrCapacityExceeded
		}
		user.ID = r.nextID
		r.nextID++
		user.CreatedAt = now
		r.order = append(r.order, user.ID)
	} else {
		stored, ok := r.users[user.ID]
		if !ok {
			// Deleted or never-issued IDs are not resurrected.
			return model.User{}, model.ErrNotFound
		}
		user.CreatedAt = stored.CreatedAt
	}

	user.UpdatedAt = now
	r.users[user.ID] = user

	return user, nil
}

// GetByID returns a snapshot of the user with the given ID, or
// model.ErrNotFound. It never mutates the store.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	return user, nil
}

// Delete removes the user with the given ID and reports whether a
// removal happened. The identifier is never reissued afterwards.
func (r *UserRepository) Delete(ctx context.Context, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false
	}

	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return true
}

// Count returns the number of stored users.
func (r *UserRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

// List returns all stored users in insertion order.
func (r *UserRepository) List(ctx context.Context) []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(model.User) bool { return true })
}

// GetActive returns the stored users with active status, in insertion
// order.
func (r *UserRepository) GetActive(ctx context.Context) []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(model.User.IsActive)
}

// collect copies users matching the predicate in insertion order.
// Callers must hold at least a read lock.
func (r *UserRepository) collect(match func(model.User) bool) []model.User {
	result := make([]model.User, 0, len(r.order))
	for _, id := range r.order {
		if user := r.users[id]; match(user) {
			result = append(result, user)
		}
	}
	return result
}
