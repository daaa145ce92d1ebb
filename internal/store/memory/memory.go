// Package memory provides an in-memory store implementation for testing and local development.
package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"USERTODO_BACK-END/internal/models"
	"USERTODO_BACK-END/internal/store"
)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("memory store is closed")

var _ store.Store = (*Store)(nil)

// Store is an in-memory implementation of store.Store. It mirrors the relational rules of the
// SQL schema: todos must reference an existing user and are removed with their owner.
type Store struct {
	mu sync.RWMutex

	users  map[int64]models.User
	todos  map[int64]models.Todo
	nextID struct{ user, todo int64 }

	now    func() time.Time
	closed bool
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		users: make(map[int64]models.User),
		todos: make(map[int64]models.Todo),
		now:   time.Now,
	}
}

// Close marks the store as closed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Ping checks if the store is available.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return ctx.Err()
}

// Migrate is a no-op for the memory store.
func (s *Store) Migrate(ctx context.Context) error {
	return nil
}

// CreateUser stores a new user with a generated id.
func (s *Store) CreateUser(ctx context.Context, in store.NewUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.User{}, ErrClosed
	}

	s.nextID.user++
	now := s.now().UTC()
	u := models.User{
		ID:        s.nextID.user,
		Name:      in.Name,
		Email:     in.Email,
		Age:       in.Age,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[u.ID] = u
	return u, nil
}

// ListUsers returns all users ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b models.User) int { return compareID(a.ID, b.ID) })
	return out, nil
}

// GetUser returns a user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return models.User{}, ErrClosed
	}

	u, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

// UpdateUser replaces name and email.
func (s *Store) UpdateUser(ctx context.Context, id int64, in store.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.User{}, ErrClosed
	}

	u, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	u.Name = in.Name
	u.Email = in.Email
	u.UpdatedAt = s.now().UTC()
	s.users[id] = u
	return u, nil
}

// DeleteUser removes a user and cascades to its todos.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	for tid, t := range s.todos {
		if t.UserID != nil && *t.UserID == id {
			delete(s.todos, tid)
		}
	}
	return nil
}

// CreateTodo stores a todo after checking its owner exists.
func (s *Store) CreateTodo(ctx context.Context, in store.NewTodo) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.Todo{}, ErrClosed
	}

	if in.Title == "" {
		return models.Todo{}, fmt.Errorf("%w: title", store.ErrMissingField)
	}
	if _, ok := s.users[in.UserID]; !ok {
		return models.Todo{}, fmt.Errorf("%w: user %d", store.ErrInvalidReference, in.UserID)
	}

	s.nextID.todo++
	now := s.now().UTC()
	userID := in.UserID
	t := models.Todo{
		ID:          s.nextID.todo,
		UserID:      &userID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     truncateDate(in.DueDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.todos[t.ID] = t
	return t, nil
}

// ListTodos returns all todos ordered by id.
func (s *Store) ListTodos(ctx context.Context) ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	out := make([]models.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b models.Todo) int { return compareID(a.ID, b.ID) })
	return out, nil
}

func compareID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// truncateDate drops the clock part, matching a DATE column.
func truncateDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
