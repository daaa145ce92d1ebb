// Package store defines the persistence contract for users and todos.
package store

import (
	"context"
	"errors"
	"time"

	"USERTODO_BACK-END/internal/models"
)

// Sentinel errors returned by every Store implementation. Implementations may wrap them
// with extra context; callers should match with errors.Is.
var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidReference is returned when a foreign key points at a missing row.
	ErrInvalidReference = errors.New("referenced record does not exist")
	// ErrMissingField is returned when a NOT NULL column receives no value.
	ErrMissingField = errors.New("required field is missing")
	// ErrInvalidInput is returned when a value cannot be stored as given
	// (wrong representation, too long, out of range).
	ErrInvalidInput = errors.New("invalid input")
)

// NewUser holds the columns accepted when inserting a user.
type NewUser struct {
	Name    string
	Email   string
	Age     *int
	Phone   *string
	Address *string
}

// UserUpdate holds the columns a user update may change.
type UserUpdate struct {
	Name  string
	Email string
}

// NewTodo holds the columns accepted when inserting a todo.
type NewTodo struct {
	UserID      int64
	Title       string
	Description *string
	DueDate     *time.Time
}

// UserStore persists users.
type UserStore interface {
	CreateUser(ctx context.Context, in NewUser) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, in UserUpdate) (models.User, error)
	// DeleteUser removes the user and, through the cascade rule, every todo it owns.
	DeleteUser(ctx context.Context, id int64) error
}

// TodoStore persists todos.
type TodoStore interface {
	CreateTodo(ctx context.Context, in NewTodo) (models.Todo, error)
	ListTodos(ctx context.Context) ([]models.Todo, error)
}

// Pinger reports storage reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is the full storage handle injected into the HTTP layer.
type Store interface {
	UserStore
	TodoStore
	Pinger

	// Migrate idempotently creates the schema.
	Migrate(ctx context.Context) error
	Close() error
}

// IsClientError reports whether err was caused by the values supplied by the caller
// rather than by the storage backend itself.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidInput)
}
