// Package postgres implements store.Store on top of a pgx connection pool.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"USERTODO_BACK-END/internal/config"
	"USERTODO_BACK-END/internal/models"
	"USERTODO_BACK-END/internal/store"
)

const applicationName = "usertodo-backend"

var _ store.Store = (*Store)(nil)

// Store is a PostgreSQL backed store.Store.
type Store struct {
	pool *pgxpool.Pool
}

// New opens a pool for dsn and verifies connectivity. Pool sizing fields left at zero keep
// the pgxpool defaults.
func New(ctx context.Context, dsn string, cfg config.DatabaseConfig) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx := ctx
	if cfg.ConnTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnTimeout)
		defer cancel()
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Store{pool: pool}, nil
}

// NewWithPool wraps an existing pool. The Store takes ownership and closes it on Close.
func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate creates the users and todos tables when absent.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases every pooled connection.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// CreateUser inserts a user and returns the stored row.
func (s *Store) CreateUser(ctx context.Context, in store.NewUser) (models.User, error) {
	rows, err := s.pool.Query(ctx, insertUser, in.Name, in.Email, in.Age, in.Phone, in.Address)
	if err != nil {
		return models.User{}, translate(err)
	}
	u, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	return u, translate(err)
}

// ListUsers returns every user ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.pool.Query(ctx, selectUsers)
	if err != nil {
		return nil, translate(err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// GetUser returns the user with the given id or store.ErrNotFound.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	rows, err := s.pool.Query(ctx, selectUserByID, id)
	if err != nil {
		return models.User{}, translate(err)
	}
	u, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	return u, translate(err)
}

// UpdateUser sets name and email and returns the updated row or store.ErrNotFound.
func (s *Store) UpdateUser(ctx context.Context, id int64, in store.UserUpdate) (models.User, error) {
	rows, err := s.pool.Query(ctx, updateUser, in.Name, in.Email, id)
	if err != nil {
		return models.User{}, translate(err)
	}
	u, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	return u, translate(err)
}

// DeleteUser removes a user; owned todos go with it via ON DELETE CASCADE.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, deleteUser, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// CreateTodo inserts a todo owned by in.UserID.
func (s *Store) CreateTodo(ctx context.Context, in store.NewTodo) (models.Todo, error) {
	rows, err := s.pool.Query(ctx, insertTodo, in.UserID, in.Title, in.Description, in.DueDate)
	if err != nil {
		return models.Todo{}, translate(err)
	}
	t, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Todo])
	return t, translate(err)
}

// ListTodos returns every todo ordered by id.
func (s *Store) ListTodos(ctx context.Context) ([]models.Todo, error) {
	rows, err := s.pool.Query(ctx, selectTodos)
	if err != nil {
		return nil, translate(err)
	}
	todos, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Todo])
	if err != nil {
		return nil, translate(err)
	}
	return todos, nil
}
