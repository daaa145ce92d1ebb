package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"USERTODO_BACK-END/internal/store"
)

func TestStore_UserLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()

	ada, err := s.CreateUser(ctx, store.NewUser{Name: "Ada", Email: "ada@x.com"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if ada.ID != 1 {
		t.Errorf("first id = %d, want 1", ada.ID)
	}
	if ada.CreatedAt.IsZero() || !ada.CreatedAt.Equal(ada.UpdatedAt) {
		t.Errorf("timestamps not set: %+v", ada)
	}

	got, err := s.GetUser(ctx, ada.ID)
	if err != nil || got.Name != "Ada" {
		t.Fatalf("GetUser = %+v, %v", got, err)
	}

	upd, err := s.UpdateUser(ctx, ada.ID, store.UserUpdate{Name: "Ada L", Email: "ada@l.org"})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if upd.Name != "Ada L" || upd.Email != "ada@l.org" {
		t.Errorf("UpdateUser result = %+v", upd)
	}
	if !upd.CreatedAt.Equal(ada.CreatedAt) {
		t.Error("UpdateUser changed created_at")
	}

	if err := s.DeleteUser(ctx, ada.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := s.GetUser(ctx, ada.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetUser after delete = %v, want ErrNotFound", err)
	}
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.GetUser(ctx, 42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetUser = %v", err)
	}
	if _, err := s.UpdateUser(ctx, 42, store.UserUpdate{Name: "a", Email: "b"}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("UpdateUser = %v", err)
	}
	if err := s.DeleteUser(ctx, 42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("DeleteUser = %v", err)
	}
}

func TestStore_Todos(t *testing.T) {
	ctx := context.Background()
	s := New()

	tests := []struct {
		name    string
		in      func(owner int64) store.NewTodo
		wantErr error
	}{
		{"valid", func(owner int64) store.NewTodo { return store.NewTodo{UserID: owner, Title: "write"} }, nil},
		{"unknown owner", func(int64) store.NewTodo { return store.NewTodo{UserID: 999, Title: "orphan"} }, store.ErrInvalidReference},
		{"missing title", func(owner int64) store.NewTodo { return store.NewTodo{UserID: owner} }, store.ErrMissingField},
	}

	owner, _ := s.CreateUser(ctx, store.NewUser{Name: "Grace", Email: "grace@x.com"})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo, err := s.CreateTodo(ctx, tt.in(owner.ID))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateTodo error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateTodo: %v", err)
			}
			if todo.Completed {
				t.Error("completed should default to false")
			}
			if todo.UserID == nil || *todo.UserID != owner.ID {
				t.Errorf("UserID = %v, want %d", todo.UserID, owner.ID)
			}
		})
	}
}

func TestStore_DeleteCascadesTodos(t *testing.T) {
	ctx := context.Background()
	s := New()

	a, _ := s.CreateUser(ctx, store.NewUser{Name: "A", Email: "a@x.com"})
	b, _ := s.CreateUser(ctx, store.NewUser{Name: "B", Email: "b@x.com"})
	_, _ = s.CreateTodo(ctx, store.NewTodo{UserID: a.ID, Title: "a1"})
	_, _ = s.CreateTodo(ctx, store.NewTodo{UserID: a.ID, Title: "a2"})
	kept, _ := s.CreateTodo(ctx, store.NewTodo{UserID: b.ID, Title: "b1"})

	if err := s.DeleteUser(ctx, a.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	todos, err := s.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != kept.ID {
		t.Fatalf("ListTodos after cascade = %+v", todos)
	}

	users, _ := s.ListUsers(ctx)
	if len(users) != 1 || users[0].ID != b.ID {
		t.Fatalf("ListUsers after delete = %+v", users)
	}
}

func TestStore_DueDateTruncated(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner, _ := s.CreateUser(ctx, store.NewUser{Name: "A", Email: "a@x.com"})

	due := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)
	todo, err := s.CreateTodo(ctx, store.NewTodo{UserID: owner.ID, Title: "t", DueDate: &due})
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}
	if todo.DueDate == nil || todo.DueDate.Hour() != 0 || todo.DueDate.Day() != 19 {
		t.Fatalf("DueDate = %v", todo.DueDate)
	}
}

func TestStore_ListEmpty(t *testing.T) {
	s := New()
	users, err := s.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("ListUsers on empty store = %#v, want empty non-nil slice", users)
	}
}

func TestStore_Closed(t *testing.T) {
	ctx := context.Background()
	s := New()
	_ = s.Close()

	if err := s.Ping(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("Ping = %v", err)
	}
	if _, err := s.ListTodos(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("ListTodos = %v", err)
	}
}

func TestStore_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := New()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.CreateUser(ctx, store.NewUser{Name: "u", Email: "u@x.com"})
		}()
	}
	wg.Wait()

	users, _ := s.ListUsers(ctx)
	if len(users) != n {
		t.Fatalf("got %d users, want %d", len(users), n)
	}
	seen := make(map[int64]bool, n)
	for _, u := range users {
		if seen[u.ID] {
			t.Fatalf("duplicate id %d", u.ID)
		}
		seen[u.ID] = true
	}
}
