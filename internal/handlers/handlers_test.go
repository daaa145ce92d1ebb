package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"USERTODO_BACK-END/internal/config"
	"USERTODO_BACK-END/internal/dto"
	"USERTODO_BACK-END/internal/models"
	"USERTODO_BACK-END/internal/store"
)

// failingStore returns err from every operation.
type failingStore struct {
	err error
}

func (f failingStore) CreateUser(context.Context, store.NewUser) (models.User, error) {
	return models.User{}, f.err
}
func (f failingStore) ListUsers(context.Context) ([]models.User, error) { return nil, f.err }
func (f failingStore) GetUser(context.Context, int64) (models.User, error) {
	return models.User{}, f.err
}
func (f failingStore) UpdateUser(context.Context, int64, store.UserUpdate) (models.User, error) {
	return models.User{}, f.err
}
func (f failingStore) DeleteUser(context.Context, int64) error { return f.err }
func (f failingStore) CreateTodo(context.Context, store.NewTodo) (models.Todo, error) {
	return models.Todo{}, f.err
}
func (f failingStore) ListTodos(context.Context) ([]models.Todo, error) { return nil, f.err }
func (f failingStore) Ping(context.Context) error                      { return f.err }

func serve(h http.HandlerFunc, method, pattern, path, body string) (*httptest.ResponseRecorder, dto.Response) {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestStorageFailureIsSanitized(t *testing.T) {
	dbErr := errors.New("dial tcp 10.0.0.5:5432: connection refused")

	tests := []struct {
		name        string
		expose      bool
		wantDetails bool
	}{
		{"production hides details", false, false},
		{"debug exposes details", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUsersHandler(failingStore{err: dbErr}, &config.ServerConfig{ExposeErrorDetails: tt.expose})
			w, resp := serve(h.List, http.MethodGet, "/users", "/users", "")

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", w.Code)
			}
			if resp.Success || resp.Message != "Internal server error" {
				t.Errorf("unexpected envelope: %+v", resp)
			}
			leaked := strings.Contains(w.Body.String(), "connection refused")
			if leaked != tt.wantDetails {
				t.Errorf("details leaked = %v, want %v", leaked, tt.wantDetails)
			}
		})
	}
}

func TestStoreErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"missing field", fmt.Errorf("%w: name", store.ErrMissingField), http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: value too long", store.ErrInvalidInput), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUsersHandler(failingStore{err: tt.err}, &config.ServerConfig{})
			w, _ := serve(h.Update, http.MethodPut, "/users/{id}", "/users/7", `{"name":"a","email":"a@x.com"}`)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestTodoCreateInvalidReference(t *testing.T) {
	h := NewTodosHandler(failingStore{err: fmt.Errorf("%w: todos_user_id_fkey", store.ErrInvalidReference)}, &config.ServerConfig{})
	w, resp := serve(h.Create, http.MethodPost, "/todos", "/todos", `{"user_id":5,"title":"t"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp.Message != "user_id does not reference an existing user" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"2147483647", 2147483647, false},
		{"2147483648", 0, true},
		{"0", 0, true},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/users/"+tt.raw, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", tt.raw)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

		got, err := pathID(r)
		if (err != nil) != tt.wantErr {
			t.Errorf("pathID(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("pathID(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestReadinessDegraded(t *testing.T) {
	h := NewProbeHandler(failingStore{err: errors.New("pool closed")})
	w := httptest.NewRecorder()
	h.Ready(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"degraded"`) {
		t.Errorf("body = %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "pool closed") {
		t.Error("readiness leaked the driver error")
	}
}

func TestNotFoundEchoesPath(t *testing.T) {
	w := httptest.NewRecorder()
	NotFound(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	want := `{"success":false,"message":"Route not found","path":"/nope"}`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}
