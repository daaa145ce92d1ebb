package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"USERTODO_BACK-END/internal/config"
	"USERTODO_BACK-END/internal/dto"
	"USERTODO_BACK-END/internal/models"
	"USERTODO_BACK-END/internal/store"
	"USERTODO_BACK-END/internal/utils"
)

// TodosHandler handles /todos endpoints
type TodosHandler struct {
	store  store.TodoStore
	errors errorWriter
}

// NewTodosHandler creates a new TodosHandler
func NewTodosHandler(s store.TodoStore, cfg *config.ServerConfig) *TodosHandler {
	return &TodosHandler{store: s, errors: errorWriter{exposeDetails: cfg.ExposeErrorDetails}}
}

// Create handles POST /todos
// @Summary Create a todo for an existing user
// @Tags todos
// @Accept json
// @Produce json
// @Param payload body dto.CreateTodoRequest true "Todo payload"
// @Success 201 {object} dto.Response{data=dto.TodoResponse}
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /todos [post]
func (h *TodosHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}
	req.Title = strings.TrimSpace(req.Title)

	if err := utils.ValidateStruct(req); err != nil {
		validationError(w, err)
		return
	}

	in := store.NewTodo{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != nil {
		due, err := utils.ParseDate(*req.DueDate)
		if err != nil {
			validationError(w, utils.FieldErrors{"due_date": "must be a date in YYYY-MM-DD format"})
			return
		}
		in.DueDate = &due
	}

	todo, err := h.store.CreateTodo(r.Context(), in)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "user_id does not reference an existing user", nil)
			return
		}
		h.errors.storeError(w, r, err, "Todo not found")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusCreated, "Todo created", toTodoResponse(todo))
}

// List handles GET /todos
// @Summary List todos
// @Description Returns every todo; order is not guaranteed
// @Tags todos
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.TodoResponse}
// @Failure 500 {object} dto.Response
// @Router /todos [get]
func (h *TodosHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.store.ListTodos(r.Context())
	if err != nil {
		h.errors.storeError(w, r, err, "Todo not found")
		return
	}

	items := make([]dto.TodoResponse, 0, len(todos))
	for _, t := range todos {
		items = append(items, toTodoResponse(t))
	}
	utils.WriteSuccessResponse(w, http.StatusOK, "Todos get successfully", items)
}

func toTodoResponse(t models.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		DueDate:     formatOptionalDate(t.DueDate),
		CreatedAt:   utils.FormatTimestamp(t.CreatedAt),
		UpdatedAt:   utils.FormatTimestamp(t.UpdatedAt),
	}
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := utils.FormatDate(*t)
	return &s
}
