package dto

// CreateTodoRequest represents the payload to create a todo
type CreateTodoRequest struct {
	UserID      int64   `json:"user_id" validate:"required,gt=0,lte=2147483647"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"` // YYYY-MM-DD
}

// TodoResponse represents a todo object in responses
type TodoResponse struct {
	ID          int64   `json:"id"`
	UserID      *int64  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
