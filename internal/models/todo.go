package models

import "time"

// Todo represents a row of the todos table. UserID is nil only for rows whose
// owner reference was cleared outside this service.
type Todo struct {
	ID          int64      `json:"id" db:"id"`
	UserID      *int64     `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Completed   bool       `json:"completed" db:"completed"`
	DueDate     *time.Time `json:"due_date" db:"due_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
