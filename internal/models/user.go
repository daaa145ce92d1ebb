package models

import "time"

// User represents a row of the users table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Age       *int      `json:"age" db:"age"`
	Phone     *string   `json:"phone" db:"phone"`
	Address   *string   `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
