package dto

// CreateUserRequest represents the request payload for creating a user
type CreateUserRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email,max=150"`
	Age     *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=15"`
	Address *string `json:"address,omitempty"`
}

// UpdateUserRequest represents the fields a user update may change
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=150"`
}

// UserResponse represents user data in API responses
type UserResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Age       *int    `json:"age"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
