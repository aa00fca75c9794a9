package model

// User is a staff account that can sign in to the dashboard.
type User struct {
	ID       string   `json:"id"`
	GymID    string   `json:"gym_id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Phone    *string  `json:"phone"`
	Role     UserRole `json:"role"`
	IsActive bool     `json:"is_active"`
}

// CreateUserRequest adds a staff account to the current gym.
type CreateUserRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Phone    *string  `json:"phone,omitempty"`
	Role     UserRole `json:"role"`
}

// ChangePasswordRequest rotates the calling user's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
