package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Username    string    `json:"username" db:"username" example:"priya.counselor"`
	Email       string    `json:"email" db:"email" example:"priya@institute.example"`
	Password    string    `json:"-" db:"password"`
	FirstName   string    `json:"first_name" db:"first_name" example:"Priya"`
	LastName    string    `json:"last_name" db:"last_name" example:"Sharma"`
	Role        RoleType  `json:"role" db:"role" example:"COUNSELOR"`
	Phone       *string   `json:"phone,omitempty" db:"phone" example:"9876543210"`
	IsSuperuser bool      `json:"is_superuser" db:"is_superuser"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
