package dto

// CreateUserRequest provisions a staff account. Superuser only.
type CreateUserRequest struct {
	Username  string  `json:"username" binding:"required,max=150"`
	Email     string  `json:"email" binding:"omitempty,email,max=254"`
	Password  string  `json:"password" binding:"required,min=8,max=64"`
	FirstName string  `json:"first_name" binding:"omitempty,max=150"`
	LastName  string  `json:"last_name" binding:"omitempty,max=150"`
	Role      string  `json:"role" binding:"required,oneof=COUNSELOR HR_ADMIN TRAINER PLACEMENT_OFFICER MANAGER"`
	Phone     *string `json:"phone" binding:"omitempty,max=15"`
}

// UpdateUserRequest carries a partial user update. Superuser only.
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=64"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Role      *string `json:"role" binding:"omitempty,oneof=COUNSELOR HR_ADMIN TRAINER PLACEMENT_OFFICER MANAGER"`
	Phone     *string `json:"phone" binding:"omitempty,max=15"`
	IsActive  *bool   `json:"is_active"`
}

// UserFilterRequest captures supported list filters.
type UserFilterRequest struct {
	Role string `form:"role" binding:"omitempty,oneof=COUNSELOR HR_ADMIN TRAINER PLACEMENT_OFFICER MANAGER"`
}
