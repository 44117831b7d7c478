package services

import (
	"context"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/policy"
	"github.com/sandesh/institutecrm/internal/app/repositories"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/auth"
)

// userStore is the data access surface the user service needs.
type userStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, filter repositories.UserFilter) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// UserService handles staff account management. Every authenticated user
// may list accounts (for lead assignment and trainer pickers); writes
// are reserved for superusers.
type UserService struct {
	userRepo userStore
}

// NewUserService creates a new UserService
func NewUserService(userRepo userStore) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns staff accounts, optionally filtered by role
func (s *UserService) List(ctx context.Context, sub policy.Subject, req dto.UserFilterRequest) ([]models.User, error) {
	if _, ok := policy.OwnerFilter(sub, policy.ResourceUser, policy.ActionList); !ok {
		return []models.User{}, nil
	}
	return s.userRepo.List(ctx, repositories.UserFilter{Role: req.Role})
}

// Get returns one staff account
func (s *UserService) Get(ctx context.Context, sub policy.Subject, id int64) (*models.User, error) {
	if _, ok := policy.OwnerFilter(sub, policy.ResourceUser, policy.ActionRead); !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return s.userRepo.GetByID(ctx, id)
}

// Me returns the authenticated subject's own account
func (s *UserService) Me(ctx context.Context, sub policy.Subject) (*models.User, error) {
	return s.userRepo.GetByID(ctx, sub.ID)
}

// Create provisions a staff account. Superuser only.
func (s *UserService) Create(ctx context.Context, sub policy.Subject, req dto.CreateUserRequest) (*models.User, error) {
	if !sub.IsSuperuser {
		return nil, apperrors.NewForbiddenError("only superusers may manage accounts")
	}

	role := models.RoleType(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		Phone:     req.Phone,
		IsActive:  true,
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update to a staff account. Superuser only.
func (s *UserService) Update(ctx context.Context, sub policy.Subject, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	if !sub.IsSuperuser {
		return nil, apperrors.NewForbiddenError("only superusers may manage accounts")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		role := models.RoleType(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "unknown role")
		}
		user.Role = role
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a staff account. Superuser only; self-deletion is
// rejected so the last admin cannot lock everyone out by accident.
func (s *UserService) Delete(ctx context.Context, sub policy.Subject, id int64) error {
	if !sub.IsSuperuser {
		return apperrors.NewForbiddenError("only superusers may manage accounts")
	}
	if id == sub.ID {
		return apperrors.NewValidationError("id", "cannot delete your own account")
	}
	return s.userRepo.Delete(ctx, id)
}
