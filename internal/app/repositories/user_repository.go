package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/dberrors"
	"github.com/sandesh/institutecrm/internal/pkg/logger"
)

// UserFilter narrows user list queries.
type UserFilter struct {
	Role string
}

// UserRepository handles database operations for staff accounts
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const userColumns = "id, username, email, password, first_name, last_name, role, phone, is_superuser, is_active, created_at"

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.Phone,
		&u.IsSuperuser,
		&u.IsActive,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user into the database
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (
			username, email, password, first_name, last_name, role, phone, is_superuser, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Password,
		user.FirstName,
		user.LastName,
		user.Role,
		user.Phone,
		user.IsSuperuser,
		user.IsActive,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return 0, apperrors.ErrUsernameAlreadyUsed
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

// GetByID retrieves a user by its ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByUsername retrieves a user by username, used by login
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by username: %w", err)
	}
	return user, nil
}

// List retrieves users matching the filter, newest first
func (r *UserRepository) List(ctx context.Context, filter UserFilter) ([]models.User, error) {
	builder := r.sb.Select(userColumns).From("users").OrderBy("id DESC")
	if filter.Role != "" {
		builder = builder.Where(squirrel.Eq{"role": filter.Role})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// Update rewrites all mutable columns of a user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, password = $2, first_name = $3, last_name = $4,
		    role = $5, phone = $6, is_superuser = $7, is_active = $8
		WHERE id = $9
	`

	tag, err := r.db.Exec(ctx, query,
		user.Email,
		user.Password,
		user.FirstName,
		user.LastName,
		user.Role,
		user.Phone,
		user.IsSuperuser,
		user.IsActive,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
