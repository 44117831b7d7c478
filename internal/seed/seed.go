package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/sandesh/institutecrm/internal/app/models"
	appRepos "github.com/sandesh/institutecrm/internal/app/repositories"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/auth"
)

type defaultAccount struct {
	username  string
	password  string
	firstName string
	lastName  string
	role      appModels.RoleType
	superuser bool
}

// Default accounts created on first boot. Passwords are placeholders
// meant to be rotated immediately in any real deployment.
var defaultAccounts = []defaultAccount{
	{username: "admin", password: "admin@12345", firstName: "Admin", lastName: "User", role: appModels.RoleManager, superuser: true},
	{username: "counselor1", password: "counselor@123", firstName: "Priya", lastName: "Sharma", role: appModels.RoleCounselor},
	{username: "hradmin1", password: "hradmin@123", firstName: "Rahul", lastName: "Verma", role: appModels.RoleHRAdmin},
	{username: "trainer1", password: "trainer@123", firstName: "Sneha", lastName: "Kulkarni", role: appModels.RoleTrainer},
	{username: "placement1", password: "placement@123", firstName: "Amit", lastName: "Joshi", role: appModels.RolePlacementOfficer},
	{username: "manager1", password: "manager@123", firstName: "Kavita", lastName: "Rao", role: appModels.RoleManager},
}

// CreateDefaultData creates the default superuser and one account per
// role if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default staff accounts...")
	var finalErr error

	for _, account := range defaultAccounts {
		if _, err := userRepo.GetByUsername(ctx, account.username); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrUserNotFound) {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		hashed, err := auth.HashPassword(account.password)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &appModels.User{
			Username:    account.username,
			Email:       account.username + "@institute.example",
			Password:    hashed,
			FirstName:   account.firstName,
			LastName:    account.lastName,
			Role:        account.role,
			IsSuperuser: account.superuser,
			IsActive:    true,
		}

		if _, err := userRepo.Create(ctx, user); err != nil && !errors.Is(err, apperrors.ErrUsernameAlreadyUsed) {
			lgr.Error().Err(err).Str("username", account.username).Msg("Error creating default account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("username", account.username).Str("role", string(account.role)).Msg("Default account created")
	}

	return finalErr
}
