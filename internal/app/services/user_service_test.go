package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/policy"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/auth"
)

func newUserServiceForTest() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	return NewUserService(store), store
}

func TestUserCreateSuperuserOnly(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	req := dto.CreateUserRequest{
		Username: "trainer2",
		Password: "hunter2hunter2",
		Role:     "TRAINER",
	}

	// A non-superuser manager is still refused.
	_, err := svc.Create(ctx, managerSub, req)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	user, err := svc.Create(ctx, adminSub, req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTrainer, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "hunter2hunter2", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "hunter2hunter2"))
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	req := dto.CreateUserRequest{Username: "counselor1", Password: "password123", Role: "COUNSELOR"}
	_, err := svc.Create(ctx, adminSub, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, adminSub, req)
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyUsed)
}

func TestUserCreateRejectsUnknownRole(t *testing.T) {
	svc, _ := newUserServiceForTest()

	_, err := svc.Create(context.Background(), adminSub, dto.CreateUserRequest{
		Username: "x", Password: "password123", Role: "INTERN",
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestUserListFiltersByRole(t *testing.T) {
	svc, store := newUserServiceForTest()
	ctx := context.Background()

	store.add(models.User{Username: "c1", Role: models.RoleCounselor})
	store.add(models.User{Username: "t1", Role: models.RoleTrainer})
	store.add(models.User{Username: "t2", Role: models.RoleTrainer})

	// Every authenticated role may list users.
	trainers, err := svc.List(ctx, counselorSub, dto.UserFilterRequest{Role: "TRAINER"})
	require.NoError(t, err)
	assert.Len(t, trainers, 2)

	all, err := svc.List(ctx, trainerSub, dto.UserFilterRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUserMe(t *testing.T) {
	svc, store := newUserServiceForTest()
	me := store.add(models.User{Username: "counselor1", Role: models.RoleCounselor})

	got, err := svc.Me(context.Background(), policy.Subject{ID: me.ID, Role: me.Role})
	require.NoError(t, err)
	assert.Equal(t, "counselor1", got.Username)
}

func TestUserUpdateSuperuserOnly(t *testing.T) {
	svc, store := newUserServiceForTest()
	ctx := context.Background()
	target := store.add(models.User{Username: "trainer1", Role: models.RoleTrainer, IsActive: true})

	_, err := svc.Update(ctx, managerSub, target.ID, dto.UpdateUserRequest{IsActive: boolPtr(false)})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	updated, err := svc.Update(ctx, adminSub, target.ID, dto.UpdateUserRequest{
		IsActive: boolPtr(false),
		Role:     strPtr("HR_ADMIN"),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, models.RoleHRAdmin, updated.Role)
}

func TestUserDeleteRejectsSelf(t *testing.T) {
	svc, store := newUserServiceForTest()
	ctx := context.Background()
	store.add(models.User{Username: "admin", Role: models.RoleManager, IsSuperuser: true})
	target := store.add(models.User{Username: "trainer1", Role: models.RoleTrainer})

	err := svc.Delete(ctx, adminSub, adminSub.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	err = svc.Delete(ctx, managerSub, target.ID)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	require.NoError(t, svc.Delete(ctx, adminSub, target.ID))
	assert.Len(t, store.users, 1)
}
