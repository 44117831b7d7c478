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
)

var (
	counselorSub = policy.Subject{ID: 10, Role: models.RoleCounselor}
	hrAdminSub   = policy.Subject{ID: 20, Role: models.RoleHRAdmin}
	trainerSub   = policy.Subject{ID: 30, Role: models.RoleTrainer}
	officerSub   = policy.Subject{ID: 40, Role: models.RolePlacementOfficer}
	managerSub   = policy.Subject{ID: 50, Role: models.RoleManager}
	adminSub     = policy.Subject{ID: 1, Role: models.RoleManager, IsSuperuser: true}
)

func newInquiryServiceForTest() (*InquiryService, *fakeInquiryStore) {
	store := newFakeInquiryStore()
	return NewInquiryService(store), store
}

func TestInquiryCreateDefaultsOwnerToSubject(t *testing.T) {
	svc, _ := newInquiryServiceForTest()

	inq, err := svc.Create(context.Background(), counselorSub, dto.CreateInquiryRequest{
		Name:   "Asha Patil",
		Mobile: "9876500001",
	})
	require.NoError(t, err)
	require.NotNil(t, inq.CreatedByID)
	assert.Equal(t, counselorSub.ID, *inq.CreatedByID)
}

func TestInquiryCreateHonorsExplicitAssignment(t *testing.T) {
	svc, _ := newInquiryServiceForTest()

	inq, err := svc.Create(context.Background(), hrAdminSub, dto.CreateInquiryRequest{
		Name:      "Ravi Kumar",
		Mobile:    "9876500002",
		CreatedBy: int64Ptr(10),
	})
	require.NoError(t, err)
	require.NotNil(t, inq.CreatedByID)
	assert.Equal(t, int64(10), *inq.CreatedByID)
}

func TestInquiryCreateForbiddenForTrainer(t *testing.T) {
	svc, _ := newInquiryServiceForTest()

	_, err := svc.Create(context.Background(), trainerSub, dto.CreateInquiryRequest{
		Name:   "Nobody",
		Mobile: "9876500003",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestInquiryCreateDuplicateMobile(t *testing.T) {
	svc, _ := newInquiryServiceForTest()
	ctx := context.Background()

	_, err := svc.Create(ctx, counselorSub, dto.CreateInquiryRequest{Name: "A", Mobile: "9876500004"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, counselorSub, dto.CreateInquiryRequest{Name: "B", Mobile: "9876500004"})
	assert.ErrorIs(t, err, apperrors.ErrMobileAlreadyExists)
}

func TestInquiryListScopedToCounselor(t *testing.T) {
	svc, _ := newInquiryServiceForTest()
	ctx := context.Background()

	_, err := svc.Create(ctx, counselorSub, dto.CreateInquiryRequest{Name: "Mine", Mobile: "9876500005"})
	require.NoError(t, err)
	otherCounselor := policy.Subject{ID: 11, Role: models.RoleCounselor}
	_, err = svc.Create(ctx, otherCounselor, dto.CreateInquiryRequest{Name: "Theirs", Mobile: "9876500006"})
	require.NoError(t, err)

	mine, err := svc.List(ctx, counselorSub, dto.InquiryFilterRequest{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)

	all, err := svc.List(ctx, managerSub, dto.InquiryFilterRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInquiryListEmptyForUngrantedRole(t *testing.T) {
	svc, _ := newInquiryServiceForTest()
	ctx := context.Background()

	_, err := svc.Create(ctx, counselorSub, dto.CreateInquiryRequest{Name: "Hidden", Mobile: "9876500007"})
	require.NoError(t, err)

	list, err := svc.List(ctx, officerSub, dto.InquiryFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInquiryGetOutOfScopeIsNotFound(t *testing.T) {
	svc, _ := newInquiryServiceForTest()
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateInquiryRequest{Name: "Lead", Mobile: "9876500008"})
	require.NoError(t, err)

	other := policy.Subject{ID: 11, Role: models.RoleCounselor}
	_, err = svc.Get(ctx, other, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrInquiryNotFound)

	got, err := svc.Get(ctx, hrAdminSub, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestInquiryUpdatePartial(t *testing.T) {
	svc, _ := newInquiryServiceForTest()
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateInquiryRequest{
		Name:   "Asha Patil",
		Mobile: "9876500009",
		Source: "walk-in",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, counselorSub, created.ID, dto.UpdateInquiryRequest{
		InterestedCourse: strPtr("Java Full Stack"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Java Full Stack", updated.InterestedCourse)
	assert.Equal(t, "Asha Patil", updated.Name)
	assert.Equal(t, "walk-in", updated.Source)
}

func TestInquiryDeleteOutOfScope(t *testing.T) {
	svc, store := newInquiryServiceForTest()
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateInquiryRequest{Name: "Lead", Mobile: "9876500010"})
	require.NoError(t, err)

	other := policy.Subject{ID: 11, Role: models.RoleCounselor}
	err = svc.Delete(ctx, other, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrInquiryNotFound)
	assert.Len(t, store.inquiries, 1)

	require.NoError(t, svc.Delete(ctx, counselorSub, created.ID))
	assert.Empty(t, store.inquiries)
}

func TestInquiryAddFollowUpStampsSubject(t *testing.T) {
	svc, store := newInquiryServiceForTest()
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateInquiryRequest{Name: "Lead", Mobile: "9876500011"})
	require.NoError(t, err)

	fu, err := svc.AddFollowUp(ctx, counselorSub, created.ID, dto.AddFollowUpRequest{Note: "called, asked to ring back Monday"})
	require.NoError(t, err)
	require.NotNil(t, fu.CreatedByID)
	assert.Equal(t, counselorSub.ID, *fu.CreatedByID)
	assert.Len(t, store.followUps, 1)
}

func TestInquiryAddFollowUpOutOfScope(t *testing.T) {
	svc, _ := newInquiryServiceForTest()
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateInquiryRequest{Name: "Lead", Mobile: "9876500012"})
	require.NoError(t, err)

	other := policy.Subject{ID: 11, Role: models.RoleCounselor}
	_, err = svc.AddFollowUp(ctx, other, created.ID, dto.AddFollowUpRequest{Note: "should not land"})
	assert.ErrorIs(t, err, apperrors.ErrInquiryNotFound)
}

func TestInquirySuperuserBypassesScope(t *testing.T) {
	svc, _ := newInquiryServiceForTest()
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateInquiryRequest{Name: "Lead", Mobile: "9876500013"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, adminSub, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
