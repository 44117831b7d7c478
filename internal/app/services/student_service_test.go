package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
)

func newStudentServiceForTest() (*StudentService, *fakeStudentStore, *fakeInquiryStore, *fakeFeeStore) {
	students := newFakeStudentStore()
	inquiries := newFakeInquiryStore()
	fees := newFakeFeeStore()
	svc := NewStudentService(students, inquiries, fees)
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 14, 45, 0, 0, time.UTC) }
	return svc, students, inquiries, fees
}

func seedInquiry(t *testing.T, store *fakeInquiryStore, mobile, email string) int64 {
	t.Helper()
	id, err := store.Create(context.Background(), &models.Inquiry{
		Name:   "Asha Patil",
		Mobile: mobile,
		Email:  email,
	})
	require.NoError(t, err)
	return id
}

func TestStudentCreateInheritsContactFromInquiry(t *testing.T) {
	svc, _, inquiries, _ := newStudentServiceForTest()
	inqID := seedInquiry(t, inquiries, "9876511111", "asha@example.com")

	st, err := svc.Create(context.Background(), counselorSub, dto.CreateStudentRequest{
		Inquiry:   inqID,
		Course:    "Java",
		TotalFees: "45000",
	})
	require.NoError(t, err)
	assert.Equal(t, "9876511111", st.Mobile)
	assert.Equal(t, "asha@example.com", st.Email)
	assert.Equal(t, models.StudentActive, st.Status)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), st.EnrollmentDate)
	assert.True(t, st.TotalFees.Equal(decimal.NewFromInt(45000)))
}

func TestStudentCreateExplicitContactWins(t *testing.T) {
	svc, _, inquiries, _ := newStudentServiceForTest()
	inqID := seedInquiry(t, inquiries, "9876511112", "asha@example.com")

	st, err := svc.Create(context.Background(), counselorSub, dto.CreateStudentRequest{
		Inquiry:        inqID,
		Mobile:         "9000000000",
		Email:          "other@example.com",
		Course:         "Python",
		TotalFees:      "30000.50",
		EnrollmentDate: strPtr("2026-07-01"),
		Status:         "COMPLETED",
	})
	require.NoError(t, err)
	assert.Equal(t, "9000000000", st.Mobile)
	assert.Equal(t, "other@example.com", st.Email)
	assert.Equal(t, models.StudentCompleted, st.Status)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), st.EnrollmentDate)
}

func TestStudentCreateRejectsBadFees(t *testing.T) {
	svc, _, inquiries, _ := newStudentServiceForTest()
	inqID := seedInquiry(t, inquiries, "9876511113", "")

	for _, fees := range []string{"not-a-number", "-500"} {
		_, err := svc.Create(context.Background(), counselorSub, dto.CreateStudentRequest{
			Inquiry:   inqID,
			Course:    "Java",
			TotalFees: fees,
		})
		require.Error(t, err, "total_fees %q", fees)
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	}
}

func TestStudentCreateUnknownInquiry(t *testing.T) {
	svc, _, _, _ := newStudentServiceForTest()

	_, err := svc.Create(context.Background(), counselorSub, dto.CreateStudentRequest{
		Inquiry:   404,
		Course:    "Java",
		TotalFees: "1000",
	})
	assert.ErrorIs(t, err, apperrors.ErrInquiryNotFound)
}

func TestStudentCreateSameInquiryTwice(t *testing.T) {
	svc, _, inquiries, _ := newStudentServiceForTest()
	inqID := seedInquiry(t, inquiries, "9876511114", "")
	ctx := context.Background()

	_, err := svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqID, Course: "Java", TotalFees: "1000"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqID, Course: "Java", TotalFees: "1000"})
	assert.ErrorIs(t, err, apperrors.ErrInquiryAlreadyAdmitted)
}

func TestStudentGetComposesDetailAndFees(t *testing.T) {
	svc, _, inquiries, fees := newStudentServiceForTest()
	inqID := seedInquiry(t, inquiries, "9876511115", "")
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqID, Course: "Java", TotalFees: "40000"})
	require.NoError(t, err)

	_, err = fees.Create(ctx, &models.Fee{StudentID: created.ID, Amount: decimal.NewFromInt(5000), Mode: models.FeeModeUPI})
	require.NoError(t, err)

	got, err := svc.Get(ctx, trainerSub, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.InquiryDetails)
	assert.Equal(t, inqID, got.InquiryDetails.ID)
	require.Len(t, got.Fees, 1)
	assert.True(t, got.Fees[0].Amount.Equal(decimal.NewFromInt(5000)))
}

func TestStudentUpdatePartial(t *testing.T) {
	svc, _, inquiries, _ := newStudentServiceForTest()
	inqID := seedInquiry(t, inquiries, "9876511116", "")
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqID, Course: "Java", TotalFees: "40000"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, hrAdminSub, created.ID, dto.UpdateStudentRequest{
		Batch:  int64Ptr(3),
		Status: strPtr("DROPPED"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.BatchID)
	assert.Equal(t, int64(3), *updated.BatchID)
	assert.Equal(t, models.StudentDropped, updated.Status)
	assert.Equal(t, "Java", updated.Course)
}

func TestStudentCreateDuplicateMobile(t *testing.T) {
	svc, _, inquiries, _ := newStudentServiceForTest()
	ctx := context.Background()

	inqA := seedInquiry(t, inquiries, "9876511120", "")
	inqB := seedInquiry(t, inquiries, "9876511121", "")
	_, err := svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqA, Course: "Java", TotalFees: "1000"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, counselorSub, dto.CreateStudentRequest{
		Inquiry:   inqB,
		Mobile:    "9876511120",
		Course:    "Python",
		TotalFees: "1000",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentMobileExists)
}

func TestStudentUpdateDuplicateMobile(t *testing.T) {
	svc, _, inquiries, _ := newStudentServiceForTest()
	ctx := context.Background()

	inqA := seedInquiry(t, inquiries, "9876511122", "")
	inqB := seedInquiry(t, inquiries, "9876511123", "")
	_, err := svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqA, Course: "Java", TotalFees: "1000"})
	require.NoError(t, err)
	other, err := svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqB, Course: "Python", TotalFees: "1000"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, hrAdminSub, other.ID, dto.UpdateStudentRequest{Mobile: strPtr("9876511122")})
	assert.ErrorIs(t, err, apperrors.ErrStudentMobileExists)
}

func TestStudentCreateUnknownCourse(t *testing.T) {
	svc, _, inquiries, _ := newStudentServiceForTest()
	inqID := seedInquiry(t, inquiries, "9876511124", "")

	_, err := svc.Create(context.Background(), counselorSub, dto.CreateStudentRequest{
		Inquiry:   inqID,
		Course:    "Basket Weaving",
		TotalFees: "1000",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentUpdateUnknownCourse(t *testing.T) {
	svc, _, inquiries, _ := newStudentServiceForTest()
	inqID := seedInquiry(t, inquiries, "9876511125", "")
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqID, Course: "Java", TotalFees: "1000"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, hrAdminSub, created.ID, dto.UpdateStudentRequest{Course: strPtr("java")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentGetPropagatesInquiryLookupFailure(t *testing.T) {
	svc, _, inquiries, _ := newStudentServiceForTest()
	inqID := seedInquiry(t, inquiries, "9876511126", "")
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqID, Course: "Java", TotalFees: "1000"})
	require.NoError(t, err)

	lookupErr := errors.New("connection reset by peer")
	inquiries.getErr = lookupErr

	_, err = svc.Get(ctx, hrAdminSub, created.ID)
	assert.ErrorIs(t, err, lookupErr)
}

func TestStudentGetOmitsDetailsForMissingInquiry(t *testing.T) {
	svc, students, inquiries, _ := newStudentServiceForTest()
	inqID := seedInquiry(t, inquiries, "9876511127", "")
	ctx := context.Background()

	created, err := svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqID, Course: "Java", TotalFees: "1000"})
	require.NoError(t, err)

	// Orphan the student record; the read still succeeds without details.
	delete(inquiries.inquiries, inqID)
	require.Contains(t, students.students, created.ID)

	got, err := svc.Get(ctx, hrAdminSub, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.InquiryDetails)
}

func TestInquiryAdmittedFlagTracksEnrollment(t *testing.T) {
	students := newFakeStudentStore()
	inquiries := newFakeInquiryStore()
	inquiries.students = students
	studentSvc := NewStudentService(students, inquiries, newFakeFeeStore())
	inquirySvc := NewInquiryService(inquiries)
	ctx := context.Background()

	inqID := seedInquiry(t, inquiries, "9876511128", "")

	before, err := inquirySvc.Get(ctx, managerSub, inqID)
	require.NoError(t, err)
	assert.False(t, before.IsAdmitted)

	created, err := studentSvc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqID, Course: "Java", TotalFees: "1000"})
	require.NoError(t, err)

	after, err := inquirySvc.Get(ctx, managerSub, inqID)
	require.NoError(t, err)
	assert.True(t, after.IsAdmitted)

	require.NoError(t, studentSvc.Delete(ctx, adminSub, created.ID))

	dropped, err := inquirySvc.Get(ctx, managerSub, inqID)
	require.NoError(t, err)
	assert.False(t, dropped.IsAdmitted)
}

func TestStudentListFilters(t *testing.T) {
	svc, students, inquiries, _ := newStudentServiceForTest()
	ctx := context.Background()

	inqA := seedInquiry(t, inquiries, "9876511117", "")
	inqB := seedInquiry(t, inquiries, "9876511118", "")
	_, err := svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqA, Course: "Java", TotalFees: "1000", Batch: int64Ptr(1)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, counselorSub, dto.CreateStudentRequest{Inquiry: inqB, Course: "Python", TotalFees: "1000", Batch: int64Ptr(2)})
	require.NoError(t, err)

	byBatch, err := svc.List(ctx, officerSub, dto.StudentFilterRequest{Batch: int64Ptr(2)})
	require.NoError(t, err)
	require.Len(t, byBatch, 1)
	assert.Equal(t, "Python", byBatch[0].Course)

	byMobile, err := svc.List(ctx, officerSub, dto.StudentFilterRequest{Mobile: "9876511117"})
	require.NoError(t, err)
	require.Len(t, byMobile, 1)
	assert.Equal(t, "Java", byMobile[0].Course)

	assert.Len(t, students.students, 2)
}
