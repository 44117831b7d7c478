package services

import (
	"context"
	"strings"
	"time"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/repositories"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/shopspring/decimal"
)

// In-memory stand-ins for the repository layer. Each fake mirrors the
// real repository's ownership semantics: an owner mismatch is reported
// as not found, never as a distinct error.

type fakeInquiryStore struct {
	nextID    int64
	inquiries map[int64]models.Inquiry
	followUps []models.InquiryFollowUp

	// students, when set, backs the is_admitted projection the real
	// repository computes with an EXISTS subquery.
	students *fakeStudentStore
	getErr   error
}

func newFakeInquiryStore() *fakeInquiryStore {
	return &fakeInquiryStore{nextID: 1, inquiries: map[int64]models.Inquiry{}}
}

func (f *fakeInquiryStore) admitted(inquiryID int64) bool {
	if f.students == nil {
		return false
	}
	for _, st := range f.students.students {
		if st.InquiryID == inquiryID {
			return true
		}
	}
	return false
}

func (f *fakeInquiryStore) Create(_ context.Context, inq *models.Inquiry) (int64, error) {
	for _, existing := range f.inquiries {
		if existing.Mobile == inq.Mobile {
			return 0, apperrors.ErrMobileAlreadyExists
		}
	}
	inq.ID = f.nextID
	f.nextID++
	inq.CreatedAt = time.Now()
	f.inquiries[inq.ID] = *inq
	return inq.ID, nil
}

func (f *fakeInquiryStore) GetByID(_ context.Context, id int64, createdBy *int64) (*models.Inquiry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	inq, ok := f.inquiries[id]
	if !ok {
		return nil, apperrors.ErrInquiryNotFound
	}
	if createdBy != nil && (inq.CreatedByID == nil || *inq.CreatedByID != *createdBy) {
		return nil, apperrors.ErrInquiryNotFound
	}
	out := inq
	out.IsAdmitted = f.admitted(id)
	return &out, nil
}

func (f *fakeInquiryStore) List(_ context.Context, filter repositories.InquiryFilter) ([]models.Inquiry, error) {
	result := []models.Inquiry{}
	for _, inq := range f.inquiries {
		if filter.CreatedBy != nil && (inq.CreatedByID == nil || *inq.CreatedByID != *filter.CreatedBy) {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(inq.Name), strings.ToLower(filter.Search)) &&
			!strings.Contains(inq.Mobile, filter.Search) {
			continue
		}
		inq.IsAdmitted = f.admitted(inq.ID)
		result = append(result, inq)
	}
	return result, nil
}

func (f *fakeInquiryStore) Update(_ context.Context, inq *models.Inquiry) error {
	if _, ok := f.inquiries[inq.ID]; !ok {
		return apperrors.ErrInquiryNotFound
	}
	f.inquiries[inq.ID] = *inq
	return nil
}

func (f *fakeInquiryStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.inquiries[id]; !ok {
		return apperrors.ErrInquiryNotFound
	}
	delete(f.inquiries, id)
	return nil
}

func (f *fakeInquiryStore) AddFollowUp(_ context.Context, fu *models.InquiryFollowUp) (int64, error) {
	if _, ok := f.inquiries[fu.InquiryID]; !ok {
		return 0, apperrors.ErrInquiryNotFound
	}
	fu.ID = int64(len(f.followUps) + 1)
	fu.CreatedAt = time.Now()
	f.followUps = append(f.followUps, *fu)
	return fu.ID, nil
}

type fakeBatchStore struct {
	nextID  int64
	batches map[int64]models.Batch
}

func newFakeBatchStore() *fakeBatchStore {
	return &fakeBatchStore{nextID: 1, batches: map[int64]models.Batch{}}
}

func (f *fakeBatchStore) Create(_ context.Context, b *models.Batch) (int64, error) {
	b.ID = f.nextID
	f.nextID++
	f.batches[b.ID] = *b
	return b.ID, nil
}

func (f *fakeBatchStore) GetByID(_ context.Context, id int64, trainerID *int64) (*models.Batch, error) {
	b, ok := f.batches[id]
	if !ok {
		return nil, apperrors.ErrBatchNotFound
	}
	if trainerID != nil && (b.TrainerID == nil || *b.TrainerID != *trainerID) {
		return nil, apperrors.ErrBatchNotFound
	}
	out := b
	return &out, nil
}

func (f *fakeBatchStore) List(_ context.Context, filter repositories.BatchFilter) ([]models.Batch, error) {
	result := []models.Batch{}
	for _, b := range f.batches {
		if filter.TrainerID != nil && (b.TrainerID == nil || *b.TrainerID != *filter.TrainerID) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBatchStore) Update(_ context.Context, b *models.Batch) error {
	if _, ok := f.batches[b.ID]; !ok {
		return apperrors.ErrBatchNotFound
	}
	f.batches[b.ID] = *b
	return nil
}

func (f *fakeBatchStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.batches[id]; !ok {
		return apperrors.ErrBatchNotFound
	}
	delete(f.batches, id)
	return nil
}

type fakeStudentStore struct {
	nextID   int64
	students map[int64]models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{nextID: 1, students: map[int64]models.Student{}}
}

func (f *fakeStudentStore) Create(_ context.Context, st *models.Student) (int64, error) {
	for _, existing := range f.students {
		if existing.InquiryID == st.InquiryID {
			return 0, apperrors.ErrInquiryAlreadyAdmitted
		}
		if existing.Mobile == st.Mobile {
			return 0, apperrors.ErrStudentMobileExists
		}
	}
	st.ID = f.nextID
	f.nextID++
	f.students[st.ID] = *st
	return st.ID, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	st, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	out := st
	return &out, nil
}

func (f *fakeStudentStore) List(_ context.Context, filter repositories.StudentFilter) ([]models.Student, error) {
	result := []models.Student{}
	for _, st := range f.students {
		if filter.BatchID != nil && (st.BatchID == nil || *st.BatchID != *filter.BatchID) {
			continue
		}
		if filter.Mobile != "" && st.Mobile != filter.Mobile {
			continue
		}
		result = append(result, st)
	}
	return result, nil
}

func (f *fakeStudentStore) Update(_ context.Context, st *models.Student) error {
	if _, ok := f.students[st.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	for _, existing := range f.students {
		if existing.ID != st.ID && existing.Mobile == st.Mobile {
			return apperrors.ErrStudentMobileExists
		}
	}
	f.students[st.ID] = *st
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeFeeStore struct {
	nextID int64
	fees   map[int64]models.Fee
}

func newFakeFeeStore() *fakeFeeStore {
	return &fakeFeeStore{nextID: 1, fees: map[int64]models.Fee{}}
}

func (f *fakeFeeStore) Create(_ context.Context, fee *models.Fee) (int64, error) {
	fee.ID = f.nextID
	f.nextID++
	f.fees[fee.ID] = *fee
	return fee.ID, nil
}

func (f *fakeFeeStore) GetByID(_ context.Context, id int64) (*models.Fee, error) {
	fee, ok := f.fees[id]
	if !ok {
		return nil, apperrors.ErrFeeNotFound
	}
	out := fee
	return &out, nil
}

func (f *fakeFeeStore) List(_ context.Context, filter repositories.FeeFilter) ([]models.Fee, error) {
	result := []models.Fee{}
	for _, fee := range f.fees {
		if filter.StudentID != nil && fee.StudentID != *filter.StudentID {
			continue
		}
		result = append(result, fee)
	}
	return result, nil
}

func (f *fakeFeeStore) Update(_ context.Context, fee *models.Fee) error {
	if _, ok := f.fees[fee.ID]; !ok {
		return apperrors.ErrFeeNotFound
	}
	f.fees[fee.ID] = *fee
	return nil
}

func (f *fakeFeeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.fees[id]; !ok {
		return apperrors.ErrFeeNotFound
	}
	delete(f.fees, id)
	return nil
}

type fakeAttendanceStore struct {
	nextID  int64
	records map[int64]models.Attendance
	batches *fakeBatchStore
}

func newFakeAttendanceStore(batches *fakeBatchStore) *fakeAttendanceStore {
	return &fakeAttendanceStore{nextID: 1, records: map[int64]models.Attendance{}, batches: batches}
}

func (f *fakeAttendanceStore) batchTrainer(batchID int64) *int64 {
	if f.batches == nil {
		return nil
	}
	b, ok := f.batches.batches[batchID]
	if !ok {
		return nil
	}
	return b.TrainerID
}

func (f *fakeAttendanceStore) Create(_ context.Context, a *models.Attendance) (int64, error) {
	for _, existing := range f.records {
		if existing.StudentID == a.StudentID && existing.Date.Equal(a.Date) {
			return 0, apperrors.ErrAttendanceDuplicate
		}
	}
	a.ID = f.nextID
	f.nextID++
	f.records[a.ID] = *a
	return a.ID, nil
}

func (f *fakeAttendanceStore) GetByID(_ context.Context, id int64, batchTrainerID *int64) (*models.Attendance, error) {
	a, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrAttendanceNotFound
	}
	if batchTrainerID != nil {
		trainer := f.batchTrainer(a.BatchID)
		if trainer == nil || *trainer != *batchTrainerID {
			return nil, apperrors.ErrAttendanceNotFound
		}
	}
	out := a
	return &out, nil
}

func (f *fakeAttendanceStore) List(_ context.Context, filter repositories.AttendanceFilter) ([]models.Attendance, error) {
	result := []models.Attendance{}
	for _, a := range f.records {
		if filter.BatchTrainerID != nil {
			trainer := f.batchTrainer(a.BatchID)
			if trainer == nil || *trainer != *filter.BatchTrainerID {
				continue
			}
		}
		if filter.BatchID != nil && a.BatchID != *filter.BatchID {
			continue
		}
		if filter.StudentID != nil && a.StudentID != *filter.StudentID {
			continue
		}
		if filter.Date != nil && !a.Date.Equal(*filter.Date) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAttendanceStore) Update(_ context.Context, a *models.Attendance) error {
	if _, ok := f.records[a.ID]; !ok {
		return apperrors.ErrAttendanceNotFound
	}
	f.records[a.ID] = *a
	return nil
}

func (f *fakeAttendanceStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return apperrors.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeOutreachStore struct {
	nextID  int64
	records map[int64]models.PlacementOutreach
}

func newFakeOutreachStore() *fakeOutreachStore {
	return &fakeOutreachStore{nextID: 1, records: map[int64]models.PlacementOutreach{}}
}

func (f *fakeOutreachStore) Create(_ context.Context, o *models.PlacementOutreach) (int64, error) {
	o.ID = f.nextID
	f.nextID++
	f.records[o.ID] = *o
	return o.ID, nil
}

func (f *fakeOutreachStore) GetByID(_ context.Context, id int64, officerID *int64) (*models.PlacementOutreach, error) {
	o, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrOutreachNotFound
	}
	if officerID != nil && (o.OfficerID == nil || *o.OfficerID != *officerID) {
		return nil, apperrors.ErrOutreachNotFound
	}
	out := o
	return &out, nil
}

func (f *fakeOutreachStore) List(_ context.Context, filter repositories.OutreachFilter) ([]models.PlacementOutreach, error) {
	result := []models.PlacementOutreach{}
	for _, o := range f.records {
		if filter.OfficerID != nil && (o.OfficerID == nil || *o.OfficerID != *filter.OfficerID) {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func (f *fakeOutreachStore) Update(_ context.Context, o *models.PlacementOutreach) error {
	if _, ok := f.records[o.ID]; !ok {
		return apperrors.ErrOutreachNotFound
	}
	f.records[o.ID] = *o
	return nil
}

func (f *fakeOutreachStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return apperrors.ErrOutreachNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeUserStore struct {
	nextID int64
	users  map[int64]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: map[int64]models.User{}}
}

func (f *fakeUserStore) add(user models.User) models.User {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return 0, apperrors.ErrUsernameAlreadyUsed
		}
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.users[user.ID] = *user
	return user.ID, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	out := user
	return &out, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			out := user
			return &out, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) List(_ context.Context, filter repositories.UserFilter) ([]models.User, error) {
	result := []models.User{}
	for _, user := range f.users {
		if filter.Role != "" && string(user.Role) != filter.Role {
			continue
		}
		result = append(result, user)
	}
	return result, nil
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type storedToken struct {
	userID    int64
	expiry    time.Time
	isRevoked bool
}

type fakeTokenStore struct {
	tokens map[string]*storedToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]*storedToken{}}
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	f.tokens[token] = &storedToken{userID: userID, expiry: expiryDate}
	return nil
}

func (f *fakeTokenStore) GetTokenByValue(_ context.Context, token string) (int64, time.Time, bool, error) {
	st, ok := f.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	return st.userID, st.expiry, st.isRevoked, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	st, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	st.isRevoked = true
	return nil
}

type fakeDashboardStore struct {
	inquiries []models.Inquiry
	students  []models.Student
	fees      []models.Fee
	outreach  []models.PlacementOutreach
}

func (f *fakeDashboardStore) CountInquiries(_ context.Context, createdBy *int64, since *time.Time) (int64, error) {
	var n int64
	for _, inq := range f.inquiries {
		if createdBy != nil && (inq.CreatedByID == nil || *inq.CreatedByID != *createdBy) {
			continue
		}
		if since != nil && inq.CreatedAt.Before(*since) {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeDashboardStore) CountStudents(_ context.Context) (int64, error) {
	return int64(len(f.students)), nil
}

func (f *fakeDashboardStore) CountStudentsEnrolledOn(_ context.Context, on time.Time) (int64, error) {
	var n int64
	for _, st := range f.students {
		if st.EnrollmentDate.Equal(on) {
			n++
		}
	}
	return n, nil
}

func (f *fakeDashboardStore) SumFees(_ context.Context, on *time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, fee := range f.fees {
		if on != nil && !fee.DateCollected.Equal(*on) {
			continue
		}
		sum = sum.Add(fee.Amount)
	}
	return sum, nil
}

func (f *fakeDashboardStore) CountOutreach(_ context.Context, officerID *int64, on *time.Time) (int64, error) {
	var n int64
	for _, o := range f.outreach {
		if officerID != nil && (o.OfficerID == nil || *o.OfficerID != *officerID) {
			continue
		}
		if on != nil && !o.Date.Equal(*on) {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeDashboardStore) RecentStudents(_ context.Context, limit uint64) ([]models.Student, error) {
	if uint64(len(f.students)) <= limit {
		return append([]models.Student{}, f.students...), nil
	}
	return append([]models.Student{}, f.students[:limit]...), nil
}

func (f *fakeDashboardStore) RecentFees(_ context.Context, limit uint64) ([]models.Fee, error) {
	if uint64(len(f.fees)) <= limit {
		return append([]models.Fee{}, f.fees...), nil
	}
	return append([]models.Fee{}, f.fees[:limit]...), nil
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
