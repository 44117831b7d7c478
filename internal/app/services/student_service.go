package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/policy"
	"github.com/sandesh/institutecrm/internal/app/repositories"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/helpers"
)

// studentStore is the data access surface the student service needs.
type studentStore interface {
	Create(ctx context.Context, st *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, filter repositories.StudentFilter) ([]models.Student, error)
	Update(ctx context.Context, st *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// inquiryReader resolves the inquiry a student is admitted from.
type inquiryReader interface {
	GetByID(ctx context.Context, id int64, createdBy *int64) (*models.Inquiry, error)
}

// feeLister loads a student's fee history for detail reads.
type feeLister interface {
	List(ctx context.Context, filter repositories.FeeFilter) ([]models.Fee, error)
}

// StudentService handles admissions and enrollment records
type StudentService struct {
	studentRepo studentStore
	inquiryRepo inquiryReader
	feeRepo     feeLister
	now         func() time.Time
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo studentStore, inquiryRepo inquiryReader, feeRepo feeLister) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		inquiryRepo: inquiryRepo,
		feeRepo:     feeRepo,
		now:         time.Now,
	}
}

// List returns students matching the filter. Every staff role may read
// students, so no ownership predicate applies.
func (s *StudentService) List(ctx context.Context, sub policy.Subject, req dto.StudentFilterRequest) ([]models.Student, error) {
	if _, ok := policy.OwnerFilter(sub, policy.ResourceStudent, policy.ActionList); !ok {
		return []models.Student{}, nil
	}
	return s.studentRepo.List(ctx, repositories.StudentFilter{
		BatchID: req.Batch,
		Mobile:  req.Mobile,
	})
}

// Get returns one student with inquiry details and fee history
func (s *StudentService) Get(ctx context.Context, sub policy.Subject, id int64) (*models.Student, error) {
	if _, ok := policy.OwnerFilter(sub, policy.ResourceStudent, policy.ActionRead); !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	st, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A missing inquiry just means no details to attach; anything
	// else is a real failure and must not ship a partial record.
	inq, err := s.inquiryRepo.GetByID(ctx, st.InquiryID, nil)
	if err != nil && !errors.Is(err, apperrors.ErrInquiryNotFound) {
		return nil, err
	}
	if err == nil {
		st.InquiryDetails = inq
	}
	fees, err := s.feeRepo.List(ctx, repositories.FeeFilter{StudentID: &st.ID})
	if err != nil {
		return nil, err
	}
	st.Fees = fees
	return st, nil
}

// Create admits an inquiry as a student. Mobile and email fall back to
// the inquiry's values when omitted; enrollment date defaults to today.
func (s *StudentService) Create(ctx context.Context, sub policy.Subject, req dto.CreateStudentRequest) (*models.Student, error) {
	if !policy.CanCreate(sub, policy.ResourceStudent) {
		return nil, apperrors.NewForbiddenError("not allowed to create students")
	}

	inq, err := s.inquiryRepo.GetByID(ctx, req.Inquiry, nil)
	if err != nil {
		return nil, err
	}

	if !models.IsValidCourse(req.Course) {
		return nil, apperrors.NewValidationError("course", "must be a course from the enrollment catalog")
	}

	totalFees, err := decimal.NewFromString(req.TotalFees)
	if err != nil || totalFees.IsNegative() {
		return nil, apperrors.NewValidationError("total_fees", "must be a non-negative decimal amount")
	}

	mobile := req.Mobile
	if mobile == "" {
		mobile = inq.Mobile
	}
	email := req.Email
	if email == "" {
		email = inq.Email
	}

	enrollmentDate := helpers.Today(s.now())
	if req.EnrollmentDate != nil {
		enrollmentDate, err = helpers.ParseDate(*req.EnrollmentDate)
		if err != nil {
			return nil, apperrors.NewValidationError("enrollment_date", "must be a valid YYYY-MM-DD date")
		}
	}

	status := models.StudentActive
	if req.Status != "" {
		status = models.StudentStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "must be one of ACTIVE, COMPLETED, DROPPED")
		}
	}

	st := &models.Student{
		InquiryID:      req.Inquiry,
		Mobile:         mobile,
		Email:          email,
		Course:         req.Course,
		TotalFees:      totalFees,
		BatchID:        req.Batch,
		EnrollmentDate: enrollmentDate,
		Status:         status,
	}

	id, err := s.studentRepo.Create(ctx, st)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sub, id)
}

// Update applies a partial update to a student
func (s *StudentService) Update(ctx context.Context, sub policy.Subject, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	if _, ok := policy.OwnerFilter(sub, policy.ResourceStudent, policy.ActionUpdate); !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	st, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Mobile != nil {
		st.Mobile = *req.Mobile
	}
	if req.Email != nil {
		st.Email = *req.Email
	}
	if req.Course != nil {
		if !models.IsValidCourse(*req.Course) {
			return nil, apperrors.NewValidationError("course", "must be a course from the enrollment catalog")
		}
		st.Course = *req.Course
	}
	if req.TotalFees != nil {
		totalFees, err := decimal.NewFromString(*req.TotalFees)
		if err != nil || totalFees.IsNegative() {
			return nil, apperrors.NewValidationError("total_fees", "must be a non-negative decimal amount")
		}
		st.TotalFees = totalFees
	}
	if req.Batch != nil {
		st.BatchID = req.Batch
	}
	if req.EnrollmentDate != nil {
		enrollmentDate, err := helpers.ParseDate(*req.EnrollmentDate)
		if err != nil {
			return nil, apperrors.NewValidationError("enrollment_date", "must be a valid YYYY-MM-DD date")
		}
		st.EnrollmentDate = enrollmentDate
	}
	if req.Status != nil {
		status := models.StudentStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "must be one of ACTIVE, COMPLETED, DROPPED")
		}
		st.Status = status
	}

	if err := s.studentRepo.Update(ctx, st); err != nil {
		return nil, err
	}
	return s.Get(ctx, sub, id)
}

// Delete removes a student record
func (s *StudentService) Delete(ctx context.Context, sub policy.Subject, id int64) error {
	if _, ok := policy.OwnerFilter(sub, policy.ResourceStudent, policy.ActionDelete); !ok {
		return apperrors.ErrStudentNotFound
	}
	return s.studentRepo.Delete(ctx, id)
}
