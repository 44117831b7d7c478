package services

import (
	"context"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/policy"
	"github.com/sandesh/institutecrm/internal/app/repositories"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/helpers"
)

// attendanceStore is the data access surface the attendance service needs.
type attendanceStore interface {
	Create(ctx context.Context, a *models.Attendance) (int64, error)
	GetByID(ctx context.Context, id int64, batchTrainerID *int64) (*models.Attendance, error)
	List(ctx context.Context, filter repositories.AttendanceFilter) ([]models.Attendance, error)
	Update(ctx context.Context, a *models.Attendance) error
	Delete(ctx context.Context, id int64) error
}

// batchReader resolves the batch an attendance record belongs to.
type batchReader interface {
	GetByID(ctx context.Context, id int64, trainerID *int64) (*models.Batch, error)
}

// AttendanceService handles per-lecture attendance marking
type AttendanceService struct {
	attendanceRepo attendanceStore
	batchRepo      batchReader
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo attendanceStore, batchRepo batchReader) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		batchRepo:      batchRepo,
	}
}

// List returns attendance records visible to the subject. Trainers only
// see records of batches assigned to them.
func (s *AttendanceService) List(ctx context.Context, sub policy.Subject, req dto.AttendanceFilterRequest) ([]models.Attendance, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceAttendance, policy.ActionList)
	if !ok {
		return []models.Attendance{}, nil
	}

	filter := repositories.AttendanceFilter{
		BatchTrainerID: owner,
		BatchID:        req.Batch,
		StudentID:      req.Student,
	}
	if req.Date != nil {
		date, err := helpers.ParseDate(*req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "must be a valid YYYY-MM-DD date")
		}
		filter.Date = &date
	}
	return s.attendanceRepo.List(ctx, filter)
}

// Get returns one attendance record within the subject's scope
func (s *AttendanceService) Get(ctx context.Context, sub policy.Subject, id int64) (*models.Attendance, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceAttendance, policy.ActionRead)
	if !ok {
		return nil, apperrors.ErrAttendanceNotFound
	}
	return s.attendanceRepo.GetByID(ctx, id, owner)
}

// Create marks a student's attendance. The trainer is always the
// authenticated subject; a trainer may only mark batches assigned to
// them, and marking the same student twice on a date is rejected.
func (s *AttendanceService) Create(ctx context.Context, sub policy.Subject, req dto.CreateAttendanceRequest) (*models.Attendance, error) {
	scope := policy.Decide(sub, policy.ResourceAttendance, policy.ActionCreate)
	if scope == policy.ScopeNone {
		return nil, apperrors.NewForbiddenError("not allowed to create attendance")
	}

	var batchOwner *int64
	if scope == policy.ScopeOwn {
		id := sub.ID
		batchOwner = &id
	}
	if _, err := s.batchRepo.GetByID(ctx, req.Batch, batchOwner); err != nil {
		return nil, err
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be a valid YYYY-MM-DD date")
	}

	status := models.AttendanceStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of PRESENT_ONLINE, PRESENT_OFFLINE, ABSENT")
	}

	trainerID := sub.ID
	a := &models.Attendance{
		BatchID:     req.Batch,
		StudentID:   req.Student,
		Date:        date,
		LectureTime: req.LectureTime,
		Status:      status,
		TopicTaught: helpers.NullableString(req.TopicTaught),
		Remarks:     helpers.NullableString(req.Remarks),
		TrainerID:   &trainerID,
	}

	id, err := s.attendanceRepo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetByID(ctx, id, nil)
}

// Update applies a partial update to an attendance record within the
// subject's scope.
func (s *AttendanceService) Update(ctx context.Context, sub policy.Subject, id int64, req dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceAttendance, policy.ActionUpdate)
	if !ok {
		return nil, apperrors.ErrAttendanceNotFound
	}

	a, err := s.attendanceRepo.GetByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := helpers.ParseDate(*req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "must be a valid YYYY-MM-DD date")
		}
		a.Date = date
	}
	if req.LectureTime != nil {
		a.LectureTime = req.LectureTime
	}
	if req.Status != nil {
		status := models.AttendanceStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "must be one of PRESENT_ONLINE, PRESENT_OFFLINE, ABSENT")
		}
		a.Status = status
	}
	if req.TopicTaught != nil {
		a.TopicTaught = req.TopicTaught
	}
	if req.Remarks != nil {
		a.Remarks = req.Remarks
	}

	if err := s.attendanceRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetByID(ctx, id, nil)
}

// Delete removes an attendance record within the subject's scope
func (s *AttendanceService) Delete(ctx context.Context, sub policy.Subject, id int64) error {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceAttendance, policy.ActionDelete)
	if !ok {
		return apperrors.ErrAttendanceNotFound
	}
	if _, err := s.attendanceRepo.GetByID(ctx, id, owner); err != nil {
		return err
	}
	return s.attendanceRepo.Delete(ctx, id)
}
