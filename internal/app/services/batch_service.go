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

// batchStore is the data access surface the batch service needs.
type batchStore interface {
	Create(ctx context.Context, b *models.Batch) (int64, error)
	GetByID(ctx context.Context, id int64, trainerID *int64) (*models.Batch, error)
	List(ctx context.Context, filter repositories.BatchFilter) ([]models.Batch, error)
	Update(ctx context.Context, b *models.Batch) error
	Delete(ctx context.Context, id int64) error
}

// BatchService handles training batch scheduling
type BatchService struct {
	batchRepo batchStore
}

// NewBatchService creates a new BatchService
func NewBatchService(batchRepo batchStore) *BatchService {
	return &BatchService{batchRepo: batchRepo}
}

// List returns the batches visible to the subject. Trainers only see
// batches assigned to them.
func (s *BatchService) List(ctx context.Context, sub policy.Subject) ([]models.Batch, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceBatch, policy.ActionList)
	if !ok {
		return []models.Batch{}, nil
	}
	return s.batchRepo.List(ctx, repositories.BatchFilter{TrainerID: owner})
}

// Get returns one batch within the subject's scope
func (s *BatchService) Get(ctx context.Context, sub policy.Subject, id int64) (*models.Batch, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceBatch, policy.ActionRead)
	if !ok {
		return nil, apperrors.ErrBatchNotFound
	}
	return s.batchRepo.GetByID(ctx, id, owner)
}

// Create schedules a new batch. A trainer whose write scope is limited
// to own batches always becomes the batch trainer, regardless of the
// request payload.
func (s *BatchService) Create(ctx context.Context, sub policy.Subject, req dto.CreateBatchRequest) (*models.Batch, error) {
	scope := policy.Decide(sub, policy.ResourceBatch, policy.ActionCreate)
	if scope == policy.ScopeNone {
		return nil, apperrors.NewForbiddenError("not allowed to create batches")
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start_date", "must be a valid YYYY-MM-DD date")
	}

	trainerID := req.Trainer
	if scope == policy.ScopeOwn {
		id := sub.ID
		trainerID = &id
	}

	b := &models.Batch{
		Course:              req.Course,
		BatchName:           req.BatchName,
		TrainerID:           trainerID,
		StartDate:           startDate,
		ClassroomName:       req.ClassroomName,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		DaysOfWeek:          req.DaysOfWeek,
		ZoomHostAccount:     req.ZoomHostAccount,
		ZoomHostPassword:    req.ZoomHostPassword,
		ZoomMeetingID:       req.ZoomMeetingID,
		ZoomMeetingPasscode: req.ZoomMeetingPasscode,
		ZoomLink:            req.ZoomLink,
	}

	id, err := s.batchRepo.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	return s.batchRepo.GetByID(ctx, id, nil)
}

// Update applies a partial update to a batch within the subject's scope
func (s *BatchService) Update(ctx context.Context, sub policy.Subject, id int64, req dto.UpdateBatchRequest) (*models.Batch, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceBatch, policy.ActionUpdate)
	if !ok {
		return nil, apperrors.ErrBatchNotFound
	}

	b, err := s.batchRepo.GetByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	if req.Course != nil {
		b.Course = *req.Course
	}
	if req.BatchName != nil {
		b.BatchName = *req.BatchName
	}
	if req.Trainer != nil && owner == nil {
		// Reassigning the trainer is reserved for unscoped writers.
		b.TrainerID = req.Trainer
	}
	if req.StartDate != nil {
		startDate, err := helpers.ParseDate(*req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("start_date", "must be a valid YYYY-MM-DD date")
		}
		b.StartDate = startDate
	}
	if req.ClassroomName != nil {
		b.ClassroomName = req.ClassroomName
	}
	if req.StartTime != nil {
		b.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		b.EndTime = req.EndTime
	}
	if req.DaysOfWeek != nil {
		b.DaysOfWeek = req.DaysOfWeek
	}
	if req.ZoomHostAccount != nil {
		b.ZoomHostAccount = req.ZoomHostAccount
	}
	if req.ZoomHostPassword != nil {
		b.ZoomHostPassword = req.ZoomHostPassword
	}
	if req.ZoomMeetingID != nil {
		b.ZoomMeetingID = req.ZoomMeetingID
	}
	if req.ZoomMeetingPasscode != nil {
		b.ZoomMeetingPasscode = req.ZoomMeetingPasscode
	}
	if req.ZoomLink != nil {
		b.ZoomLink = req.ZoomLink
	}

	if err := s.batchRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return s.batchRepo.GetByID(ctx, id, nil)
}

// Delete removes a batch within the subject's scope
func (s *BatchService) Delete(ctx context.Context, sub policy.Subject, id int64) error {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceBatch, policy.ActionDelete)
	if !ok {
		return apperrors.ErrBatchNotFound
	}
	if _, err := s.batchRepo.GetByID(ctx, id, owner); err != nil {
		return err
	}
	return s.batchRepo.Delete(ctx, id)
}
