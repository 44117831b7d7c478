package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/policy"
	"github.com/sandesh/institutecrm/internal/app/repositories"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/helpers"
)

// feeStore is the data access surface the fee service needs.
type feeStore interface {
	Create(ctx context.Context, fee *models.Fee) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Fee, error)
	List(ctx context.Context, filter repositories.FeeFilter) ([]models.Fee, error)
	Update(ctx context.Context, fee *models.Fee) error
	Delete(ctx context.Context, id int64) error
}

// FeeService handles fee installment collection
type FeeService struct {
	feeRepo feeStore
	now     func() time.Time
}

// NewFeeService creates a new FeeService
func NewFeeService(feeRepo feeStore) *FeeService {
	return &FeeService{feeRepo: feeRepo, now: time.Now}
}

// List returns fee records matching the filter
func (s *FeeService) List(ctx context.Context, sub policy.Subject, req dto.FeeFilterRequest) ([]models.Fee, error) {
	if _, ok := policy.OwnerFilter(sub, policy.ResourceFee, policy.ActionList); !ok {
		return []models.Fee{}, nil
	}
	return s.feeRepo.List(ctx, repositories.FeeFilter{StudentID: req.Student})
}

// Get returns one fee record
func (s *FeeService) Get(ctx context.Context, sub policy.Subject, id int64) (*models.Fee, error) {
	if _, ok := policy.OwnerFilter(sub, policy.ResourceFee, policy.ActionRead); !ok {
		return nil, apperrors.ErrFeeNotFound
	}
	return s.feeRepo.GetByID(ctx, id)
}

// Create records a fee installment. The collection date and collector
// are server-assigned: today, and the authenticated subject.
func (s *FeeService) Create(ctx context.Context, sub policy.Subject, req dto.CreateFeeRequest) (*models.Fee, error) {
	if !policy.CanCreate(sub, policy.ResourceFee) {
		return nil, apperrors.NewForbiddenError("not allowed to create fees")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount", "must be a positive decimal amount")
	}

	mode := models.FeeMode(req.Mode)
	if !mode.IsValid() {
		return nil, apperrors.NewValidationError("mode", "must be one of CASH, UPI, NEFT, RTGS, CHEQUE")
	}

	collectedBy := sub.ID
	fee := &models.Fee{
		StudentID:     req.Student,
		Amount:        amount,
		Mode:          mode,
		UTR:           req.UTR,
		DateCollected: helpers.Today(s.now()),
		CollectedByID: &collectedBy,
	}

	id, err := s.feeRepo.Create(ctx, fee)
	if err != nil {
		return nil, err
	}
	return s.feeRepo.GetByID(ctx, id)
}

// Update applies a partial update to a fee record
func (s *FeeService) Update(ctx context.Context, sub policy.Subject, id int64, req dto.UpdateFeeRequest) (*models.Fee, error) {
	if _, ok := policy.OwnerFilter(sub, policy.ResourceFee, policy.ActionUpdate); !ok {
		return nil, apperrors.ErrFeeNotFound
	}

	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil || !amount.IsPositive() {
			return nil, apperrors.NewValidationError("amount", "must be a positive decimal amount")
		}
		fee.Amount = amount
	}
	if req.Mode != nil {
		mode := models.FeeMode(*req.Mode)
		if !mode.IsValid() {
			return nil, apperrors.NewValidationError("mode", "must be one of CASH, UPI, NEFT, RTGS, CHEQUE")
		}
		fee.Mode = mode
	}
	if req.UTR != nil {
		fee.UTR = req.UTR
	}

	if err := s.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}
	return s.feeRepo.GetByID(ctx, id)
}

// Delete removes a fee record
func (s *FeeService) Delete(ctx context.Context, sub policy.Subject, id int64) error {
	if _, ok := policy.OwnerFilter(sub, policy.ResourceFee, policy.ActionDelete); !ok {
		return apperrors.ErrFeeNotFound
	}
	return s.feeRepo.Delete(ctx, id)
}
