package services

import (
	"context"
	"time"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/policy"
	"github.com/sandesh/institutecrm/internal/app/repositories"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/helpers"
)

// outreachStore is the data access surface the outreach service needs.
type outreachStore interface {
	Create(ctx context.Context, o *models.PlacementOutreach) (int64, error)
	GetByID(ctx context.Context, id int64, officerID *int64) (*models.PlacementOutreach, error)
	List(ctx context.Context, filter repositories.OutreachFilter) ([]models.PlacementOutreach, error)
	Update(ctx context.Context, o *models.PlacementOutreach) error
	Delete(ctx context.Context, id int64) error
}

// OutreachService handles placement outreach activity logs
type OutreachService struct {
	outreachRepo outreachStore
	now          func() time.Time
}

// NewOutreachService creates a new OutreachService
func NewOutreachService(outreachRepo outreachStore) *OutreachService {
	return &OutreachService{outreachRepo: outreachRepo, now: time.Now}
}

// List returns outreach records visible to the subject. Placement
// officers only see their own logs.
func (s *OutreachService) List(ctx context.Context, sub policy.Subject) ([]models.PlacementOutreach, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceOutreach, policy.ActionList)
	if !ok {
		return []models.PlacementOutreach{}, nil
	}
	return s.outreachRepo.List(ctx, repositories.OutreachFilter{OfficerID: owner})
}

// Get returns one outreach record within the subject's scope
func (s *OutreachService) Get(ctx context.Context, sub policy.Subject, id int64) (*models.PlacementOutreach, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceOutreach, policy.ActionRead)
	if !ok {
		return nil, apperrors.ErrOutreachNotFound
	}
	return s.outreachRepo.GetByID(ctx, id, owner)
}

// Create logs an outreach event. The officer and the date are
// server-assigned: the authenticated subject and today.
func (s *OutreachService) Create(ctx context.Context, sub policy.Subject, req dto.CreateOutreachRequest) (*models.PlacementOutreach, error) {
	if !policy.CanCreate(sub, policy.ResourceOutreach) {
		return nil, apperrors.NewForbiddenError("not allowed to create outreach records")
	}

	mode := models.OutreachMode(req.Mode)
	if !mode.IsValid() {
		return nil, apperrors.NewValidationError("mode", "must be one of CALL, EMAIL, LINKEDIN, VISIT")
	}

	officerID := sub.ID
	o := &models.PlacementOutreach{
		OfficerID:   &officerID,
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Mode:        mode,
		PhoneEmail:  req.PhoneEmail,
		Remark:      helpers.NullableString(req.Remark),
		Date:        helpers.Today(s.now()),
	}

	id, err := s.outreachRepo.Create(ctx, o)
	if err != nil {
		return nil, err
	}
	return s.outreachRepo.GetByID(ctx, id, nil)
}

// Update applies a partial update to an outreach record within the
// subject's scope.
func (s *OutreachService) Update(ctx context.Context, sub policy.Subject, id int64, req dto.UpdateOutreachRequest) (*models.PlacementOutreach, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceOutreach, policy.ActionUpdate)
	if !ok {
		return nil, apperrors.ErrOutreachNotFound
	}

	o, err := s.outreachRepo.GetByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		o.CompanyName = *req.CompanyName
	}
	if req.ContactName != nil {
		o.ContactName = *req.ContactName
	}
	if req.Mode != nil {
		mode := models.OutreachMode(*req.Mode)
		if !mode.IsValid() {
			return nil, apperrors.NewValidationError("mode", "must be one of CALL, EMAIL, LINKEDIN, VISIT")
		}
		o.Mode = mode
	}
	if req.PhoneEmail != nil {
		o.PhoneEmail = *req.PhoneEmail
	}
	if req.Remark != nil {
		o.Remark = req.Remark
	}

	if err := s.outreachRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return s.outreachRepo.GetByID(ctx, id, nil)
}

// Delete removes an outreach record within the subject's scope
func (s *OutreachService) Delete(ctx context.Context, sub policy.Subject, id int64) error {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceOutreach, policy.ActionDelete)
	if !ok {
		return apperrors.ErrOutreachNotFound
	}
	if _, err := s.outreachRepo.GetByID(ctx, id, owner); err != nil {
		return err
	}
	return s.outreachRepo.Delete(ctx, id)
}
