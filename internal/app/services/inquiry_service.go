package services

import (
	"context"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/policy"
	"github.com/sandesh/institutecrm/internal/app/repositories"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
)

// inquiryStore is the data access surface the inquiry service needs.
type inquiryStore interface {
	Create(ctx context.Context, inq *models.Inquiry) (int64, error)
	GetByID(ctx context.Context, id int64, createdBy *int64) (*models.Inquiry, error)
	List(ctx context.Context, filter repositories.InquiryFilter) ([]models.Inquiry, error)
	Update(ctx context.Context, inq *models.Inquiry) error
	Delete(ctx context.Context, id int64) error
	AddFollowUp(ctx context.Context, fu *models.InquiryFollowUp) (int64, error)
}

// InquiryService handles lead intake and follow-up tracking
type InquiryService struct {
	inquiryRepo inquiryStore
}

// NewInquiryService creates a new InquiryService
func NewInquiryService(inquiryRepo inquiryStore) *InquiryService {
	return &InquiryService{inquiryRepo: inquiryRepo}
}

// List returns the inquiries visible to the subject. Counselors only
// see their own leads; a role with no grant gets an empty list.
func (s *InquiryService) List(ctx context.Context, sub policy.Subject, req dto.InquiryFilterRequest) ([]models.Inquiry, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceInquiry, policy.ActionList)
	if !ok {
		return []models.Inquiry{}, nil
	}
	return s.inquiryRepo.List(ctx, repositories.InquiryFilter{
		CreatedBy: owner,
		Search:    req.Search,
	})
}

// Get returns one inquiry within the subject's scope; out-of-scope ids
// are reported as not found.
func (s *InquiryService) Get(ctx context.Context, sub policy.Subject, id int64) (*models.Inquiry, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceInquiry, policy.ActionRead)
	if !ok {
		return nil, apperrors.ErrInquiryNotFound
	}
	return s.inquiryRepo.GetByID(ctx, id, owner)
}

// Create registers a new inquiry. The creator defaults to the subject
// but may be assigned explicitly, e.g. an HR admin routing a lead to a
// specific counselor.
func (s *InquiryService) Create(ctx context.Context, sub policy.Subject, req dto.CreateInquiryRequest) (*models.Inquiry, error) {
	if !policy.CanCreate(sub, policy.ResourceInquiry) {
		return nil, apperrors.NewForbiddenError("not allowed to create inquiries")
	}

	createdBy := req.CreatedBy
	if createdBy == nil {
		id := sub.ID
		createdBy = &id
	}

	passoutYear := 0
	if req.PassoutYear != nil {
		passoutYear = *req.PassoutYear
	}

	inq := &models.Inquiry{
		Name:             req.Name,
		Mobile:           req.Mobile,
		Email:            req.Email,
		College:          req.College,
		Degree:           req.Degree,
		Branch:           req.Branch,
		PassoutYear:      passoutYear,
		InterestedCourse: req.InterestedCourse,
		Source:           req.Source,
		CreatedByID:      createdBy,
	}

	id, err := s.inquiryRepo.Create(ctx, inq)
	if err != nil {
		return nil, err
	}
	return s.inquiryRepo.GetByID(ctx, id, nil)
}

// Update applies a partial update to an inquiry within the subject's
// write scope.
func (s *InquiryService) Update(ctx context.Context, sub policy.Subject, id int64, req dto.UpdateInquiryRequest) (*models.Inquiry, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceInquiry, policy.ActionUpdate)
	if !ok {
		return nil, apperrors.ErrInquiryNotFound
	}

	inq, err := s.inquiryRepo.GetByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		inq.Name = *req.Name
	}
	if req.Mobile != nil {
		inq.Mobile = *req.Mobile
	}
	if req.Email != nil {
		inq.Email = *req.Email
	}
	if req.College != nil {
		inq.College = *req.College
	}
	if req.Degree != nil {
		inq.Degree = *req.Degree
	}
	if req.Branch != nil {
		inq.Branch = *req.Branch
	}
	if req.PassoutYear != nil {
		inq.PassoutYear = *req.PassoutYear
	}
	if req.InterestedCourse != nil {
		inq.InterestedCourse = *req.InterestedCourse
	}
	if req.Source != nil {
		inq.Source = *req.Source
	}
	if req.CreatedBy != nil {
		inq.CreatedByID = req.CreatedBy
	}

	if err := s.inquiryRepo.Update(ctx, inq); err != nil {
		return nil, err
	}
	return s.inquiryRepo.GetByID(ctx, id, nil)
}

// Delete removes an inquiry within the subject's write scope
func (s *InquiryService) Delete(ctx context.Context, sub policy.Subject, id int64) error {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceInquiry, policy.ActionDelete)
	if !ok {
		return apperrors.ErrInquiryNotFound
	}
	if _, err := s.inquiryRepo.GetByID(ctx, id, owner); err != nil {
		return err
	}
	return s.inquiryRepo.Delete(ctx, id)
}

// AddFollowUp appends a note to an inquiry the subject can see. The
// note is always stamped with the subject, never a client-chosen user.
func (s *InquiryService) AddFollowUp(ctx context.Context, sub policy.Subject, inquiryID int64, req dto.AddFollowUpRequest) (*models.InquiryFollowUp, error) {
	owner, ok := policy.OwnerFilter(sub, policy.ResourceInquiry, policy.ActionRead)
	if !ok {
		return nil, apperrors.ErrInquiryNotFound
	}
	if _, err := s.inquiryRepo.GetByID(ctx, inquiryID, owner); err != nil {
		return nil, err
	}

	subjectID := sub.ID
	fu := &models.InquiryFollowUp{
		InquiryID:   inquiryID,
		Note:        req.Note,
		CreatedByID: &subjectID,
	}
	if _, err := s.inquiryRepo.AddFollowUp(ctx, fu); err != nil {
		return nil, err
	}
	return fu, nil
}
