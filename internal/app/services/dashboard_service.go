package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/policy"
	"github.com/sandesh/institutecrm/internal/pkg/helpers"
)

const recentListSize = 5

// dashboardStore is the aggregate query surface the dashboard needs.
type dashboardStore interface {
	CountInquiries(ctx context.Context, createdBy *int64, since *time.Time) (int64, error)
	CountStudents(ctx context.Context) (int64, error)
	CountStudentsEnrolledOn(ctx context.Context, on time.Time) (int64, error)
	SumFees(ctx context.Context, on *time.Time) (decimal.Decimal, error)
	CountOutreach(ctx context.Context, officerID *int64, on *time.Time) (int64, error)
	RecentStudents(ctx context.Context, limit uint64) ([]models.Student, error)
	RecentFees(ctx context.Context, limit uint64) ([]models.Fee, error)
}

// DashboardService assembles the landing dashboard aggregates. All
// counts and sums default to zero when their underlying set is empty.
type DashboardService struct {
	dashboardRepo dashboardStore
	now           func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardRepo dashboardStore) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo, now: time.Now}
}

// Stats computes the dashboard for the subject. Inquiry and outreach
// totals respect the subject's visibility scope; a counselor sees only
// their own lead count, a placement officer only their own outreach.
func (s *DashboardService) Stats(ctx context.Context, sub policy.Subject) (*dto.DashboardStats, error) {
	today := helpers.Today(s.now())

	inquiryOwner, inquiryVisible := policy.OwnerFilter(sub, policy.ResourceInquiry, policy.ActionList)
	outreachOwner, outreachVisible := policy.OwnerFilter(sub, policy.ResourceOutreach, policy.ActionList)

	stats := &dto.DashboardStats{
		TotalFeesCollected: decimal.Zero,
		FeesToday:          decimal.Zero,
		RecentAdmissions:   []models.Student{},
		RecentFees:         []models.Fee{},
	}

	var err error
	if inquiryVisible {
		if stats.TotalInquiries, err = s.dashboardRepo.CountInquiries(ctx, inquiryOwner, nil); err != nil {
			return nil, err
		}
		if stats.InquiriesToday, err = s.dashboardRepo.CountInquiries(ctx, inquiryOwner, &today); err != nil {
			return nil, err
		}
	}

	if stats.TotalStudents, err = s.dashboardRepo.CountStudents(ctx); err != nil {
		return nil, err
	}
	if stats.AdmissionsToday, err = s.dashboardRepo.CountStudentsEnrolledOn(ctx, today); err != nil {
		return nil, err
	}

	if stats.TotalFeesCollected, err = s.dashboardRepo.SumFees(ctx, nil); err != nil {
		return nil, err
	}
	if stats.FeesToday, err = s.dashboardRepo.SumFees(ctx, &today); err != nil {
		return nil, err
	}

	if outreachVisible {
		if stats.Placements, err = s.dashboardRepo.CountOutreach(ctx, outreachOwner, nil); err != nil {
			return nil, err
		}
		if stats.PlacementsToday, err = s.dashboardRepo.CountOutreach(ctx, outreachOwner, &today); err != nil {
			return nil, err
		}
	}

	if stats.RecentAdmissions, err = s.dashboardRepo.RecentStudents(ctx, recentListSize); err != nil {
		return nil, err
	}
	if stats.RecentFees, err = s.dashboardRepo.RecentFees(ctx, recentListSize); err != nil {
		return nil, err
	}

	return stats, nil
}
