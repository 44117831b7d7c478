package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sandesh/institutecrm/internal/app/models"
)

// DashboardStats aggregates headline numbers for the landing dashboard.
// All totals respect the caller's visibility scope.
type DashboardStats struct {
	TotalInquiries     int64            `json:"total_inquiries"`
	TotalStudents      int64            `json:"total_students"`
	TotalFeesCollected decimal.Decimal  `json:"total_fees_collected"`
	Placements         int64            `json:"placements"`
	FeesToday          decimal.Decimal  `json:"fees_today"`
	InquiriesToday     int64            `json:"inquiries_today"`
	AdmissionsToday    int64            `json:"admissions_today"`
	PlacementsToday    int64            `json:"placements_today"`
	RecentAdmissions   []models.Student `json:"recent_admissions"`
	RecentFees         []models.Fee     `json:"recent_fees"`
}
