package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	InquiryRepository    *InquiryRepository
	BatchRepository      *BatchRepository
	StudentRepository    *StudentRepository
	FeeRepository        *FeeRepository
	AttendanceRepository *AttendanceRepository
	OutreachRepository   *OutreachRepository
	DashboardRepository  *DashboardRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		InquiryRepository:    NewInquiryRepository(db),
		BatchRepository:      NewBatchRepository(db),
		StudentRepository:    NewStudentRepository(db),
		FeeRepository:        NewFeeRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		OutreachRepository:   NewOutreachRepository(db),
		DashboardRepository:  NewDashboardRepository(db),
	}
}
