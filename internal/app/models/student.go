package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StudentStatus is the enrollment status vocabulary
type StudentStatus string

const (
	StudentActive    StudentStatus = "ACTIVE"
	StudentCompleted StudentStatus = "COMPLETED"
	StudentDropped   StudentStatus = "DROPPED"
)

// IsValid reports whether s is a known status.
func (s StudentStatus) IsValid() bool {
	switch s {
	case StudentActive, StudentCompleted, StudentDropped:
		return true
	}
	return false
}

// Courses is the closed list of courses a student can enroll in.
var Courses = []string{
	"Java",
	"Python",
	"Cloud Computing",
	"Data Analytics",
	"DSA",
	"C Programming",
	"C++",
	"Data Science",
	"UI/UX",
	"Cyber Security",
	"Agentic AI",
	"Data Engineering",
	"Software Testing",
}

// IsValidCourse reports whether course is in the enrollment catalog.
func IsValidCourse(course string) bool {
	for _, c := range Courses {
		if c == course {
			return true
		}
	}
	return false
}

// Student defines an enrollment based on the 'students' table. Mobile and
// email are denormalized from the inquiry for fast lookup and are filled
// from it when absent on save.
type Student struct {
	ID             int64           `json:"id" db:"id"`
	InquiryID      int64           `json:"inquiry" db:"inquiry_id"`
	Mobile         string          `json:"mobile" db:"mobile"`
	Email          string          `json:"email" db:"email"`
	Course         string          `json:"course" db:"course"`
	TotalFees      decimal.Decimal `json:"total_fees" db:"total_fees"`
	BatchID        *int64          `json:"batch" db:"batch_id"`
	EnrollmentDate time.Time       `json:"enrollment_date" db:"enrollment_date"`
	Status         StudentStatus   `json:"status" db:"status"`

	// Read-time projections
	InquiryDetails *Inquiry `json:"inquiry_details,omitempty"`
	BatchName      *string  `json:"batch_name,omitempty"`
	Fees           []Fee    `json:"fees,omitempty"`
}
