package models

import "time"

// Inquiry defines a prospective lead based on the 'inquiries' table
type Inquiry struct {
	ID               int64     `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Mobile           string    `json:"mobile" db:"mobile"`
	Email            string    `json:"email" db:"email"`
	College          string    `json:"college" db:"college"`
	Degree           string    `json:"degree" db:"degree"`
	Branch           string    `json:"branch" db:"branch"`
	PassoutYear      int       `json:"passout_year" db:"passout_year"`
	InterestedCourse string    `json:"interested_course" db:"interested_course"`
	Source           string    `json:"source" db:"source"`
	CreatedByID      *int64    `json:"created_by" db:"created_by"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`

	// Read-time projections, never stored.
	CreatedByName *string           `json:"created_by_name,omitempty"`
	IsAdmitted    bool              `json:"is_admitted"`
	FollowUps     []InquiryFollowUp `json:"followups,omitempty"`
}

// InquiryFollowUp is one timestamped counselor note appended to an inquiry
type InquiryFollowUp struct {
	ID          int64     `json:"id" db:"id"`
	InquiryID   int64     `json:"inquiry" db:"inquiry_id"`
	Note        string    `json:"note" db:"note"`
	CreatedByID *int64    `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	CreatedByName *string `json:"created_by_name,omitempty"`
}
