package models

import "time"

// OutreachMode is the placement outreach contact mode vocabulary
type OutreachMode string

const (
	OutreachCall     OutreachMode = "CALL"
	OutreachEmail    OutreachMode = "EMAIL"
	OutreachLinkedIn OutreachMode = "LINKEDIN"
	OutreachVisit    OutreachMode = "VISIT"
)

// IsValid reports whether m is a known outreach mode.
func (m OutreachMode) IsValid() bool {
	switch m {
	case OutreachCall, OutreachEmail, OutreachLinkedIn, OutreachVisit:
		return true
	}
	return false
}

// PlacementOutreach defines one outreach event based on the
// 'placement_outreach' table. Date and OfficerID are server-assigned.
type PlacementOutreach struct {
	ID          int64        `json:"id" db:"id"`
	OfficerID   *int64       `json:"officer" db:"officer_id"`
	CompanyName string       `json:"company_name" db:"company_name"`
	ContactName string       `json:"contact_name" db:"contact_name"`
	Mode        OutreachMode `json:"mode" db:"mode"`
	PhoneEmail  string       `json:"phone_email" db:"phone_email"`
	Remark      *string      `json:"remark,omitempty" db:"remark"`
	Date        time.Time    `json:"date" db:"date"`

	OfficerName *string `json:"officer_name,omitempty"`
}
