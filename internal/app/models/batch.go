package models

import "time"

// Batch defines a scheduled course offering based on the 'batches' table.
// Times are stored as "HH:MM" strings; days_of_week is a comma-separated
// day list, e.g. "Mon,Tue,Wed".
type Batch struct {
	ID        int64     `json:"id" db:"id"`
	Course    string    `json:"course" db:"course"`
	BatchName string    `json:"batch_name" db:"batch_name"`
	TrainerID *int64    `json:"trainer" db:"trainer_id"`
	StartDate time.Time `json:"start_date" db:"start_date"`

	// Schedule & location
	ClassroomName *string `json:"classroom_name,omitempty" db:"classroom_name"`
	StartTime     *string `json:"start_time,omitempty" db:"start_time"`
	EndTime       *string `json:"end_time,omitempty" db:"end_time"`
	DaysOfWeek    *string `json:"days_of_week,omitempty" db:"days_of_week"`

	// Remote meeting details
	ZoomHostAccount    *string `json:"zoom_host_account,omitempty" db:"zoom_host_account"`
	ZoomHostPassword   *string `json:"zoom_host_password,omitempty" db:"zoom_host_password"`
	ZoomMeetingID      *string `json:"zoom_meeting_id,omitempty" db:"zoom_meeting_id"`
	ZoomMeetingPasscode *string `json:"zoom_meeting_passcode,omitempty" db:"zoom_meeting_passcode"`
	ZoomLink           *string `json:"zoom_link,omitempty" db:"zoom_link"`

	TrainerName *string `json:"trainer_name,omitempty"`
}
