package models

import "time"

// AttendanceStatus is the attendance vocabulary. Values outside this set
// (e.g. "PRESENT" or "ONLINE") are rejected at validation, not coerced.
type AttendanceStatus string

const (
	PresentOnline  AttendanceStatus = "PRESENT_ONLINE"
	PresentOffline AttendanceStatus = "PRESENT_OFFLINE"
	Absent         AttendanceStatus = "ABSENT"
)

// IsValid reports whether s is a known attendance status.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case PresentOnline, PresentOffline, Absent:
		return true
	}
	return false
}

// Attendance defines one (student, date) attendance record based on the
// 'attendance' table. The pair is unique; TrainerID is server-assigned.
type Attendance struct {
	ID          int64            `json:"id" db:"id"`
	BatchID     int64            `json:"batch" db:"batch_id"`
	StudentID   int64            `json:"student" db:"student_id"`
	Date        time.Time        `json:"date" db:"date"`
	LectureTime *string          `json:"lecture_time,omitempty" db:"lecture_time"`
	Status      AttendanceStatus `json:"status" db:"status"`
	TopicTaught *string          `json:"topic_taught,omitempty" db:"topic_taught"`
	Remarks     *string          `json:"remarks,omitempty" db:"remarks"`
	TrainerID   *int64           `json:"trainer" db:"trainer_id"`

	StudentName *string `json:"student_name,omitempty"`
	TrainerName *string `json:"trainer_name,omitempty"`
	BatchName   *string `json:"batch_name,omitempty"`
}
