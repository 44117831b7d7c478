package dto

// CreateBatchRequest represents a new training batch.
type CreateBatchRequest struct {
	Course              string  `json:"course" binding:"required,max=100"`
	BatchName           string  `json:"batch_name" binding:"required,max=100"`
	Trainer             *int64  `json:"trainer"`
	StartDate           string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	ClassroomName       *string `json:"classroom_name" binding:"omitempty,max=100"`
	StartTime           *string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime             *string `json:"end_time" binding:"omitempty,datetime=15:04"`
	DaysOfWeek          *string `json:"days_of_week" binding:"omitempty,max=100"`
	ZoomHostAccount     *string `json:"zoom_host_account" binding:"omitempty,max=100"`
	ZoomHostPassword    *string `json:"zoom_host_password" binding:"omitempty,max=100"`
	ZoomMeetingID       *string `json:"zoom_meeting_id" binding:"omitempty,max=100"`
	ZoomMeetingPasscode *string `json:"zoom_meeting_passcode" binding:"omitempty,max=100"`
	ZoomLink            *string `json:"zoom_link" binding:"omitempty,max=500"`
}

// UpdateBatchRequest carries a partial batch update.
type UpdateBatchRequest struct {
	Course              *string `json:"course" binding:"omitempty,max=100"`
	BatchName           *string `json:"batch_name" binding:"omitempty,max=100"`
	Trainer             *int64  `json:"trainer"`
	StartDate           *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	ClassroomName       *string `json:"classroom_name" binding:"omitempty,max=100"`
	StartTime           *string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime             *string `json:"end_time" binding:"omitempty,datetime=15:04"`
	DaysOfWeek          *string `json:"days_of_week" binding:"omitempty,max=100"`
	ZoomHostAccount     *string `json:"zoom_host_account" binding:"omitempty,max=100"`
	ZoomHostPassword    *string `json:"zoom_host_password" binding:"omitempty,max=100"`
	ZoomMeetingID       *string `json:"zoom_meeting_id" binding:"omitempty,max=100"`
	ZoomMeetingPasscode *string `json:"zoom_meeting_passcode" binding:"omitempty,max=100"`
	ZoomLink            *string `json:"zoom_link" binding:"omitempty,max=500"`
}
