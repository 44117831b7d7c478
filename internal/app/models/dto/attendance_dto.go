package dto

// CreateAttendanceRequest marks a student's attendance for a date.
// The trainer is always the authenticated user.
type CreateAttendanceRequest struct {
	Batch       int64   `json:"batch" binding:"required"`
	Student     int64   `json:"student" binding:"required"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	LectureTime *string `json:"lecture_time" binding:"omitempty,datetime=15:04"`
	Status      string  `json:"status" binding:"required,oneof=PRESENT_ONLINE PRESENT_OFFLINE ABSENT"`
	TopicTaught string  `json:"topic_taught" binding:"omitempty,max=200"`
	Remarks     string  `json:"remarks"`
}

// UpdateAttendanceRequest carries a partial attendance update.
type UpdateAttendanceRequest struct {
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	LectureTime *string `json:"lecture_time" binding:"omitempty,datetime=15:04"`
	Status      *string `json:"status" binding:"omitempty,oneof=PRESENT_ONLINE PRESENT_OFFLINE ABSENT"`
	TopicTaught *string `json:"topic_taught" binding:"omitempty,max=200"`
	Remarks     *string `json:"remarks"`
}

// AttendanceFilterRequest captures supported list filters.
type AttendanceFilterRequest struct {
	Batch   *int64  `form:"batch"`
	Student *int64  `form:"student"`
	Date    *string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}
