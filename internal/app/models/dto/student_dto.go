package dto

// CreateStudentRequest admits an inquiry as a student. Mobile and email
// default to the linked inquiry's values when omitted.
type CreateStudentRequest struct {
	Inquiry        int64   `json:"inquiry" binding:"required"`
	Mobile         string  `json:"mobile" binding:"omitempty,max=15"`
	Email          string  `json:"email" binding:"omitempty,email,max=254"`
	Course         string  `json:"course" binding:"required,max=100"`
	TotalFees      string  `json:"total_fees" binding:"required"`
	Batch          *int64  `json:"batch"`
	EnrollmentDate *string `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
	Status         string  `json:"status" binding:"omitempty,oneof=ACTIVE COMPLETED DROPPED"`
}

// UpdateStudentRequest carries a partial student update.
type UpdateStudentRequest struct {
	Mobile         *string `json:"mobile" binding:"omitempty,max=15"`
	Email          *string `json:"email" binding:"omitempty,email,max=254"`
	Course         *string `json:"course" binding:"omitempty,max=100"`
	TotalFees      *string `json:"total_fees"`
	Batch          *int64  `json:"batch"`
	EnrollmentDate *string `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status" binding:"omitempty,oneof=ACTIVE COMPLETED DROPPED"`
}

// StudentFilterRequest captures supported list filters.
type StudentFilterRequest struct {
	Batch  *int64 `form:"batch"`
	Mobile string `form:"mobile" binding:"omitempty,max=15"`
}
