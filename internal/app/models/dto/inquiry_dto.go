package dto

// CreateInquiryRequest represents a new walk-in or phone inquiry.
// CreatedBy may be set explicitly by managers assigning leads; when
// omitted the authenticated user is recorded as the owner.
type CreateInquiryRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	Mobile           string `json:"mobile" binding:"required,max=15"`
	Email            string `json:"email" binding:"omitempty,email,max=254"`
	College          string `json:"college" binding:"omitempty,max=100"`
	Degree           string `json:"degree" binding:"omitempty,max=100"`
	Branch           string `json:"branch" binding:"omitempty,max=100"`
	PassoutYear      *int   `json:"passout_year" binding:"omitempty,min=1950,max=2100"`
	InterestedCourse string `json:"interested_course" binding:"omitempty,max=100"`
	Source           string `json:"source" binding:"omitempty,max=100"`
	CreatedBy        *int64 `json:"created_by"`
}

// UpdateInquiryRequest carries a partial update; nil fields are untouched.
type UpdateInquiryRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=100"`
	Mobile           *string `json:"mobile" binding:"omitempty,max=15"`
	Email            *string `json:"email" binding:"omitempty,email,max=254"`
	College          *string `json:"college" binding:"omitempty,max=100"`
	Degree           *string `json:"degree" binding:"omitempty,max=100"`
	Branch           *string `json:"branch" binding:"omitempty,max=100"`
	PassoutYear      *int    `json:"passout_year" binding:"omitempty,min=1950,max=2100"`
	InterestedCourse *string `json:"interested_course" binding:"omitempty,max=100"`
	Source           *string `json:"source" binding:"omitempty,max=100"`
	CreatedBy        *int64  `json:"created_by"`
}

// AddFollowUpRequest appends a dated note to an inquiry.
type AddFollowUpRequest struct {
	Note string `json:"note" binding:"required"`
}

// InquiryFilterRequest captures supported list filters.
type InquiryFilterRequest struct {
	Search string `form:"search" binding:"omitempty,max=100"`
}
