package dto

// CreateOutreachRequest logs a placement outreach activity. The officer
// and the date are server-assigned.
type CreateOutreachRequest struct {
	CompanyName string `json:"company_name" binding:"required,max=150"`
	ContactName string `json:"contact_name" binding:"omitempty,max=100"`
	Mode        string `json:"mode" binding:"required,oneof=CALL EMAIL LINKEDIN VISIT"`
	PhoneEmail  string `json:"phone_email" binding:"omitempty,max=150"`
	Remark      string `json:"remark"`
}

// UpdateOutreachRequest carries a partial outreach update.
type UpdateOutreachRequest struct {
	CompanyName *string `json:"company_name" binding:"omitempty,max=150"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=100"`
	Mode        *string `json:"mode" binding:"omitempty,oneof=CALL EMAIL LINKEDIN VISIT"`
	PhoneEmail  *string `json:"phone_email" binding:"omitempty,max=150"`
	Remark      *string `json:"remark"`
}
