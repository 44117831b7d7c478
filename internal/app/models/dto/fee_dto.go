package dto

// CreateFeeRequest records a fee installment. DateCollected and the
// collector are server-assigned; clients cannot choose them.
type CreateFeeRequest struct {
	Student int64   `json:"student" binding:"required"`
	Amount  string  `json:"amount" binding:"required"`
	Mode    string  `json:"mode" binding:"required,oneof=CASH UPI NEFT RTGS CHEQUE"`
	UTR     *string `json:"utr" binding:"omitempty,max=100"`
}

// UpdateFeeRequest carries a partial fee update.
type UpdateFeeRequest struct {
	Amount *string `json:"amount"`
	Mode   *string `json:"mode" binding:"omitempty,oneof=CASH UPI NEFT RTGS CHEQUE"`
	UTR    *string `json:"utr" binding:"omitempty,max=100"`
}

// FeeFilterRequest captures supported list filters.
type FeeFilterRequest struct {
	Student *int64 `form:"student"`
}
