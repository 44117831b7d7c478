package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeMode is the payment mode vocabulary
type FeeMode string

const (
	FeeModeCash   FeeMode = "CASH"
	FeeModeUPI    FeeMode = "UPI"
	FeeModeNEFT   FeeMode = "NEFT"
	FeeModeRTGS   FeeMode = "RTGS"
	FeeModeCheque FeeMode = "CHEQUE"
)

// IsValid reports whether m is a known payment mode.
func (m FeeMode) IsValid() bool {
	switch m {
	case FeeModeCash, FeeModeUPI, FeeModeNEFT, FeeModeRTGS, FeeModeCheque:
		return true
	}
	return false
}

// Fee defines one payment event based on the 'fees' table. DateCollected
// and CollectedByID are server-assigned, never taken from the client.
type Fee struct {
	ID            int64           `json:"id" db:"id"`
	StudentID     int64           `json:"student" db:"student_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Mode          FeeMode         `json:"mode" db:"mode"`
	UTR           *string         `json:"utr,omitempty" db:"utr"`
	DateCollected time.Time       `json:"date_collected" db:"date_collected"`
	CollectedByID *int64          `json:"collected_by" db:"collected_by"`

	CollectedByName *string `json:"collected_by_name,omitempty"`
	StudentName     *string `json:"student_name,omitempty"`
}
