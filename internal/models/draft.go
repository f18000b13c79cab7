package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinInstallments      = 2
	MaxInstallments      = 48
	MaxDescriptionLength = 500

	// DateLayout is the DD/MM/YYYY format written to the ledger.
	DateLayout = "02/01/2006"
)

// Draft is the purchase being edited in a form session.
// Empty Buyer or Card means the "please select" option is still chosen.
type Draft struct {
	PurchaseDate     time.Time       `json:"purchase_date"`
	Buyer            string          `json:"buyer"`
	Card             string          `json:"card"`
	Amount           decimal.Decimal `json:"amount"`
	IsInstallment    bool            `json:"is_installment"`
	InstallmentCount int             `json:"installment_count"`
	Description      string          `json:"description"`
}

// NewDraft returns a blank draft dated on the calendar day of today.
func NewDraft(today time.Time) Draft {
	y, m, d := today.Date()
	return Draft{
		PurchaseDate:     time.Date(y, m, d, 0, 0, 0, 0, today.Location()),
		Amount:           decimal.Zero,
		InstallmentCount: 1,
	}
}

// ParseDate accepts an ISO date (as sent by date inputs) or DD/MM/YYYY.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(DateLayout, raw, time.Local)
}

// Installments is the count persisted for the purchase: 1 for a single payment.
func (d Draft) Installments() int {
	if !d.IsInstallment {
		return 1
	}
	return d.InstallmentCount
}
