package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRecord is the SQL copy of an appended LedgerRow.
// Rows are only ever inserted.
type LedgerRecord struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time       `json:"created_at"`
	PurchaseDate     string          `gorm:"size:10;not null" json:"purchase_date"`
	Buyer            string          `gorm:"size:100;index" json:"buyer"`
	Card             string          `gorm:"size:100;index" json:"card"`
	Amount           decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	InstallmentFlag  string          `gorm:"size:8;not null" json:"installment_flag"`
	InstallmentCount int             `gorm:"not null;default:1" json:"installment_count"`
	Description      string          `gorm:"size:500" json:"description"`
	AmountInWords    string          `gorm:"size:500" json:"amount_in_words"`
}

func (LedgerRecord) TableName() string { return "ledger_rows" }

// RecordFromRow maps a LedgerRow onto its table columns.
func RecordFromRow(r LedgerRow) LedgerRecord {
	return LedgerRecord{
		PurchaseDate:     r.Date,
		Buyer:            r.Buyer,
		Card:             r.Card,
		Amount:           r.Amount,
		InstallmentFlag:  r.InstallmentFlag(),
		InstallmentCount: r.InstallmentCount,
		Description:      r.Description,
		AmountInWords:    r.AmountInWords,
	}
}
