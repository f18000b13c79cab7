package models

import "github.com/shopspring/decimal"

const (
	InstallmentYes = "Sim"
	InstallmentNo  = "Não"
)

// LedgerRow is one appended spreadsheet line. Column order is fixed by Values.
type LedgerRow struct {
	Date             string          `json:"date"`
	Buyer            string          `json:"buyer"`
	Card             string          `json:"card"`
	Amount           decimal.Decimal `json:"amount"`
	Installment      bool            `json:"installment"`
	InstallmentCount int             `json:"installment_count"`
	Description      string          `json:"description"`
	AmountInWords    string          `json:"amount_in_words"`
}

// RowFromDraft snapshots d into a ledger row.
func RowFromDraft(d Draft, amountInWords string) LedgerRow {
	return LedgerRow{
		Date:             d.PurchaseDate.Format(DateLayout),
		Buyer:            d.Buyer,
		Card:             d.Card,
		Amount:           d.Amount.Round(2),
		Installment:      d.IsInstallment,
		InstallmentCount: d.Installments(),
		Description:      d.Description,
		AmountInWords:    amountInWords,
	}
}

// InstallmentFlag returns "Sim" or "Não".
func (r LedgerRow) InstallmentFlag() string {
	if r.Installment {
		return InstallmentYes
	}
	return InstallmentNo
}

// Values returns the eight spreadsheet cells:
// date, buyer, card, amount, flag, count, description, words.
func (r LedgerRow) Values() []any {
	return []any{
		r.Date,
		r.Buyer,
		r.Card,
		r.Amount.InexactFloat64(),
		r.InstallmentFlag(),
		r.InstallmentCount,
		r.Description,
		r.AmountInWords,
	}
}
