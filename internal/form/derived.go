package form

import (
	"github.com/diewo77/cartoes/internal/models"
	"github.com/diewo77/cartoes/internal/money"
)

// Derived holds the display values computed from a draft.
type Derived struct {
	FormattedAmount      string // total, 1.234,56
	FormattedInstallment string // per installment; empty for a single payment
	AmountInWords        string // capitalized; empty when the amount cannot be spelled out
}

// Recompute derives the banner and caption values of d.
// Amounts outside money.InRange derive nothing.
func Recompute(d models.Draft) Derived {
	if !money.InRange(d.Amount) {
		return Derived{}
	}
	out := Derived{FormattedAmount: money.FormatBRL(d.Amount)}
	if d.IsInstallment && d.InstallmentCount >= 1 {
		out.FormattedInstallment = money.FormatBRL(money.PerInstallment(d.Amount, d.InstallmentCount))
	}
	if d.Amount.IsPositive() {
		if words, err := money.Words(d.Amount); err == nil {
			out.AmountInWords = money.Capitalize(words)
		}
	}
	return out
}
