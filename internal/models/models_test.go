package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewDraft(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)
	d := NewDraft(now)
	if !d.PurchaseDate.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("PurchaseDate = %v, want midnight of today", d.PurchaseDate)
	}
	if d.Buyer != "" || d.Card != "" || d.Description != "" {
		t.Errorf("expected unset selectors and empty description, got %+v", d)
	}
	if !d.Amount.IsZero() {
		t.Errorf("Amount = %s, want 0", d.Amount)
	}
	if d.IsInstallment || d.Installments() != 1 {
		t.Errorf("expected single payment, got %+v", d)
	}
}

func TestDraft_Installments(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  int
	}{
		{"single payment ignores count", Draft{IsInstallment: false, InstallmentCount: 6}, 1},
		{"installments use count", Draft{IsInstallment: true, InstallmentCount: 6}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.draft.Installments(); got != tt.want {
				t.Errorf("Installments() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRowFromDraft_ValuesOrder(t *testing.T) {
	d := Draft{
		PurchaseDate:     time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		Buyer:            "Débora",
		Card:             "Nubank",
		Amount:           decimal.RequireFromString("1250.505"),
		IsInstallment:    true,
		InstallmentCount: 4,
		Description:      "Geladeira",
	}
	row := RowFromDraft(d, "Mil duzentos e cinquenta reais e cinquenta e um centavos")
	vals := row.Values()
	if len(vals) != 8 {
		t.Fatalf("expected 8 cells, got %d", len(vals))
	}
	if vals[0] != "07/03/2026" {
		t.Errorf("date = %v", vals[0])
	}
	if vals[1] != "Débora" || vals[2] != "Nubank" {
		t.Errorf("buyer/card = %v/%v", vals[1], vals[2])
	}
	if amount, ok := vals[3].(float64); !ok || amount != 1250.51 {
		t.Errorf("amount = %#v, want float64 1250.51", vals[3])
	}
	if vals[4] != "Sim" {
		t.Errorf("flag = %v", vals[4])
	}
	if n, ok := vals[5].(int); !ok || n != 4 {
		t.Errorf("count = %#v", vals[5])
	}
	if vals[6] != "Geladeira" {
		t.Errorf("description = %v", vals[6])
	}
	if vals[7] != "Mil duzentos e cinquenta reais e cinquenta e um centavos" {
		t.Errorf("words = %v", vals[7])
	}
}

func TestRowFromDraft_SinglePayment(t *testing.T) {
	d := Draft{Amount: decimal.NewFromInt(10), InstallmentCount: 12}
	row := RowFromDraft(d, "")
	if row.InstallmentFlag() != "Não" || row.InstallmentCount != 1 {
		t.Errorf("expected Não/1, got %s/%d", row.InstallmentFlag(), row.InstallmentCount)
	}
	rec := RecordFromRow(row)
	if rec.InstallmentFlag != "Não" || rec.InstallmentCount != 1 || !rec.Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestParseDateAcceptsBothLayouts(t *testing.T) {
	for _, raw := range []string{"2026-10-18", "18/10/2026"} {
		got, err := ParseDate(raw)
		if err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if got.Format(DateLayout) != "18/10/2026" {
			t.Fatalf("%s: got %s", raw, got.Format(DateLayout))
		}
	}
	if _, err := ParseDate("18-10-2026"); err == nil {
		t.Fatalf("expected error for unknown layout")
	}
}
