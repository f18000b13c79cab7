package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidators(t *testing.T) {
	v := Violations{}
	Required("buyer", "  ", v)
	PositiveDecimal("amount", decimal.Zero, v)
	RangeInt("installments", 49, 2, 48, v)
	MaxRunes("description", strings.Repeat("é", 501), 500, v)
	OneOf("card", "Amex", []string{"Nubank", "Digio"}, v)

	want := map[string]string{
		"buyer":        "required",
		"amount":       "must_be_positive",
		"installments": "out_of_range",
		"description":  "too_long",
		"card":         "invalid_option",
	}
	for field, code := range want {
		if v[field] != code {
			t.Errorf("%s: got %q want %q", field, v[field], code)
		}
	}
}

func TestValidatorsAccept(t *testing.T) {
	v := Violations{}
	Required("buyer", "Telma", v)
	PositiveDecimal("amount", decimal.RequireFromString("0.01"), v)
	RangeInt("installments", 48, 2, 48, v)
	MaxRunes("description", strings.Repeat("é", 500), 500, v)
	OneOf("card", "Digio", []string{"Nubank", "Digio"}, v)
	OneOf("card", "", []string{"Nubank"}, v)
	if !v.Empty() {
		t.Fatalf("expected no violations, got %v", v)
	}
}
