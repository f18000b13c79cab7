// Package money formats and spells out Brazilian real amounts.
package money

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxIntegerDigits bounds accepted amounts below one quintillion reais.
const MaxIntegerDigits = 18

const (
	maxScale     = 20
	maxAmountLen = 32
)

var (
	ErrInvalidAmount = errors.New("money: invalid amount")
	ErrTooLarge      = errors.New("money: amount too large")
)

// FormatBRL renders v with exactly two decimal digits using the pt-BR
// separators (1.234,56). Values outside InRange render as "".
func FormatBRL(v decimal.Decimal) string {
	if !InRange(v) {
		return ""
	}
	v = v.Round(2)
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Abs()
	}
	reais := v.IntPart()
	centavos := v.Sub(decimal.NewFromInt(reais)).Shift(2).IntPart()
	p := message.NewPrinter(language.BrazilianPortuguese)
	return sign + p.Sprint(number.Decimal(reais)) + fmt.Sprintf(",%02d", centavos)
}

// PerInstallment divides total into n equal parts. A count below 1 returns the total.
func PerInstallment(total decimal.Decimal, n int) decimal.Decimal {
	if n < 1 {
		return total
	}
	return total.Div(decimal.NewFromInt(int64(n)))
}

// ParseAmount accepts both "1250.50" and "1.250,50" spellings. Exponent
// notation and values outside InRange are refused.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if len(s) > maxAmountLen || strings.ContainsAny(s, "eE") {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if !InRange(v) {
		return decimal.Zero, ErrTooLarge
	}
	return v, nil
}

// InRange reports whether |v| < 10^MaxIntegerDigits with at most
// maxScale fractional digits. It only looks at the coefficient and
// exponent, so it never expands v.
func InRange(v decimal.Decimal) bool {
	exp := int64(v.Exponent())
	if exp < -maxScale {
		return false
	}
	return v.IsZero() || int64(v.NumDigits())+exp <= MaxIntegerDigits
}

// HasCents reports whether v has no digits below the centavo.
func HasCents(v decimal.Decimal) bool {
	if v.Exponent() >= -2 {
		return true
	}
	if !InRange(v) {
		return false
	}
	return v.Equal(v.Round(2))
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
