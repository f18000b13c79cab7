package money

import (
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0,00"},
		{"0.5", "0,50"},
		{"12.3", "12,30"},
		{"999.99", "999,99"},
		{"1000", "1.000,00"},
		{"1250.5", "1.250,50"},
		{"1234567.891", "1.234.567,89"},
		{"100000", "100.000,00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatBRLPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{1,3}(\.\d{3})*,\d{2}$`)
	for _, s := range []string{"0.01", "7", "45.10", "999", "1000.01", "98765.4", "12345678.9"} {
		got := FormatBRL(decimal.RequireFromString(s))
		assert.Regexp(t, pattern, got, "amount %s", s)
	}
}

func TestPerInstallment(t *testing.T) {
	total := decimal.RequireFromString("1000.00")
	assert.Equal(t, "250,00", FormatBRL(PerInstallment(total, 4)))
	assert.Equal(t, "333,33", FormatBRL(PerInstallment(total, 3)))
	assert.True(t, PerInstallment(total, 0).Equal(total))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1250.50", "1250.5"},
		{"1.250,50", "1250.5"},
		{"R$ 10,00", "10"},
		{"", "0"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "%s -> %s", tt.in, got)
	}
	_, err := ParseAmount("abc")
	assert.Error(t, err)
}

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "zero reais"},
		{"0.01", "um centavo"},
		{"0.5", "cinquenta centavos"},
		{"1", "um real"},
		{"2", "dois reais"},
		{"1.01", "um real e um centavo"},
		{"21", "vinte e um reais"},
		{"100", "cem reais"},
		{"101", "cento e um reais"},
		{"150", "cento e cinquenta reais"},
		{"1000", "mil reais"},
		{"1001", "mil e um reais"},
		{"1100", "mil e cem reais"},
		{"1250.5", "mil duzentos e cinquenta reais e cinquenta centavos"},
		{"2500", "dois mil e quinhentos reais"},
		{"1000000", "um milhão de reais"},
		{"2000000", "dois milhões de reais"},
		{"1000000.5", "um milhão de reais e cinquenta centavos"},
		{"1200000", "um milhão e duzentos mil reais"},
		{"3000000001", "três bilhões e um reais"},
		{"2001100", "dois milhões, mil e cem reais"},
		{"1250000", "um milhão, duzentos e cinquenta mil reais"},
		{"5000250", "cinco milhões, duzentos e cinquenta reais"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Words(decimal.RequireFromString(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordsErrors(t *testing.T) {
	_, err := Words(decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, ErrNegative)

	_, err = Words(decimal.New(1, 15))
	assert.ErrorIs(t, err, ErrOutOfRange)

	got, err := Words(decimal.RequireFromString("999999999999999.99"))
	require.NoError(t, err)
	assert.Contains(t, got, "novecentos e noventa e nove trilhões")
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Três reais", Capitalize("três reais"))
	assert.Equal(t, "Útil", Capitalize("útil"))
	assert.Equal(t, "", Capitalize(""))
}

func TestParseAmountRefusesUnboundedInput(t *testing.T) {
	for _, in := range []string{"1e10000000", "1E5", "2e-3", strings.Repeat("9", 40)} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
	_, err := ParseAmount("1000000000000000000")
	assert.ErrorIs(t, err, ErrTooLarge)

	got, err := ParseAmount("999.999.999.999.999.999,99")
	require.NoError(t, err)
	assert.Equal(t, "999.999.999.999.999.999,99", FormatBRL(got))
}

func TestInRangeDoesNotExpand(t *testing.T) {
	assert.False(t, InRange(decimal.New(1, 10000000)))
	assert.False(t, InRange(decimal.New(1, -10000000)))
	assert.False(t, InRange(decimal.New(1, 18)))
	assert.True(t, InRange(decimal.New(1, 17)))
	assert.True(t, InRange(decimal.Zero))
	assert.Empty(t, FormatBRL(decimal.New(1, 10000000)))
}

func TestHasCents(t *testing.T) {
	assert.True(t, HasCents(decimal.RequireFromString("10.5")))
	assert.True(t, HasCents(decimal.RequireFromString("1.500")))
	assert.False(t, HasCents(decimal.RequireFromString("0.001")))
	assert.False(t, HasCents(decimal.RequireFromString("0.004")))
	assert.False(t, HasCents(decimal.New(1, -10000000)))
}

func TestFormatBRLNegative(t *testing.T) {
	assert.Equal(t, "-1.250,50", FormatBRL(decimal.RequireFromString("-1250.5")))
}
