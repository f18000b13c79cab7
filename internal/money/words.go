package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNegative is returned when spelling out an amount below zero.
	ErrNegative = errors.New("money: negative amount")
	// ErrOutOfRange is returned for amounts of one quadrillion reais or more.
	ErrOutOfRange = errors.New("money: amount out of range")
)

var wordsLimit = decimal.New(1, 15)

var (
	units = [...]string{
		"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
		"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
	}
	tens = [...]string{
		"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa",
	}
	hundreds = [...]string{
		"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos",
		"seiscentos", "setecentos", "oitocentos", "novecentos",
	}
	scales = [...][2]string{
		{"", ""},
		{"mil", "mil"},
		{"milhão", "milhões"},
		{"bilhão", "bilhões"},
		{"trilhão", "trilhões"},
	}
)

// Words spells out v as a Brazilian Portuguese currency phrase, e.g.
// 1250.50 -> "mil duzentos e cinquenta reais e cinquenta centavos".
// Amounts are rounded to centavos first.
func Words(v decimal.Decimal) (string, error) {
	if v.IsNegative() {
		return "", ErrNegative
	}
	v = v.Round(2)
	if v.GreaterThanOrEqual(wordsLimit) {
		return "", ErrOutOfRange
	}
	reais := v.IntPart()
	centavos := v.Sub(decimal.NewFromInt(reais)).Shift(2).IntPart()

	var parts []string
	if reais > 0 {
		unit := "reais"
		switch {
		case reais == 1:
			unit = "real"
		case reais >= 1_000_000 && reais%1_000_000 == 0:
			unit = "de reais"
		}
		parts = append(parts, Cardinal(reais)+" "+unit)
	}
	if centavos > 0 {
		unit := "centavos"
		if centavos == 1 {
			unit = "centavo"
		}
		parts = append(parts, Cardinal(centavos)+" "+unit)
	}
	if len(parts) == 0 {
		return "zero reais", nil
	}
	return strings.Join(parts, " e "), nil
}

// Cardinal spells out a non-negative integer below one quadrillion.
func Cardinal(n int64) string {
	if n == 0 {
		return units[0]
	}
	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	// Groups of a million or more are followed by a comma; the last group
	// takes "e" when it is below a hundred or a round hundred.
	var out strings.Builder
	prevScale := -1
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		if prevScale >= 0 {
			last := true
			for _, rest := range groups[:i] {
				if rest != 0 {
					last = false
					break
				}
			}
			switch {
			case last && (g < 100 || g%100 == 0):
				out.WriteString(" e ")
			case prevScale >= 2:
				out.WriteString(", ")
			default:
				out.WriteString(" ")
			}
		}
		out.WriteString(group(g, i))
		prevScale = i
	}
	return out.String()
}

func group(g int64, scale int) string {
	switch {
	case scale == 0:
		return triplet(g)
	case scale == 1 && g == 1:
		return scales[1][0]
	case g == 1:
		return triplet(g) + " " + scales[scale][0]
	default:
		return triplet(g) + " " + scales[scale][1]
	}
}

// triplet spells out 1..999.
func triplet(n int64) string {
	if n == 100 {
		return "cem"
	}
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}
	r := n % 100
	switch {
	case r == 0:
	case r < 20:
		parts = append(parts, units[r])
	default:
		t := tens[r/10]
		if u := r % 10; u > 0 {
			t += " e " + units[u]
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, " e ")
}
