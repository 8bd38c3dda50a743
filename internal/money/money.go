// Package money converts between human-entered decimal amounts and the
// integer cent representation used in storage and computation. Amounts
// are never stored or computed in floating point; conversion back to a
// decimal string is purely presentational.
package money

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount is returned when a decimal string cannot be parsed
// into a cent amount.
var ErrInvalidAmount = errors.New("invalid monetary amount")

// ToCents converts a major-unit amount (e.g. 10.50) to cents with
// half-up rounding. Used at API boundaries that accept decimal numbers,
// such as an account's initial balance.
func ToCents(major float64) int64 {
	return int64(math.Round(major * 100))
}

// ParseDecimalToCents converts a decimal string to cents. It accepts
// both dot (12.34) and comma (12,34) separators and performs half-up
// rounding on the third decimal place. Negative values are rejected.
//
// Examples:
//
//	ParseDecimalToCents("10.50") -> 1050, nil
//	ParseDecimalToCents("10,50") -> 1050, nil
//	ParseDecimalToCents("10.505") -> 1051, nil
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}

	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	return iv*100 + fracCents, nil
}

// FormatBRL renders a cent amount as Brazilian currency text, e.g.
// 1050 -> "R$ 10,50" and 123456 -> "R$ 1.234,56". Negative amounts
// carry the sign after the symbol: -1050 -> "R$ -10,50".
func FormatBRL(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	intPart := cents / 100
	fracPart := cents % 100

	digits := strconv.FormatInt(intPart, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return "R$ " + sign + b.String() + "," + twoDigits(fracPart)
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
