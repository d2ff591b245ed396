// Package currency formats USD amounts for display. Conversion to other
// currencies is out of scope (SPEC_FULL.md Non-goals: USD pass-through
// only); this mirrors the teacher's pkg/currency/formatter.go, swapped
// from IDR's dot-separated grouping to USD's comma-separated grouping
// with cents.
package currency

import (
	"fmt"
	"math"
)

// FormatUSD renders amount as "$1,234.50", matching the teacher's
// negative-sign-outside-prefix convention.
func FormatUSD(amount float64) string {
	rounded := math.Round(amount*100) / 100

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	intPart := int64(rounded)
	cents := int64(math.Round((rounded - float64(intPart)) * 100))

	intStr := fmt.Sprintf("%d", intPart)
	formatted := addThousandsSeparator(intStr, ",")

	result := fmt.Sprintf("$%s.%02d", formatted, cents)
	if negative {
		result = "-" + result
	}

	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
