// Package format renders amounts and dates for user-facing bot messages.
package format

import (
	"strconv"
	"strings"
	"time"
)

// Money formats an amount with comma thousands separators.
// Whole amounts are rendered without a fraction; fractional amounts keep
// two digits (12500 -> "12,500", 99.5 -> "99.50").
func Money(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	var whole, frac string
	if amount == float64(int64(amount)) {
		whole = strconv.FormatInt(int64(amount), 10)
	} else {
		s := strconv.FormatFloat(amount, 'f', 2, 64)
		parts := strings.SplitN(s, ".", 2)
		whole, frac = parts[0], parts[1]
	}

	grouped := groupThousands(whole)
	if neg {
		grouped = "-" + grouped
	}
	if frac != "" {
		return grouped + "." + frac
	}
	return grouped
}

// Date renders a timestamp as YYYY-MM-DD.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// Percent renders a ratio percentage with one decimal digit ("60.0").
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + n/3)
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
