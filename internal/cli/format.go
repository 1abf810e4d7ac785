// Package cli provides terminal formatting and rendering helpers.
package cli

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Currency is the symbol used when formatting money. Set from config at
// startup.
var Currency = "€"

// FormatMoney renders an amount with thousands separators, e.g. "€1,234.56".
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	cents := int(math.Round((v - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	s := groupThousands(whole)
	out := fmt.Sprintf("%s%s.%02d", Currency, s, cents)
	if neg {
		return "-" + out
	}
	return out
}

// FormatSignedMoney always renders an explicit sign, for deltas and
// balances.
func FormatSignedMoney(v float64) string {
	if v >= 0 {
		return "+" + FormatMoney(v)
	}
	return FormatMoney(v)
}

// FormatPercent renders an integer percentage.
func FormatPercent(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// MonthName returns the English month name for 1-12.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("month %d", m)
	}
	return time.Month(m).String()
}

// MonthShort returns the three-letter month abbreviation for 1-12.
func MonthShort(m int) string {
	return MonthName(m)[:3]
}
