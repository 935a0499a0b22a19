package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Count formats a popularity count with thousands separators for display
// (e.g. 75430210 -> "75,430,210").
func Count(n int64) string {
	return humanize.Comma(n)
}

// Number formats an int with K/M suffixes for display (e.g. 1500 -> "1.5K").
func Number(n int64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}

// Price formats a currency amount (e.g. 45260.5 -> "$45,260.5").
func Price(amount float64) string {
	return "$" + humanize.CommafWithDigits(amount, 2)
}

// Truncate returns s truncated to max characters with "..." suffix.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
