package util

import (
	"fmt"
	"time"
)

// FormatPrice renders an optional monetary amount with the configured
// currency symbol, or a dash when the service has no price yet.
func FormatPrice(symbol string, price *float64) string {
	if price == nil {
		return "—"
	}
	return fmt.Sprintf("%s%.2f", symbol, *price)
}

// Ago renders a timestamp as a coarse relative age ("3h ago").
func Ago(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
