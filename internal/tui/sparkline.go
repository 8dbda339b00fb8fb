package tui

import (
	"fmt"
	"strings"

	"github.com/dealwatch/dealwatch/internal/api"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a daily-minimum price history as a one-line unicode
// chart with a min/max legend. The history arrives date-ascending from
// the service and is rendered as-is; out-of-order dates degrade the
// chart but never fail.
func Sparkline(history []api.PriceHistoryPoint, width int) string {
	if len(history) == 0 {
		return ""
	}
	if width < 1 {
		width = len(history)
	}

	points := history
	if len(points) > width {
		// Keep the most recent points when the terminal is narrow.
		points = points[len(points)-width:]
	}

	lo, hi := points[0].MinPrice, points[0].MinPrice
	for _, p := range points {
		if p.MinPrice < lo {
			lo = p.MinPrice
		}
		if p.MinPrice > hi {
			hi = p.MinPrice
		}
	}

	var b strings.Builder
	span := hi - lo
	for _, p := range points {
		idx := 0
		if span > 0 {
			idx = int((p.MinPrice - lo) / span * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}

	legend := fmt.Sprintf(" low %.2f · high %.2f (%s – %s)",
		lo, hi, points[0].Date, points[len(points)-1].Date)
	return StylePrice.Render(b.String()) + StyleHelp.Render(legend)
}
