package tui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/dealwatch/dealwatch/internal/api"
	"github.com/dealwatch/dealwatch/internal/tui"
)

func point(day int, price float64) api.PriceHistoryPoint {
	return api.PriceHistoryPoint{
		Date:     api.Date{Time: time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC)},
		MinPrice: price,
	}
}

func TestSparkline_Empty(t *testing.T) {
	if got := tui.Sparkline(nil, 40); got != "" {
		t.Errorf("empty history should render nothing, got %q", got)
	}
}

func TestSparkline_Legend(t *testing.T) {
	out := tui.Sparkline([]api.PriceHistoryPoint{
		point(1, 9.99),
		point(2, 4.99),
		point(3, 1.97),
	}, 40)
	if !strings.Contains(out, "low 1.97") {
		t.Errorf("legend should name the low, got %q", out)
	}
	if !strings.Contains(out, "high 9.99") {
		t.Errorf("legend should name the high, got %q", out)
	}
	if !strings.Contains(out, "2026-08-01") || !strings.Contains(out, "2026-08-03") {
		t.Errorf("legend should span first to last date, got %q", out)
	}
}

func TestSparkline_NarrowWidthKeepsRecent(t *testing.T) {
	history := []api.PriceHistoryPoint{
		point(1, 100), // should be cut
		point(2, 5),
		point(3, 3),
	}
	out := tui.Sparkline(history, 2)
	if strings.Contains(out, "high 100.00") {
		t.Errorf("oldest point should be dropped at width 2, got %q", out)
	}
	if !strings.Contains(out, "2026-08-02") {
		t.Errorf("legend should start at the first kept point, got %q", out)
	}
}

func TestSparkline_FlatSeries(t *testing.T) {
	out := tui.Sparkline([]api.PriceHistoryPoint{
		point(1, 5),
		point(2, 5),
	}, 40)
	if !strings.Contains(out, "low 5.00") || !strings.Contains(out, "high 5.00") {
		t.Errorf("flat series legend wrong: %q", out)
	}
}
