package util_test

import (
	"testing"
	"time"

	"github.com/dealwatch/dealwatch/internal/util"
)

func TestFormatPrice_Nil(t *testing.T) {
	if got := util.FormatPrice("$", nil); got != "—" {
		t.Errorf("FormatPrice(nil) = %q, want dash", got)
	}
}

func TestFormatPrice_Value(t *testing.T) {
	price := 1.9
	if got := util.FormatPrice("$", &price); got != "$1.90" {
		t.Errorf("FormatPrice = %q, want %q", got, "$1.90")
	}
	if got := util.FormatPrice("€", &price); got != "€1.90" {
		t.Errorf("FormatPrice = %q, want %q", got, "€1.90")
	}
}

func TestAgo(t *testing.T) {
	cases := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{50 * time.Hour, "2d ago"},
	}
	for _, tc := range cases {
		if got := util.Ago(time.Now().Add(-tc.age)); got != tc.want {
			t.Errorf("Ago(-%v) = %q, want %q", tc.age, got, tc.want)
		}
	}
}

func TestAgo_Zero(t *testing.T) {
	if got := util.Ago(time.Time{}); got != "never" {
		t.Errorf("Ago(zero) = %q, want %q", got, "never")
	}
}
