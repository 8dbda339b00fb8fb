package api_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dealwatch/dealwatch/internal/api"
)

func TestTimestamp_RFC3339(t *testing.T) {
	var ts api.Timestamp
	if err := json.Unmarshal([]byte(`"2026-08-29T18:30:00Z"`), &ts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if ts.UTC().Hour() != 18 {
		t.Errorf("Hour = %d, want 18", ts.UTC().Hour())
	}
}

func TestTimestamp_NaiveWithMicros(t *testing.T) {
	var ts api.Timestamp
	if err := json.Unmarshal([]byte(`"2026-08-29T18:30:00.123456"`), &ts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if ts.Minute() != 30 || ts.Nanosecond() == 0 {
		t.Errorf("parsed = %v, want fractional seconds kept", ts.Time)
	}
}

func TestTimestamp_Null(t *testing.T) {
	var ts api.Timestamp
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("null should decode to zero time, got %v", ts.Time)
	}
}

func TestTimestamp_Garbage(t *testing.T) {
	var ts api.Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}

func TestDate_RoundTrip(t *testing.T) {
	var d api.Date
	if err := json.Unmarshal([]byte(`"2026-08-27"`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d.Day() != 27 || d.Month() != time.August {
		t.Errorf("parsed = %v", d.Time)
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `"2026-08-27"` {
		t.Errorf("Marshal = %s, want \"2026-08-27\"", out)
	}
}
