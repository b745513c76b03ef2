package routes

import (
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint before", date(2026, 9, 1), date(2026, 9, 5), date(2026, 9, 10), date(2026, 9, 12), false},
		{"disjoint after", date(2026, 9, 10), date(2026, 9, 12), date(2026, 9, 1), date(2026, 9, 5), false},
		{"back to back", date(2026, 9, 1), date(2026, 9, 5), date(2026, 9, 5), date(2026, 9, 8), false},
		{"partial overlap", date(2026, 9, 1), date(2026, 9, 6), date(2026, 9, 5), date(2026, 9, 8), true},
		{"contained", date(2026, 9, 1), date(2026, 9, 10), date(2026, 9, 3), date(2026, 9, 5), true},
		{"identical", date(2026, 9, 1), date(2026, 9, 5), date(2026, 9, 1), date(2026, 9, 5), true},
	}
	for _, tc := range cases {
		if got := overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestBookingDateLayout(t *testing.T) {
	parsed, err := time.Parse(bookingDateLayout, "2026-09-10")
	if err != nil {
		t.Fatalf("failed to parse well-formed date: %v", err)
	}
	if !parsed.Equal(date(2026, 9, 10)) {
		t.Fatalf("unexpected parse result: %v", parsed)
	}

	if _, err := time.Parse(bookingDateLayout, "10/09/2026"); err == nil {
		t.Fatal("expected parse failure for wrong layout")
	}
}
