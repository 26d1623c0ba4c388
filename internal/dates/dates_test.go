package dates

import (
	"errors"
	"testing"
	"time"
)

var parseNow = time.Date(2026, time.June, 15, 14, 30, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"today", "today", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"today mixed case", "  Today ", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", "tomorrow", time.Date(2026, time.June, 16, 0, 0, 0, 0, time.UTC)},
		{"plus days", "+7", time.Date(2026, time.June, 22, 0, 0, 0, 0, time.UTC)},
		{"plus zero", "+0", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"absolute", "2026-12-24", time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC)},
		{"month day ahead", "09-01", time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)},
		{"month day past rolls over", "01-05", time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{"month day today stays", "06-15", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.input, parseNow)
			if err != nil {
				t.Fatalf("parse %q failed: %v", test.input, err)
			}
			if !got.Equal(test.want) {
				t.Errorf("parse %q = %v, want %v", test.input, got, test.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "someday", "+abc", "+-3", "2026-13-40", "next week"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input, parseNow)
			if !errors.Is(err, ErrUnrecognizedDate) {
				t.Errorf("parse %q: expected ErrUnrecognizedDate, got %v", input, err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	date := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	if got := Format(date, ""); got != "2026-06-15" {
		t.Errorf("default layout: got %q", got)
	}
	if got := Format(date, "02 Jan 2006"); got != "15 Jun 2026" {
		t.Errorf("custom layout: got %q", got)
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"same day ignores clock time", time.Date(2026, time.June, 15, 23, 59, 0, 0, time.UTC), 0},
		{"tomorrow", time.Date(2026, time.June, 16, 0, 0, 0, 0, time.UTC), 1},
		{"next week", time.Date(2026, time.June, 22, 0, 0, 0, 0, time.UTC), 7},
		{"yesterday", time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC), -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := DaysUntil(test.date, parseNow); got != test.want {
				t.Errorf("expected %d, got %d", test.want, got)
			}
		})
	}
}

func TestRelative(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"today", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), "today"},
		{"tomorrow", time.Date(2026, time.June, 16, 0, 0, 0, 0, time.UTC), "tomorrow"},
		{"future", time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC), "5d"},
		{"overdue", time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC), "3d late"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Relative(test.date, parseNow); got != test.want {
				t.Errorf("expected %q, got %q", test.want, got)
			}
		})
	}
}
