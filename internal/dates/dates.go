// Package dates parses and renders due dates.
//
// Input accepts a few human shorthands on top of plain dates:
//
//	today          the current day
//	tomorrow       the next day
//	+N             N days from now
//	2026-01-15     an absolute date
//	01-15          month and day; rolls to next year if already past
//
// All parsed dates are midnight in the local time zone.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognizedDate is returned for input that matches no supported
// date form.
var ErrUnrecognizedDate = errors.New("unrecognized date")

const absoluteLayout = "2006-01-02"
const monthDayLayout = "01-02"

// Parse interprets a date expression relative to now.
func Parse(value string, now time.Time) (time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	today := midnight(now)

	switch value {
	case "":
		return time.Time{}, fmt.Errorf("%w: empty input", ErrUnrecognizedDate)
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if strings.HasPrefix(value, "+") {
		days, err := strconv.Atoi(value[1:])
		if err != nil || days < 0 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
		}
		return today.AddDate(0, 0, days), nil
	}

	if parsed, err := time.ParseInLocation(absoluteLayout, value, now.Location()); err == nil {
		return parsed, nil
	}

	if parsed, err := time.ParseInLocation(monthDayLayout, value, now.Location()); err == nil {
		candidate := time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())
		if candidate.Before(today) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q (try today, tomorrow, +N, or 2006-01-02)", ErrUnrecognizedDate, value)
}

// Format renders a date with the given layout, or the default
// YYYY-MM-DD layout when none is set.
func Format(date time.Time, layout string) string {
	if layout == "" {
		layout = absoluteLayout
	}
	return date.Format(layout)
}

// DaysUntil returns the number of whole days from now's date to the
// date. Negative for past dates.
func DaysUntil(date time.Time, now time.Time) int {
	from := midnight(now)
	to := midnight(date)
	return int(to.Sub(from).Hours() / 24)
}

// Relative renders a date compactly relative to now: "today",
// "tomorrow", "3d", or "2d late" for overdue dates.
func Relative(date time.Time, now time.Time) string {
	switch days := DaysUntil(date, now); {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days > 1:
		return fmt.Sprintf("%dd", days)
	default:
		return fmt.Sprintf("%dd late", -days)
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
