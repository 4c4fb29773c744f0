package habit

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical form of a date key. Date keys are the
// only keys into the event log.
const DateKeyLayout = "2006-01-02"

// DayKey formats t as a date key in t's location.
func DayKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// RelativeDayKey returns the date key for ref shifted by offset days.
func RelativeDayKey(ref time.Time, offset int) string {
	return DayKey(ref.AddDate(0, 0, offset))
}

// ParseDayKey parses a date key in the local timezone of ref use.
// Malformed keys are a caller contract violation; the zero time comes
// back rather than an error.
func ParseDayKey(key string) time.Time {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsFutureDate reports whether the day named by key is strictly after
// the day containing now, compared at day granularity.
func IsFutureDate(key string, now time.Time) bool {
	day := ParseDayKey(key)
	return startOfDay(day, now.Location()).After(startOfDay(now, now.Location()))
}

// IsSameDay reports whether key names the day containing now.
func IsSameDay(key string, now time.Time) bool {
	return key == DayKey(now)
}

// DisplayLabel renders a day header like
// "Monday · 2 June 2025 · Day 153 of 365".
//
// The denominator uses a plain year%4 leap test. That is what the
// shipped app always displayed, so century years keep the historical
// (wrong for 1900/2100) answer.
func DisplayLabel(t time.Time) string {
	total := 365
	if t.Year()%4 == 0 {
		total = 366
	}
	return fmt.Sprintf("%s · %d %s %d · Day %d of %d",
		t.Weekday().String(), t.Day(), t.Month().String(), t.Year(), t.YearDay(), total)
}

// EndOfDayCountdown formats the time remaining until local midnight as
// HH:MM:SS.
func EndOfDayCountdown(now time.Time) string {
	next := startOfDay(now, now.Location()).AddDate(0, 0, 1)
	diff := int(next.Sub(now).Seconds())
	if diff < 0 {
		diff = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", diff/3600, (diff%3600)/60, diff%60)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func daysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
