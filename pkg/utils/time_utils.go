package utils

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// FormatMinutesOfDay renders a running minute counter as a wall-clock "HH:MM"
// string. Values past midnight wrap around; the calendar date is not advanced.
func FormatMinutesOfDay(total int) string {
	m := total % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseClock converts an "HH:MM" string to minutes since midnight.
// Returns -1 when the string does not parse.
func ParseClock(s string) int {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

// ClockSpanMinutes returns the duration between two "HH:MM" strings,
// treating an end before the start as crossing midnight.
func ClockSpanMinutes(start, end string) int {
	s, e := ParseClock(start), ParseClock(end)
	if s < 0 || e < 0 {
		return 0
	}
	if e < s {
		e += minutesPerDay
	}
	return e - s
}

func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate accepts a "2006-01-02" string, returning the zero time on failure.
func ParseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
