package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %s", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour*60 + minute, nil
}

// FormatClock converts minutes from midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate validates a "YYYY-MM-DD" string and returns it at local midnight.
func ParseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s", date)
	}
	return d, nil
}

// CombineDateTime builds the absolute local time for a date plus "HH:MM".
func CombineDateTime(date, clock string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(time.Duration(m) * time.Minute), nil
}
