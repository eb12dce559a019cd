package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMalformedDate is returned when a date string is not in YYYY-MM-DD form.
	ErrMalformedDate = errors.New("malformed date")
	// ErrMalformedTime is returned when a time string is not in HH:MM:SS form.
	ErrMalformedTime = errors.New("malformed time")
)

// CalendarDate represents a local calendar day.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// String stringifies the date as YYYY-MM-DD, month and day zero padded.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Display renders the date as DD/MM/YYYY.
func (d CalendarDate) Display() string {
	return fmt.Sprintf("%02d/%02d/%d", d.Day, d.Month, d.Year)
}

// ParseCalendarDate parses a strict YYYY-MM-DD date. The year may be of any
// digit length, month and day must be two digits.
func ParseCalendarDate(s string) (CalendarDate, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	fields := make([]int, 3)
	for idx, part := range parts {
		v, err := parseDigits(part)
		if err != nil {
			return CalendarDate{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
		fields[idx] = v
	}

	d := CalendarDate{Year: fields[0], Month: fields[1], Day: fields[2]}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return CalendarDate{}, fmt.Errorf("%w: %q out of range", ErrMalformedDate, s)
	}

	return d, nil
}

// WallTime represents a local wall clock reading.
type WallTime struct {
	Hour   int
	Minute int
	Second int
}

// String stringifies the wall time as HH:MM:SS.
func (w WallTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", w.Hour, w.Minute, w.Second)
}

// ParseWallTime parses a strict HH:MM:SS time.
func ParseWallTime(s string) (WallTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return WallTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	fields := make([]int, 3)
	for idx, part := range parts {
		if len(part) != 2 {
			return WallTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
		}
		v, err := parseDigits(part)
		if err != nil {
			return WallTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
		}
		fields[idx] = v
	}

	w := WallTime{Hour: fields[0], Minute: fields[1], Second: fields[2]}
	if w.Hour > 23 || w.Minute > 59 || w.Second > 59 {
		return WallTime{}, fmt.Errorf("%w: %q out of range", ErrMalformedTime, s)
	}

	return w, nil
}

// parseDigits parses a non-empty run of ascii digits.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty field")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("unexpected character %q", r)
		}
	}

	return strconv.Atoi(s)
}

// Weekday represents a local day of the week, 0 (Sunday) through 6 (Saturday).
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// String stringifies the provided weekday.
func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return "unknown"
	}

	return time.Weekday(w).String()
}
