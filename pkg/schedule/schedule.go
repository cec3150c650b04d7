package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Type discriminates the schedule variants.
type Type string

const (
	Daily   Type = "daily"
	Weekly  Type = "weekly"
	Monthly Type = "monthly"
	Custom  Type = "custom"
)

// Schedule describes when a notification should next fire. Time is a 24h
// "HH:MM" clock string shared by all variants; the remaining fields are
// variant-specific: Days for weekly (0=Sunday..6=Saturday), MonthDay for
// monthly (1..31), At for custom (explicit one-shot trigger, optional).
type Schedule struct {
	Type     Type
	Time     string
	Days     []int
	MonthDay int
	At       *time.Time
}

// Validate checks the schedule definition and reports the first offending
// field. Callers must not compute triggers or persist a schedule that fails
// validation.
func Validate(s Schedule) error {
	if _, _, err := parseClock(s.Time); err != nil {
		return &FieldError{Field: "time", Reason: err.Error()}
	}
	switch s.Type {
	case Daily:
		// nothing beyond the clock
	case Weekly:
		if len(s.Days) == 0 {
			return &FieldError{Field: "days", Reason: "weekly schedule requires at least one weekday"}
		}
		for _, d := range s.Days {
			if d < 0 || d > 6 {
				return &FieldError{Field: "days", Reason: fmt.Sprintf("weekday %d out of range [0,6]", d)}
			}
		}
	case Monthly:
		if s.MonthDay < 1 || s.MonthDay > 31 {
			return &FieldError{Field: "date", Reason: fmt.Sprintf("month day %d out of range [1,31]", s.MonthDay)}
		}
	case Custom:
		// At is optional; when absent the trigger defaults to tomorrow at Time
	default:
		return &FieldError{Field: "type", Reason: fmt.Sprintf("unknown schedule type %q", s.Type)}
	}
	return nil
}

// parseClock parses a 24h "HH:MM" string into hour and minute.
func parseClock(clock string) (hh, mm int, err error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time %q, want HH:MM", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time %q, want HH:MM", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time %q, want HH:MM", clock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", clock)
	}
	return h, m, nil
}
