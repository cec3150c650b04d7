package schedule

import (
	"errors"
	"testing"
)

func TestValidateRejectsMalformedClock(t *testing.T) {
	bad := []string{"", "9", "25:00", "12:60", "ab:cd", "12:3:4", "-1:30"}
	for _, clock := range bad {
		err := Validate(Schedule{Type: Daily, Time: clock})
		if err == nil {
			t.Fatalf("expected error for time %q", clock)
		}
		var fe *FieldError
		if !errors.As(err, &fe) || fe.Field != "time" {
			t.Fatalf("expected time field error for %q got %v", clock, err)
		}
	}
}

func TestValidateAcceptsWellFormedClock(t *testing.T) {
	good := []string{"00:00", "09:30", "23:59", "9:05"}
	for _, clock := range good {
		if err := Validate(Schedule{Type: Daily, Time: clock}); err != nil {
			t.Fatalf("unexpected error for %q: %v", clock, err)
		}
	}
}

func TestValidateWeeklyDays(t *testing.T) {
	err := Validate(Schedule{Type: Weekly, Time: "09:00"})
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "days" {
		t.Fatalf("expected days error for empty set, got %v", err)
	}
	err = Validate(Schedule{Type: Weekly, Time: "09:00", Days: []int{1, 7}})
	if !errors.As(err, &fe) || fe.Field != "days" {
		t.Fatalf("expected days error for out-of-range weekday, got %v", err)
	}
	if err := Validate(Schedule{Type: Weekly, Time: "09:00", Days: []int{0, 6}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMonthlyDate(t *testing.T) {
	var fe *FieldError
	for _, d := range []int{0, -3, 32} {
		err := Validate(Schedule{Type: Monthly, Time: "09:00", MonthDay: d})
		if !errors.As(err, &fe) || fe.Field != "date" {
			t.Fatalf("expected date error for day %d, got %v", d, err)
		}
	}
	if err := Validate(Schedule{Type: Monthly, Time: "09:00", MonthDay: 31}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateUnknownType(t *testing.T) {
	err := Validate(Schedule{Type: "hourly", Time: "09:00"})
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "type" {
		t.Fatalf("expected type error, got %v", err)
	}
}
