package schedule

import (
	"fmt"
	"sort"
	"strings"
)

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Text renders a validated schedule as a display string, e.g.
// "Daily at 9:00 AM", "Weekly on Mon, Wed at 9:00 AM",
// "Monthly on the 21st at 9:00 AM". It is a pure function of its input.
func Text(s Schedule) (string, error) {
	if err := Validate(s); err != nil {
		return "", err
	}
	hh, mm, _ := parseClock(s.Time)
	clock := clock12(hh, mm)

	switch s.Type {
	case Daily:
		return "Daily at " + clock, nil
	case Weekly:
		days := append([]int(nil), s.Days...)
		sort.Ints(days)
		names := make([]string, 0, len(days))
		seen := map[int]bool{}
		for _, d := range days {
			if !seen[d] {
				seen[d] = true
				names = append(names, dayNames[d])
			}
		}
		return "Weekly on " + strings.Join(names, ", ") + " at " + clock, nil
	case Monthly:
		return "Monthly on the " + Ordinal(s.MonthDay) + " at " + clock, nil
	default: // Custom
		if s.At != nil {
			return s.At.Format("Jan 2, 2006") + " at " + clock, nil
		}
		return "Tomorrow at " + clock, nil
	}
}

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 3rd, 11th,
// 21st. The teens always take "th".
func Ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// clock12 renders a 24h clock as "h:mm AM/PM".
func clock12(hh, mm int) string {
	ampm := "AM"
	if hh >= 12 {
		ampm = "PM"
	}
	h := hh % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, mm, ampm)
}
