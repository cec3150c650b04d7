package schedule

import "time"

// Next computes the earliest instant strictly after now at which the
// schedule fires. It is deterministic: the same (schedule, now) pair always
// yields the same instant, and the current time is never read from the
// system clock. The schedule is validated first; an invalid definition
// returns a *FieldError and a zero time.
func Next(s Schedule, now time.Time) (time.Time, error) {
	if err := Validate(s); err != nil {
		return time.Time{}, err
	}
	hh, mm, _ := parseClock(s.Time)

	switch s.Type {
	case Daily:
		return nextDaily(now, hh, mm), nil
	case Weekly:
		return nextWeekly(now, hh, mm, s.Days), nil
	case Monthly:
		return nextMonthly(now, hh, mm, s.MonthDay), nil
	default: // Custom
		if s.At != nil {
			return *s.At, nil
		}
		return atClock(now, hh, mm).AddDate(0, 0, 1), nil
	}
}

// atClock returns the instant at hh:mm on now's calendar day, in now's
// location.
func atClock(now time.Time, hh, mm int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, hh, mm, 0, 0, now.Location())
}

func nextDaily(now time.Time, hh, mm int) time.Time {
	t := atClock(now, hh, mm)
	if !t.After(now) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// nextWeekly scans today and the following seven days and returns the first
// candidate whose weekday is in days and whose clock time is still ahead of
// now. The eighth day covers the wrap when the only matching weekday is
// today with the time already passed.
func nextWeekly(now time.Time, hh, mm int, days []int) time.Time {
	in := make(map[int]bool, len(days))
	for _, d := range days {
		in[d] = true
	}
	for offset := 0; offset <= 7; offset++ {
		t := atClock(now, hh, mm).AddDate(0, 0, offset)
		if in[int(t.Weekday())] && t.After(now) {
			return t
		}
	}
	// unreachable for a validated schedule
	return atClock(now, hh, mm).AddDate(0, 0, 7)
}

// nextMonthly clamps the requested day to the length of the candidate month
// and re-clamps after advancing, so "day 31" fires on the 30th of a 30-day
// month and on the 28th (or 29th) of February.
func nextMonthly(now time.Time, hh, mm, day int) time.Time {
	y, m, _ := now.Date()
	t := time.Date(y, m, clampDay(y, m, day), hh, mm, 0, 0, now.Location())
	if t.After(now) {
		return t
	}
	ny, nm := y, m+1
	if nm > time.December {
		ny, nm = y+1, time.January
	}
	return time.Date(ny, nm, clampDay(ny, nm, day), hh, mm, 0, 0, now.Location())
}

// clampDay limits day to the last valid day of the given month.
func clampDay(y int, m time.Month, day int) int {
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
