package schedule

import (
	"testing"
	"time"
)

// 2026-08-25 is a Tuesday.
func tue(h, m int) time.Time {
	return time.Date(2026, time.August, 25, h, m, 0, 0, time.UTC)
}

func TestDailyRollsToTomorrow(t *testing.T) {
	s := Schedule{Type: Daily, Time: "09:00"}

	got, err := Next(s, tue(10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.August, 26, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v got %v", want, got)
	}

	got, err = Next(s, tue(8, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = tue(9, 0)
	if !got.Equal(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestDailyAlwaysWithin24h(t *testing.T) {
	s := Schedule{Type: Daily, Time: "00:00"}
	nows := []time.Time{tue(0, 0), tue(12, 31), tue(23, 59)}
	for _, now := range nows {
		got, err := Next(s, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.After(now) {
			t.Fatalf("trigger %v not after now %v", got, now)
		}
		if got.Sub(now) > 24*time.Hour {
			t.Fatalf("trigger %v more than 24h after now %v", got, now)
		}
	}
}

func TestWeeklyPicksNextListedDay(t *testing.T) {
	s := Schedule{Type: Weekly, Time: "09:00", Days: []int{1, 3}} // Mon, Wed

	// Tuesday 10:00 -> next Wednesday 09:00
	got, err := Next(s, tue(10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.August, 26, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected Wed %v got %v", want, got)
	}

	// Monday 08:00 -> same Monday 09:00 (2026-08-24 is a Monday)
	mon := time.Date(2026, time.August, 24, 8, 0, 0, 0, time.UTC)
	got, err = Next(s, mon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected same Monday %v got %v", want, got)
	}
}

func TestWeeklySingleDayWrapsSevenDays(t *testing.T) {
	s := Schedule{Type: Weekly, Time: "09:00", Days: []int{2}} // Tuesday only
	got, err := Next(s, tue(10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected next Tuesday %v got %v", want, got)
	}
}

func TestMonthlyClampsToShortMonth(t *testing.T) {
	s := Schedule{Type: Monthly, Time: "08:00", MonthDay: 31}
	// September has 30 days
	now := time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)
	got, err := Next(s, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.September, 30, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected clamp to Sep 30, got %v", got)
	}
}

func TestMonthlyAdvancesAndReclamps(t *testing.T) {
	s := Schedule{Type: Monthly, Time: "08:00", MonthDay: 31}
	// Jan 31 08:00 already passed -> Feb 28 (2027 is not a leap year)
	now := time.Date(2027, time.January, 31, 9, 0, 0, 0, time.UTC)
	got, err := Next(s, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2027, time.February, 28, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected Feb 28, got %v", got)
	}
}

func TestMonthlyDecemberWrapsToJanuary(t *testing.T) {
	s := Schedule{Type: Monthly, Time: "08:00", MonthDay: 5}
	now := time.Date(2026, time.December, 20, 0, 0, 0, 0, time.UTC)
	got, err := Next(s, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2027, time.January, 5, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected Jan 5 next year, got %v", got)
	}
}

func TestCustomUsesExplicitTriggerOrDefaultsTomorrow(t *testing.T) {
	at := time.Date(2026, time.September, 3, 18, 30, 0, 0, time.UTC)
	s := Schedule{Type: Custom, Time: "18:30", At: &at}
	got, err := Next(s, tue(10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(at) {
		t.Fatalf("expected explicit trigger %v got %v", at, got)
	}

	s.At = nil
	got, err = Next(s, tue(10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.August, 26, 18, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected tomorrow at 18:30 %v got %v", want, got)
	}
}

func TestNextIsDeterministic(t *testing.T) {
	s := Schedule{Type: Weekly, Time: "07:15", Days: []int{0, 4, 6}}
	now := tue(13, 37)
	first, err := Next(s, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Next(s, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again.Equal(first) {
			t.Fatalf("call %d: expected %v got %v", i, first, again)
		}
	}
}
