package planner

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClampsEndOfMonth(t *testing.T) {
	cases := []struct {
		start time.Time
		n     int
		want  time.Time
	}{
		{day(2024, time.January, 31), 1, day(2024, time.February, 29)}, // leap year
		{day(2023, time.January, 31), 1, day(2023, time.February, 28)},
		{day(2024, time.January, 31), 2, day(2024, time.March, 31)},
		{day(2024, time.March, 31), 1, day(2024, time.April, 30)},
		{day(2024, time.January, 15), 1, day(2024, time.February, 15)},
		{day(2024, time.January, 31), 0, day(2024, time.January, 31)},
	}
	for _, tc := range cases {
		if got := addMonths(tc.start, tc.n); !got.Equal(tc.want) {
			t.Errorf("addMonths(%s, %d) = %s, want %s",
				tc.start.Format("2006-01-02"), tc.n, got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
		}
	}
}

func TestEndOfMonth(t *testing.T) {
	if got := endOfMonth(day(2024, time.February, 3)); got.Day() != 29 {
		t.Errorf("endOfMonth Feb 2024 = %d, want 29", got.Day())
	}
	if got := endOfMonth(day(2023, time.February, 3)); got.Day() != 28 {
		t.Errorf("endOfMonth Feb 2023 = %d, want 28", got.Day())
	}
	if got := endOfMonth(day(2024, time.December, 31)); got.Day() != 31 {
		t.Errorf("endOfMonth Dec = %d, want 31", got.Day())
	}
}

func TestMonthStart(t *testing.T) {
	got := monthStart(day(2024, time.July, 19))
	if got.Day() != 1 || got.Month() != time.July {
		t.Errorf("monthStart = %s", got.Format("2006-01-02"))
	}
}
