package planner

import (
	"testing"
	"time"

	"github.com/shashank-padala/insurus-sub000/catalog"
)

func TestExpandOccurrencesMonthly(t *testing.T) {
	first := day(2024, time.January, 31)
	boundary := first.AddDate(1, 0, 0)

	got := expandOccurrences(catalog.FrequencyMonthly, first, boundary)
	if len(got) != 12 {
		t.Fatalf("monthly occurrences = %d, want 12", len(got))
	}
	// a Jan 31 start must still hit every month of the year
	wantMonths := []time.Month{
		time.January, time.February, time.March, time.April, time.May, time.June,
		time.July, time.August, time.September, time.October, time.November, time.December,
	}
	for i, occ := range got {
		if occ.Month() != wantMonths[i] {
			t.Errorf("occurrence %d in %s, want %s", i, occ.Month(), wantMonths[i])
		}
	}
}

func TestExpandOccurrencesQuarterly(t *testing.T) {
	first := day(2024, time.March, 15)
	got := expandOccurrences(catalog.FrequencyQuarterly, first, first.AddDate(1, 0, 0))
	if len(got) != 4 {
		t.Fatalf("quarterly occurrences = %d, want 4", len(got))
	}
	if got[1].Month() != time.June || got[3].Month() != time.December {
		t.Errorf("quarterly months = %s, %s, %s, %s",
			got[0].Month(), got[1].Month(), got[2].Month(), got[3].Month())
	}
}

func TestExpandOccurrencesAnnually(t *testing.T) {
	first := day(2024, time.February, 10)
	got := expandOccurrences(catalog.FrequencyAnnually, first, first.AddDate(1, 0, 0))
	if len(got) != 1 {
		t.Fatalf("annual occurrences = %d, want 1", len(got))
	}
	if got[0].Year() != 2025 {
		t.Errorf("annual occurrence in %d, want 2025", got[0].Year())
	}
}

func TestExpandOccurrencesAsNeeded(t *testing.T) {
	first := day(2024, time.February, 10)
	got := expandOccurrences(catalog.FrequencyAsNeeded, first, first.AddDate(1, 0, 0))
	if len(got) != 1 || !got[0].Equal(first) {
		t.Fatalf("as_needed occurrences = %v, want [%s]", got, first.Format("2006-01-02"))
	}
}

func TestTaskDueDates(t *testing.T) {
	occ := day(2024, time.March, 31)

	if got := taskDueDate(catalog.FrequencyMonthly, occ); got.Day() != 15 || got.Month() != time.March {
		t.Errorf("monthly due = %s, want March 15", got.Format("2006-01-02"))
	}
	// quarterly: last day of the second month of the window
	if got := taskDueDate(catalog.FrequencyQuarterly, occ); got.Month() != time.April || got.Day() != 30 {
		t.Errorf("quarterly due = %s, want April 30", got.Format("2006-01-02"))
	}
	if got := taskDueDate(catalog.FrequencyAnnually, day(2025, time.February, 28)); got.Month() != time.December || got.Day() != 31 {
		t.Errorf("annual due = %s, want Dec 31", got.Format("2006-01-02"))
	}
	if got := taskDueDate(catalog.FrequencyAsNeeded, day(2024, time.February, 10)); got.Day() != 29 {
		t.Errorf("as_needed due = %s, want Feb 29", got.Format("2006-01-02"))
	}
}
