package domain

import (
	"testing"
	"time"
)

func TestClassifyDue(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	day := func(offset int) *time.Time {
		d := now.AddDate(0, 0, offset)
		return &d
	}

	cases := []struct {
		name string
		due  *time.Time
		want DueStatus
	}{
		{"no due date", nil, DueNone},
		{"yesterday", day(-1), DueOverdue},
		{"last week", day(-7), DueOverdue},
		{"today", day(0), DueToday},
		{"tomorrow", day(1), DueTomorrow},
		{"in five days", day(5), DueUpcoming},
	}

	for _, tc := range cases {
		if got := ClassifyDue(tc.due, now); got != tc.want {
			t.Fatalf("%s: ClassifyDue = %s; want %s", tc.name, got, tc.want)
		}
	}
}

// Time-of-day must not matter: 23:59 today is still today, and one minute
// past midnight tomorrow is tomorrow.
func TestClassifyDueIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)

	lateToday := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	if got := ClassifyDue(&lateToday, now); got != DueToday {
		t.Fatalf("late today = %s; want %s", got, DueToday)
	}

	earlyTomorrow := time.Date(2025, 6, 16, 0, 1, 0, 0, time.UTC)
	if got := ClassifyDue(&earlyTomorrow, now); got != DueTomorrow {
		t.Fatalf("early tomorrow = %s; want %s", got, DueTomorrow)
	}

	justMissed := time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC)
	if got := ClassifyDue(&justMissed, now); got != DueOverdue {
		t.Fatalf("just missed = %s; want %s", got, DueOverdue)
	}
}

func TestTodoDueStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	todo := Todo{}
	if got := todo.DueStatus(now); got != DueNone {
		t.Fatalf("DueStatus without due date = %s; want %s", got, DueNone)
	}

	due := now.AddDate(0, 0, 1)
	todo.DueDate = &due
	if got := todo.DueStatus(now); got != DueTomorrow {
		t.Fatalf("DueStatus = %s; want %s", got, DueTomorrow)
	}
}
