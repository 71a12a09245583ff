package domain

import "time"

// DueStatus is the display bucket for a todo's due date.
type DueStatus string

const (
	DueNone     DueStatus = "none"
	DueOverdue  DueStatus = "overdue"
	DueToday    DueStatus = "today"
	DueTomorrow DueStatus = "tomorrow"
	DueUpcoming DueStatus = "upcoming"
)

// ClassifyDue buckets a due date relative to now. Both timestamps are
// truncated to UTC midnight first, so only the calendar date matters.
func ClassifyDue(due *time.Time, now time.Time) DueStatus {
	if due == nil {
		return DueNone
	}

	d := midnightUTC(*due)
	today := midnightUTC(now)
	tomorrow := today.AddDate(0, 0, 1)

	switch {
	case d.Before(today):
		return DueOverdue
	case d.Equal(today):
		return DueToday
	case d.Equal(tomorrow):
		return DueTomorrow
	default:
		return DueUpcoming
	}
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DueStatus returns the bucket for the todo at the given instant.
func (t *Todo) DueStatus(now time.Time) DueStatus {
	return ClassifyDue(t.DueDate, now)
}
