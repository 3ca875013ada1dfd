// Package week builds the Monday-start calendar week shown by the planning
// grid header.
package week

import (
	"errors"
	"time"
)

// ErrInvalidAnchor reports an unset anchor date. The engine refuses to
// compute rather than default to an arbitrary week: a silently wrong week
// is worse than a visible failure.
var ErrInvalidAnchor = errors.New("anchor date is not set")

// Week is one active Monday-start week.
type Week struct {
	Days   []time.Time // exactly 7 consecutive days at midnight, Monday first
	Number int         // ISO-8601 week number (Thursday rule)
	Year   int         // ISO-8601 week-numbering year
}

// Start returns the Monday of the week.
func (w Week) Start() time.Time { return w.Days[0] }

// End returns the Sunday of the week.
func (w Week) End() time.Time { return w.Days[6] }

// Build computes the Monday-start week containing anchor. Week navigation is
// the caller's job: advance the anchor by whole weeks before calling.
// A Sunday anchor counts as day 7, not day 0, so the week always starts on
// the preceding Monday regardless of the locale's default week start.
// PRE: anchor is non-zero
// POST: returns 7 consecutive dates, the first a Monday, plus the ISO-8601
// week number of that week
func Build(anchor time.Time) (Week, error) {
	if anchor.IsZero() {
		return Week{}, ErrInvalidAnchor
	}

	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	weekday := int(day.Weekday())
	if weekday == 0 { // Sunday is day 7
		weekday = 7
	}
	monday := day.AddDate(0, 0, 1-weekday)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}

	year, number := monday.ISOWeek()
	return Week{Days: days, Number: number, Year: year}, nil
}
