package session

import (
	"errors"
	"strings"
)

// Day of week constants
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// ValidDays contains all valid day values, Monday first.
var ValidDays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// PoleAll is the filter sentinel matching every pole.
const PoleAll = "all"

// FallbackTeamLabel is displayed for sessions without a team reference.
const FallbackTeamLabel = "Sans équipe"

// Domain errors
var (
	ErrInvalidDay     = errors.New("day must be a valid day of the week")
	ErrEmptyStartTime = errors.New("start time cannot be empty")
	ErrEmptyEndTime   = errors.New("end time cannot be empty")
)

// Team is the back-reference a session may carry. The planning engine never
// mutates it; a missing team is valid and renders with FallbackTeamLabel.
type Team struct {
	ID       string
	Name     string
	Category string
}

// Session represents one time-boxed calendar entry (training, match or event)
// tagged to a weekday. SessionDate pins the entry to a concrete week; when
// empty the entry recurs every week.
type Session struct {
	ID          string
	Day         string // monday, tuesday, etc.
	SessionDate string // YYYY-MM-DD, empty for recurring weekly entries
	Pole        string
	StartTime   string // HH:MM format
	EndTime     string // HH:MM format
	Location    string
	Staff       []string // display names, order preserved
	Note        string
	Team        *Team // optional
}

// Validate checks if the Session has valid data.
// PRE: Session struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Session) Validate() error {
	if !isValidDay(s.Day) {
		return ErrInvalidDay
	}
	if strings.TrimSpace(s.StartTime) == "" {
		return ErrEmptyStartTime
	}
	if strings.TrimSpace(s.EndTime) == "" {
		return ErrEmptyEndTime
	}
	return nil
}

// TeamLabel returns the team name, or the fallback label when the session
// has no team reference.
func (s *Session) TeamLabel() string {
	if s.Team == nil || s.Team.Name == "" {
		return FallbackTeamLabel
	}
	return s.Team.Name
}

// SearchText returns the lowercased haystack used by free-text filtering:
// team name, team category, location, staff names and note.
func (s *Session) SearchText() string {
	parts := make([]string, 0, 5+len(s.Staff))
	if s.Team != nil {
		parts = append(parts, s.Team.Name, s.Team.Category)
	}
	parts = append(parts, s.Location)
	parts = append(parts, s.Staff...)
	parts = append(parts, s.Note)
	return strings.ToLower(strings.Join(parts, " "))
}

func isValidDay(day string) bool {
	for _, d := range ValidDays {
		if d == day {
			return true
		}
	}
	return false
}
