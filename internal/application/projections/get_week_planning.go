package projections

import (
	"context"
	"time"

	"clubplan/internal/domain/session"
	"clubplan/internal/domain/timegrid"
	"clubplan/internal/domain/week"
)

// PlanningSessionStore defines the store interface needed by this projection.
// The session list it returns is treated as an immutable snapshot; role-based
// visibility scoping happens before the snapshot reaches this projection.
type PlanningSessionStore interface {
	List(ctx context.Context) ([]session.Session, error)
}

// GetWeekPlanningDeps holds dependencies for the projection.
type GetWeekPlanningDeps struct {
	SessionStore PlanningSessionStore
}

// GetWeekPlanningQuery carries the immutable input for one planning
// computation: week anchor plus navigation delta, filter values and grid
// constants. The caller owns debouncing and re-invocation triggers; the
// projection keeps no state between calls.
type GetWeekPlanningQuery struct {
	Anchor     time.Time
	DeltaWeeks int
	Filters    SessionFilters      // week bounds are filled in from the computed week
	Grid       timegrid.GridConfig // zero value selects timegrid.DefaultGrid
	SlotStep   int                 // minutes between gridline labels; 0 selects the default
}

// PlanningDay is one weekday column of the planning grid. Zero sessions is
// a valid, empty column.
type PlanningDay struct {
	Day      string // monday..sunday
	Date     string // YYYY-MM-DD
	Sessions []PositionedSession
}

// GetWeekPlanningResult carries the positioned weekly planning view.
type GetWeekPlanningResult struct {
	WeekNumber int
	WeekYear   int
	Days       []PlanningDay // exactly 7, Monday first
	TimeSlots  []string      // gridline labels for the visible window
}

// QueryGetWeekPlanning computes the positioned weekly planning view.
// Algorithm: 1) validate grid and anchor, 2) build the Monday-start week,
// 3) filter the session snapshot, 4) bucket by weekday, 5) lay out each
// bucket independently.
//
// Identical inputs always yield identical outputs. Per-session anomalies
// (malformed times, missing teams) are clamped and flagged, never fatal;
// only an unset anchor or an invalid grid window fails the call.
func QueryGetWeekPlanning(ctx context.Context, query GetWeekPlanningQuery, deps GetWeekPlanningDeps) (GetWeekPlanningResult, error) {
	grid := query.Grid
	if grid == (timegrid.GridConfig{}) {
		grid = timegrid.DefaultGrid()
	}
	if err := grid.Validate(); err != nil {
		return GetWeekPlanningResult{}, err
	}

	anchor := query.Anchor
	if !anchor.IsZero() && query.DeltaWeeks != 0 {
		anchor = anchor.AddDate(0, 0, 7*query.DeltaWeeks)
	}
	w, err := week.Build(anchor)
	if err != nil {
		return GetWeekPlanningResult{}, err
	}

	all, err := deps.SessionStore.List(ctx)
	if err != nil {
		return GetWeekPlanningResult{}, err
	}

	filters := query.Filters
	filters.WeekStart = w.Start().Format("2006-01-02")
	filters.WeekEnd = w.End().Format("2006-01-02")
	visible := FilterSessions(all, filters)

	buckets := make(map[string][]session.Session, len(session.ValidDays))
	for _, s := range visible {
		buckets[s.Day] = append(buckets[s.Day], s)
	}

	days := make([]PlanningDay, 0, len(session.ValidDays))
	for i, d := range session.ValidDays {
		days = append(days, PlanningDay{
			Day:      d,
			Date:     w.Days[i].Format("2006-01-02"),
			Sessions: LayoutDay(buckets[d], grid),
		})
	}

	step := query.SlotStep
	if step <= 0 {
		step = timegrid.DefaultSlotStep
	}

	return GetWeekPlanningResult{
		WeekNumber: w.Number,
		WeekYear:   w.Year,
		Days:       days,
		TimeSlots:  timegrid.BuildTimeSlots(grid.WindowStart, grid.WindowEnd, step),
	}, nil
}
