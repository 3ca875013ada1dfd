package projections

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"clubplan/internal/domain/session"
	"clubplan/internal/domain/timegrid"
	"clubplan/internal/domain/week"
)

type mockPlanningSessionStore struct {
	sessions []session.Session
	err      error
}

// List returns the seeded session snapshot.
// PRE: none
// POST: Returns the seeded sessions or the seeded error
func (m *mockPlanningSessionStore) List(_ context.Context) ([]session.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func planningFixtureStore() *mockPlanningSessionStore {
	return &mockPlanningSessionStore{sessions: []session.Session{
		{ID: "s1", Day: session.Monday, Pole: "Seniors", StartTime: "19:00", EndTime: "20:30", Location: "Synthétique Achenheim"},
		{ID: "s2", Day: session.Monday, Pole: "Formation", StartTime: "19:30", EndTime: "21:00", Location: "Pelouse Honneur"},
		{ID: "s3", Day: session.Wednesday, Pole: "Seniors", StartTime: "18:00", EndTime: "19:30", Location: "Synthétique Achenheim", Note: "Match amical"},
		{ID: "s4", Day: session.Saturday, SessionDate: "2026-09-05", Pole: "Ecole de foot", StartTime: "10:00", EndTime: "12:00", Location: "Club House", Note: "Plateau U9"},
	}}
}

// TestQueryGetWeekPlanning verifies the full pipeline: week header, hour
// slots, day bucketing, lane layout and kind tagging.
func TestQueryGetWeekPlanning(t *testing.T) {
	// 2026-08-31 is a Monday.
	anchor := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	deps := GetWeekPlanningDeps{SessionStore: planningFixtureStore()}

	res, err := QueryGetWeekPlanning(context.Background(), GetWeekPlanningQuery{Anchor: anchor}, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(res.Days) != 7 {
		t.Fatalf("days=%d, want 7", len(res.Days))
	}
	if res.Days[0].Day != session.Monday || res.Days[0].Date != "2026-08-31" {
		t.Fatalf("first day=%s %s, want monday 2026-08-31", res.Days[0].Day, res.Days[0].Date)
	}
	if res.Days[6].Day != session.Sunday || res.Days[6].Date != "2026-09-06" {
		t.Fatalf("last day=%s %s, want sunday 2026-09-06", res.Days[6].Day, res.Days[6].Date)
	}
	if res.WeekNumber != 36 || res.WeekYear != 2026 {
		t.Fatalf("week=%d/%d, want 36/2026", res.WeekNumber, res.WeekYear)
	}

	if res.TimeSlots[0] != timegrid.DefaultWindowStart || res.TimeSlots[len(res.TimeSlots)-1] != timegrid.DefaultWindowEnd {
		t.Fatalf("slots span %s..%s, want %s..%s", res.TimeSlots[0], res.TimeSlots[len(res.TimeSlots)-1], timegrid.DefaultWindowStart, timegrid.DefaultWindowEnd)
	}

	monday := res.Days[0]
	if len(monday.Sessions) != 2 {
		t.Fatalf("monday sessions=%d, want 2", len(monday.Sessions))
	}
	if monday.Sessions[0].LaneIndex == monday.Sessions[1].LaneIndex {
		t.Fatalf("overlapping monday sessions share lane %d", monday.Sessions[0].LaneIndex)
	}

	for _, p := range res.Days[2].Sessions {
		if p.Session.ID == "s3" && p.Kind != session.KindFriendlyMatch {
			t.Fatalf("s3 kind=%q, want friendly-match", p.Kind)
		}
	}

	saturday := res.Days[5]
	if len(saturday.Sessions) != 1 || saturday.Sessions[0].Session.ID != "s4" {
		t.Fatalf("saturday should hold the dated s4")
	}
}

// TestQueryGetWeekPlanning_DeltaWeeks verifies week navigation shifts the
// dates and drops out-of-week dated sessions.
func TestQueryGetWeekPlanning_DeltaWeeks(t *testing.T) {
	anchor := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	deps := GetWeekPlanningDeps{SessionStore: planningFixtureStore()}

	res, err := QueryGetWeekPlanning(context.Background(), GetWeekPlanningQuery{Anchor: anchor, DeltaWeeks: 1}, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Days[0].Date != "2026-09-07" {
		t.Fatalf("monday=%s, want 2026-09-07", res.Days[0].Date)
	}
	if res.WeekNumber != 37 {
		t.Fatalf("week=%d, want 37", res.WeekNumber)
	}

	// Dated s4 belongs to the previous week; recurring sessions remain.
	if len(res.Days[5].Sessions) != 0 {
		t.Fatalf("saturday=%d sessions, want 0", len(res.Days[5].Sessions))
	}
	if len(res.Days[0].Sessions) != 2 {
		t.Fatalf("monday=%d sessions, want 2 recurring", len(res.Days[0].Sessions))
	}
}

// TestQueryGetWeekPlanning_Filters verifies filter values reach the filter
// engine.
func TestQueryGetWeekPlanning_Filters(t *testing.T) {
	anchor := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	deps := GetWeekPlanningDeps{SessionStore: planningFixtureStore()}

	res, err := QueryGetWeekPlanning(context.Background(), GetWeekPlanningQuery{
		Anchor:  anchor,
		Filters: SessionFilters{Pole: "Seniors"},
	}, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	total := 0
	for _, d := range res.Days {
		for _, p := range d.Sessions {
			if p.Session.Pole != "Seniors" {
				t.Fatalf("session %s leaked through pole filter", p.Session.ID)
			}
			total++
		}
	}
	if total != 2 {
		t.Fatalf("total=%d, want 2", total)
	}
}

// TestQueryGetWeekPlanning_Idempotent verifies identical inputs produce
// identical results.
func TestQueryGetWeekPlanning_Idempotent(t *testing.T) {
	anchor := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	deps := GetWeekPlanningDeps{SessionStore: planningFixtureStore()}
	query := GetWeekPlanningQuery{Anchor: anchor, Filters: SessionFilters{Terrain: TerrainSynthetic}}

	first, err := QueryGetWeekPlanning(context.Background(), query, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := QueryGetWeekPlanning(context.Background(), query, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("planning not deterministic")
	}
}

// TestQueryGetWeekPlanning_Errors verifies the hard-failure cases: unset
// anchor, invalid window, store failure.
func TestQueryGetWeekPlanning_Errors(t *testing.T) {
	deps := GetWeekPlanningDeps{SessionStore: planningFixtureStore()}

	_, err := QueryGetWeekPlanning(context.Background(), GetWeekPlanningQuery{}, deps)
	if !errors.Is(err, week.ErrInvalidAnchor) {
		t.Fatalf("err=%v, want ErrInvalidAnchor", err)
	}

	badGrid := timegrid.DefaultGrid()
	badGrid.WindowStart = "23:00"
	badGrid.WindowEnd = "08:00"
	_, err = QueryGetWeekPlanning(context.Background(), GetWeekPlanningQuery{
		Anchor: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		Grid:   badGrid,
	}, deps)
	if !errors.Is(err, timegrid.ErrInvalidWindow) {
		t.Fatalf("err=%v, want ErrInvalidWindow", err)
	}

	boom := errors.New("db gone")
	_, err = QueryGetWeekPlanning(context.Background(), GetWeekPlanningQuery{
		Anchor: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	}, GetWeekPlanningDeps{SessionStore: &mockPlanningSessionStore{err: boom}})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want store error", err)
	}
}
