package projections

import (
	"testing"

	"clubplan/internal/domain/session"
)

func filterFixture() []session.Session {
	return []session.Session{
		{
			ID: "s1", Day: session.Monday, Pole: "Seniors",
			StartTime: "19:00", EndTime: "20:30",
			Location: "Synthétique Achenheim",
			Staff:    []string{"Karim Benali"},
			Team:     &session.Team{Name: "Seniors A", Category: "Seniors"},
		},
		{
			ID: "s2", Day: session.Wednesday, Pole: "Formation",
			StartTime: "18:00", EndTime: "19:00",
			Location: "Pelouse Honneur",
			Staff:    []string{"Julie Martin"},
			Note:     "Séance gardiens",
			Team:     &session.Team{Name: "U15 B", Category: "U15"},
		},
		{
			ID: "s3", Day: session.Saturday, Pole: "Ecole de foot",
			SessionDate: "2026-09-05",
			StartTime:   "10:00", EndTime: "12:00",
			Location: "Club House",
			Note:     "Plateau U9",
		},
	}
}

// TestFilterSessions_SiteSubstring verifies case-insensitive substring
// matching against the location.
func TestFilterSessions_SiteSubstring(t *testing.T) {
	got := FilterSessions(filterFixture(), SessionFilters{Site: "achenheim"})
	if len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("got %d sessions, want only s1", len(got))
	}
}

// TestFilterSessions_PoleExact verifies exact pole matching with the "all"
// sentinel.
func TestFilterSessions_PoleExact(t *testing.T) {
	got := FilterSessions(filterFixture(), SessionFilters{Pole: "Seniors"})
	if len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("pole Seniors: got %d, want only s1", len(got))
	}

	if got := FilterSessions(filterFixture(), SessionFilters{Pole: session.PoleAll}); len(got) != 3 {
		t.Fatalf("pole all: got %d, want 3", len(got))
	}
}

// TestFilterSessions_Terrain verifies keyword-based terrain matching.
func TestFilterSessions_Terrain(t *testing.T) {
	cases := []struct {
		terrain string
		wantID  string
	}{
		{TerrainSynthetic, "s1"},
		{TerrainGrass, "s2"},
		{TerrainClubhouse, "s3"},
	}
	for _, c := range cases {
		got := FilterSessions(filterFixture(), SessionFilters{Terrain: c.terrain})
		if len(got) != 1 || got[0].ID != c.wantID {
			t.Fatalf("terrain %s: got %d sessions, want only %s", c.terrain, len(got), c.wantID)
		}
	}
	if got := FilterSessions(filterFixture(), SessionFilters{Terrain: TerrainAll}); len(got) != 3 {
		t.Fatalf("terrain all: got %d, want 3", len(got))
	}
}

// TestFilterSessions_FreeText verifies the query searches team, staff,
// location and note.
func TestFilterSessions_FreeText(t *testing.T) {
	cases := []struct {
		search string
		wantID string
	}{
		{"julie", "s2"},
		{"gardiens", "s2"},
		{"seniors a", "s1"},
		{"u15", "s2"},
	}
	for _, c := range cases {
		got := FilterSessions(filterFixture(), SessionFilters{Search: c.search})
		if len(got) != 1 || got[0].ID != c.wantID {
			t.Fatalf("search %q: got %d sessions, want only %s", c.search, len(got), c.wantID)
		}
	}
	if got := FilterSessions(filterFixture(), SessionFilters{Search: "nothing matches this"}); len(got) != 0 {
		t.Fatalf("got %d, want empty result", len(got))
	}
}

// TestFilterSessions_WeekScope verifies dated sessions follow week
// navigation while undated ones recur every week.
func TestFilterSessions_WeekScope(t *testing.T) {
	inWeek := FilterSessions(filterFixture(), SessionFilters{WeekStart: "2026-08-31", WeekEnd: "2026-09-06"})
	if len(inWeek) != 3 {
		t.Fatalf("active week: got %d, want 3", len(inWeek))
	}

	nextWeek := FilterSessions(filterFixture(), SessionFilters{WeekStart: "2026-09-07", WeekEnd: "2026-09-13"})
	if len(nextWeek) != 2 {
		t.Fatalf("next week: got %d, want 2 (dated s3 drops out)", len(nextWeek))
	}
	for _, s := range nextWeek {
		if s.ID == "s3" {
			t.Fatalf("s3 visible outside its week")
		}
	}
}

// TestFilterSessions_Conjunction verifies predicates combine as independent
// ANDs.
func TestFilterSessions_Conjunction(t *testing.T) {
	got := FilterSessions(filterFixture(), SessionFilters{Site: "achenheim", Pole: "Formation"})
	if len(got) != 0 {
		t.Fatalf("got %d, want 0: no session is both at Achenheim and Formation", len(got))
	}
}
