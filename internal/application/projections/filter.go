package projections

import (
	"strings"

	"clubplan/internal/domain/session"
)

// Terrain filter values, a fixed small vocabulary matched by keyword
// against the free-text location.
const (
	TerrainAll       = "all"
	TerrainSynthetic = "synthetic"
	TerrainGrass     = "grass"
	TerrainClubhouse = "clubhouse"
)

// terrainKeywords maps each terrain value to the location substrings that
// identify it. Locations are free text, so this stays keyword-based.
var terrainKeywords = map[string][]string{
	TerrainSynthetic: {"synthétique", "synthetique", "synth"},
	TerrainGrass:     {"herbe", "pelouse"},
	TerrainClubhouse: {"club house", "club-house", "clubhouse"},
}

// SessionFilters holds the active filter values. Empty strings (and the
// "all" sentinels) disable the corresponding predicate. WeekStart/WeekEnd
// bound dated sessions to the active week and come from the week builder.
type SessionFilters struct {
	Site      string // case-insensitive substring of location
	Pole      string // exact pole match; "" or "all" matches every pole
	Terrain   string // one of the Terrain constants
	Search    string // case-insensitive substring of the session search text
	WeekStart string // YYYY-MM-DD
	WeekEnd   string // YYYY-MM-DD
}

// FilterSessions returns the sessions visible under the given filters,
// preserving input order. All predicates are independent conjunctions, so
// their evaluation order never changes the result. An empty result is valid.
func FilterSessions(sessions []session.Session, f SessionFilters) []session.Session {
	var out []session.Session
	for _, s := range sessions {
		if matchesFilters(s, f) {
			out = append(out, s)
		}
	}
	return out
}

func matchesFilters(s session.Session, f SessionFilters) bool {
	if f.Site != "" && !strings.Contains(strings.ToLower(s.Location), strings.ToLower(f.Site)) {
		return false
	}
	if f.Pole != "" && f.Pole != session.PoleAll && s.Pole != f.Pole {
		return false
	}
	if !matchesTerrain(s.Location, f.Terrain) {
		return false
	}
	if f.Search != "" && !strings.Contains(s.SearchText(), strings.ToLower(f.Search)) {
		return false
	}
	// Dated sessions belong to one concrete week; undated sessions recur
	// weekly and are never excluded by week navigation.
	if s.SessionDate != "" && f.WeekStart != "" && f.WeekEnd != "" {
		if s.SessionDate < f.WeekStart || s.SessionDate > f.WeekEnd {
			return false
		}
	}
	return true
}

func matchesTerrain(location, terrain string) bool {
	if terrain == "" || terrain == TerrainAll {
		return true
	}
	keywords, ok := terrainKeywords[terrain]
	if !ok {
		// Unknown terrain values filter nothing rather than everything.
		return true
	}
	loc := strings.ToLower(location)
	for _, kw := range keywords {
		if strings.Contains(loc, kw) {
			return true
		}
	}
	return false
}
