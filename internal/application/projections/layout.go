package projections

import (
	"sort"

	"clubplan/internal/domain/session"
	"clubplan/internal/domain/timegrid"
)

// MaxLanes caps the parallel tracks a cluster of overlapping sessions may
// reserve. Above the cap, extra sessions co-locate on the last lane instead
// of shrinking every session's width further.
const MaxLanes = 4

// PositionedSession is the ephemeral layout output for one session: lane
// assignment plus literal pixel/percentage coordinates. It is recomputed
// from scratch on every call and never stored.
type PositionedSession struct {
	Session     session.Session
	Kind        string  // presentation kind tag, see session.Classify
	LaneIndex   int     // 0-based track within the day
	LaneCount   int     // tracks reserved for this session's cluster, <= MaxLanes
	Top         float64 // px from the window top
	Height      float64 // px, >= MinHeightPx
	Left        float64 // percent
	Width       float64 // percent
	InvalidTime bool    // a time failed to parse and was clamped to 00:00
}

type timedSession struct {
	s          session.Session
	start, end int // minutes since midnight
	invalid    bool
}

func overlaps(a, b timedSession) bool {
	// Half-open intersection: sessions that merely touch at an endpoint
	// do not overlap.
	return a.start < b.end && b.start < a.end
}

// LayoutDay computes lane assignment and geometry for one weekday bucket.
//
// The placement is a local greedy heuristic, deliberately so: sessions are
// stably sorted by start time (equal starts keep incoming order) and placed
// in that order on the lowest free lane below the cluster's lane budget.
// An optimal interval coloring would silently change the visual layout of
// already-understood schedules.
//
// Malformed times clamp to minute 0 and flag InvalidTime; the session stays
// visible so operators can see and fix it.
// PRE: cfg has been validated
// POST: every result has Top >= 0, Height >= cfg.MinHeightPx and
// LaneIndex < LaneCount <= MaxLanes
func LayoutDay(sessions []session.Session, cfg timegrid.GridConfig) []PositionedSession {
	if len(sessions) == 0 {
		return nil
	}
	windowStart, _ := timegrid.ToMinutes(cfg.WindowStart)

	items := make([]timedSession, 0, len(sessions))
	for _, s := range sessions {
		start, okStart := timegrid.ToMinutes(s.StartTime)
		end, okEnd := timegrid.ToMinutes(s.EndTime)
		items = append(items, timedSession{s: s, start: start, end: end, invalid: !okStart || !okEnd})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].start < items[j].start })

	// Lane budget per session: true overlap cardinality + 1, capped.
	lanesNeeded := make([]int, len(items))
	for i := range items {
		count := 0
		for j := range items {
			if j != i && overlaps(items[i], items[j]) {
				count++
			}
		}
		lanesNeeded[i] = count + 1
		if lanesNeeded[i] > MaxLanes {
			lanesNeeded[i] = MaxLanes
		}
	}

	// Greedy assignment in sort order: smallest lane not used by an
	// already-placed overlapping session. When every lane below the budget
	// is taken, clamp onto the last one and accept visual co-location.
	lanes := make([]int, len(items))
	for i := range items {
		used := make(map[int]bool, MaxLanes)
		for j := 0; j < i; j++ {
			if overlaps(items[i], items[j]) {
				used[lanes[j]] = true
			}
		}
		lane := lanesNeeded[i] - 1
		for candidate := 0; candidate < lanesNeeded[i]; candidate++ {
			if !used[candidate] {
				lane = candidate
				break
			}
		}
		lanes[i] = lane
	}

	out := make([]PositionedSession, 0, len(items))
	for i, it := range items {
		// Sessions starting before the window clamp to the top edge; the
		// underlying time fields remain authoritative.
		top := (float64(it.start) - float64(windowStart)) / 60 * cfg.PxPerHour
		if top < 0 {
			top = 0
		}
		height := (float64(it.end)-float64(it.start))/60*cfg.PxPerHour - cfg.GapPx
		if height < cfg.MinHeightPx {
			height = cfg.MinHeightPx
		}
		width := 100.0 / float64(lanesNeeded[i])
		out = append(out, PositionedSession{
			Session:     it.s,
			Kind:        session.Classify(it.s),
			LaneIndex:   lanes[i],
			LaneCount:   lanesNeeded[i],
			Top:         top,
			Height:      height,
			Left:        float64(lanes[i]) * width,
			Width:       width,
			InvalidTime: it.invalid,
		})
	}
	return out
}

// OverCapacity counts sessions in a laid-out day whose true overlap
// cardinality exceeded the lane cap, for callers that want to detect
// over-capacity days. The planning result itself treats lane-cap clamping
// as accepted visual degradation and does not surface it.
func OverCapacity(day []PositionedSession) int {
	items := make([]timedSession, len(day))
	for i, p := range day {
		start, _ := timegrid.ToMinutes(p.Session.StartTime)
		end, _ := timegrid.ToMinutes(p.Session.EndTime)
		items[i] = timedSession{start: start, end: end}
	}

	n := 0
	for i := range items {
		count := 0
		for j := range items {
			if j != i && overlaps(items[i], items[j]) {
				count++
			}
		}
		if count+1 > MaxLanes {
			n++
		}
	}
	return n
}
