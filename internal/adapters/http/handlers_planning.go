package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"clubplan/internal/application/projections"
	"clubplan/internal/domain/timegrid"
	"clubplan/internal/domain/week"
)

// handlePlanning handles GET for /api/planning
// Query parameters: anchor (YYYY-MM-DD, defaults to today), week_offset
// (signed integer), site, pole, terrain, q.
// Returns the positioned weekly planning view ready to paint.
func handlePlanning(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	params := r.URL.Query()

	anchor := timeNow()
	if v := params.Get("anchor"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "invalid anchor date", http.StatusBadRequest)
			return
		}
		anchor = parsed
	}

	deltaWeeks := 0
	if v := params.Get("week_offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid week_offset", http.StatusBadRequest)
			return
		}
		deltaWeeks = n
	}

	query := projections.GetWeekPlanningQuery{
		Anchor:     anchor,
		DeltaWeeks: deltaWeeks,
		Filters: projections.SessionFilters{
			Site:    params.Get("site"),
			Pole:    params.Get("pole"),
			Terrain: params.Get("terrain"),
			Search:  params.Get("q"),
		},
	}
	deps := projections.GetWeekPlanningDeps{SessionStore: stores.SessionStore}

	res, err := projections.QueryGetWeekPlanning(r.Context(), query, deps)
	if err != nil {
		if errors.Is(err, week.ErrInvalidAnchor) || errors.Is(err, timegrid.ErrInvalidWindow) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, toPlanningDTO(res))
}

// DTOs for the planning API
type planningDTO struct {
	WeekNumber int              `json:"week_number"`
	WeekYear   int              `json:"week_year"`
	TimeSlots  []string         `json:"time_slots"`
	Days       []planningDayDTO `json:"days"`
}

type planningDayDTO struct {
	Day      string                 `json:"day"`
	Date     string                 `json:"date"`
	Sessions []positionedSessionDTO `json:"sessions"`
}

type positionedSessionDTO struct {
	ID          string   `json:"id"`
	Day         string   `json:"day"`
	SessionDate string   `json:"session_date,omitempty"`
	Pole        string   `json:"pole"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Location    string   `json:"location"`
	Staff       []string `json:"staff"`
	Note        string   `json:"note,omitempty"`
	NoteHTML    string   `json:"note_html,omitempty"`
	Team        *teamDTO `json:"team,omitempty"`
	TeamLabel   string   `json:"team_label"`
	Kind        string   `json:"kind"`
	LaneIndex   int      `json:"lane_index"`
	LaneCount   int      `json:"lane_count"`
	Top         float64  `json:"top"`
	Height      float64  `json:"height"`
	Left        float64  `json:"left"`
	Width       float64  `json:"width"`
	InvalidTime bool     `json:"invalid_time,omitempty"`
}

type teamDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

func toPlanningDTO(res projections.GetWeekPlanningResult) planningDTO {
	dto := planningDTO{
		WeekNumber: res.WeekNumber,
		WeekYear:   res.WeekYear,
		TimeSlots:  res.TimeSlots,
		Days:       make([]planningDayDTO, 0, len(res.Days)),
	}
	for _, d := range res.Days {
		dayDTO := planningDayDTO{Day: d.Day, Date: d.Date, Sessions: []positionedSessionDTO{}}
		for _, p := range d.Sessions {
			s := p.Session
			sessionDTO := positionedSessionDTO{
				ID:          s.ID,
				Day:         s.Day,
				SessionDate: s.SessionDate,
				Pole:        s.Pole,
				StartTime:   s.StartTime,
				EndTime:     s.EndTime,
				Location:    s.Location,
				Staff:       s.Staff,
				Note:        s.Note,
				NoteHTML:    renderNoteHTML(s.Note),
				TeamLabel:   s.TeamLabel(),
				Kind:        p.Kind,
				LaneIndex:   p.LaneIndex,
				LaneCount:   p.LaneCount,
				Top:         p.Top,
				Height:      p.Height,
				Left:        p.Left,
				Width:       p.Width,
				InvalidTime: p.InvalidTime,
			}
			if sessionDTO.Staff == nil {
				sessionDTO.Staff = []string{}
			}
			if s.Team != nil {
				sessionDTO.Team = &teamDTO{ID: s.Team.ID, Name: s.Team.Name, Category: s.Team.Category}
			}
			dayDTO.Sessions = append(dayDTO.Sessions, sessionDTO)
		}
		dto.Days = append(dto.Days, dayDTO)
	}
	return dto
}
