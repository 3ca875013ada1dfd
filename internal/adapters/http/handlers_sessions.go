package web

import (
	"net/http"
	"strings"

	sessionDomain "clubplan/internal/domain/session"
)

// sessionPayload is the JSON body accepted when creating or updating a
// session. The team, when present, is upserted alongside.
type sessionPayload struct {
	Day         string   `json:"day"`
	SessionDate string   `json:"session_date"`
	Pole        string   `json:"pole"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Location    string   `json:"location"`
	Staff       []string `json:"staff"`
	Note        string   `json:"note"`
	Team        *teamDTO `json:"team"`
}

func (p sessionPayload) toDomain(id string) sessionDomain.Session {
	s := sessionDomain.Session{
		ID:          id,
		Day:         p.Day,
		SessionDate: p.SessionDate,
		Pole:        p.Pole,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Location:    p.Location,
		Staff:       p.Staff,
		Note:        p.Note,
	}
	if p.Team != nil {
		s.Team = &sessionDomain.Team{ID: p.Team.ID, Name: p.Team.Name, Category: p.Team.Category}
	}
	return s
}

// handleSessions handles GET (list) and POST (create) for /api/sessions
func handleSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		sessions, err := stores.SessionStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		dtos := make([]positionedSessionDTO, 0, len(sessions))
		for _, s := range sessions {
			dtos = append(dtos, toSessionDTO(s))
		}
		writeJSON(w, dtos)

	case "POST":
		var payload sessionPayload
		if err := strictDecode(r, &payload); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		entity := payload.toDomain(generateID())
		if err := entity.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := saveSessionWithTeam(r, entity); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, toSessionDTO(entity))

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleSessionByID handles GET, PUT and DELETE for /api/sessions/{id}
func handleSessionByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case "GET":
		entity, err := stores.SessionStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		writeJSON(w, toSessionDTO(entity))

	case "PUT":
		if _, err := stores.SessionStore.GetByID(ctx, id); err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		var payload sessionPayload
		if err := strictDecode(r, &payload); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		entity := payload.toDomain(id)
		if err := entity.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := saveSessionWithTeam(r, entity); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, toSessionDTO(entity))

	case "DELETE":
		if err := stores.SessionStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func saveSessionWithTeam(r *http.Request, entity sessionDomain.Session) error {
	ctx := r.Context()
	if entity.Team != nil {
		if entity.Team.ID == "" {
			entity.Team.ID = generateID()
		}
		if err := stores.SessionStore.SaveTeam(ctx, *entity.Team); err != nil {
			return err
		}
	}
	return stores.SessionStore.Save(ctx, entity)
}

// toSessionDTO maps a bare session (no layout) onto the session DTO shape.
func toSessionDTO(s sessionDomain.Session) positionedSessionDTO {
	dto := positionedSessionDTO{
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
		Kind:        sessionDomain.Classify(s),
	}
	if dto.Staff == nil {
		dto.Staff = []string{}
	}
	if s.Team != nil {
		dto.Team = &teamDTO{ID: s.Team.ID, Name: s.Team.Name, Category: s.Team.Category}
	}
	return dto
}
