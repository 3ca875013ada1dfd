package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"clubplan/internal/domain/session"
)

// Fixture is the on-disk YAML schema accepted by `planctl import`.
type Fixture struct {
	Teams    []TeamFixture    `yaml:"teams"`
	Sessions []SessionFixture `yaml:"sessions"`
}

// TeamFixture describes one team record.
type TeamFixture struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// SessionFixture describes one session record. Team refers to a team id
// declared in the same file.
type SessionFixture struct {
	ID       string   `yaml:"id"`
	Day      string   `yaml:"day"`
	Date     string   `yaml:"date"`
	Pole     string   `yaml:"pole"`
	Start    string   `yaml:"start"`
	End      string   `yaml:"end"`
	Location string   `yaml:"location"`
	Staff    []string `yaml:"staff"`
	Note     string   `yaml:"note"`
	Team     string   `yaml:"team"`
}

// ReadFixture reads and parses a YAML fixture file.
// PRE: path points to a readable file
// POST: Returns the parsed fixture or an error for unreadable/malformed input
func ReadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

// ToDomain converts the fixture into domain teams and sessions. Records
// without an id get a generated one; unknown team references are left nil.
func (f *Fixture) ToDomain() ([]session.Team, []session.Session) {
	teams := make([]session.Team, 0, len(f.Teams))
	byID := make(map[string]*session.Team, len(f.Teams))
	for _, t := range f.Teams {
		id := t.ID
		if id == "" {
			id = uuid.New().String()
		}
		team := session.Team{ID: id, Name: t.Name, Category: t.Category}
		teams = append(teams, team)
		byID[t.ID] = &team
	}

	sessions := make([]session.Session, 0, len(f.Sessions))
	for _, s := range f.Sessions {
		id := s.ID
		if id == "" {
			id = uuid.New().String()
		}
		entity := session.Session{
			ID:          id,
			Day:         s.Day,
			SessionDate: s.Date,
			Pole:        s.Pole,
			StartTime:   s.Start,
			EndTime:     s.End,
			Location:    s.Location,
			Staff:       s.Staff,
			Note:        s.Note,
		}
		if t, ok := byID[s.Team]; ok && s.Team != "" {
			entity.Team = t
		}
		sessions = append(sessions, entity)
	}
	return teams, sessions
}
