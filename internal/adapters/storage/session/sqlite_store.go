package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"clubplan/internal/adapters/storage"
	domain "clubplan/internal/domain/session"
)

// Sessions are listed ordered by (day, start_time, id) so snapshots are
// deterministic: the layout's stable tie-break for identical start times
// then depends only on the data, not on row insertion order.
const sessionColumns = `s.id, s.day, s.session_date, s.pole, s.start_time, s.end_time,
	s.location, s.staff, s.note, t.id, t.name, t.category`

const sessionSelect = `SELECT ` + sessionColumns + ` FROM session s LEFT JOIN team t ON t.id = s.team_id`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new session store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Session by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx, sessionSelect+" WHERE s.id = ?", id)
	entity, err := scanSession(row)
	if err == sql.ErrNoRows {
		return domain.Session{}, fmt.Errorf("session not found: %w", err)
	}
	return entity, err
}

// Save persists a Session to the database.
// PRE: entity has been validated; entity.Team, if set, already exists
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Session) error {
	staff, err := json.Marshal(entity.Staff)
	if err != nil {
		return fmt.Errorf("encoding staff list: %w", err)
	}
	var teamID any
	if entity.Team != nil {
		teamID = entity.Team.ID
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session (id, day, session_date, pole, start_time, end_time, location, staff, note, team_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET day=excluded.day, session_date=excluded.session_date,
			pole=excluded.pole, start_time=excluded.start_time, end_time=excluded.end_time,
			location=excluded.location, staff=excluded.staff, note=excluded.note, team_id=excluded.team_id`,
		entity.ID, entity.Day, entity.SessionDate, entity.Pole, entity.StartTime, entity.EndTime,
		entity.Location, string(staff), entity.Note, teamID,
	)
	return err
}

// Delete removes a Session from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE id = ?", id)
	return err
}

// List retrieves all Sessions with their team back-references.
// PRE: none
// POST: Returns all sessions ordered by day, start time, id
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Session, error) {
	return s.querySessions(ctx, sessionSelect+" ORDER BY s.day, s.start_time, s.id")
}

// ListByDay retrieves Sessions for a specific day.
// PRE: day is a valid weekday
// POST: Returns sessions for the given day ordered by start time
func (s *SQLiteStore) ListByDay(ctx context.Context, day string) ([]domain.Session, error) {
	return s.querySessions(ctx, sessionSelect+" WHERE s.day = ? ORDER BY s.start_time, s.id", day)
}

// SaveTeam persists a team back-reference.
// PRE: team.ID and team.Name are non-empty
// POST: Team is persisted (insert or update)
func (s *SQLiteStore) SaveTeam(ctx context.Context, team domain.Team) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO team (id, name, category) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, category=excluded.category`,
		team.ID, team.Name, team.Category,
	)
	return err
}

func (s *SQLiteStore) querySessions(ctx context.Context, query string, args ...any) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Session
	for rows.Next() {
		entity, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.Session, error) {
	var entity domain.Session
	var staffJSON string
	var teamID, teamName, teamCategory sql.NullString
	err := row.Scan(&entity.ID, &entity.Day, &entity.SessionDate, &entity.Pole,
		&entity.StartTime, &entity.EndTime, &entity.Location, &staffJSON, &entity.Note,
		&teamID, &teamName, &teamCategory)
	if err != nil {
		return domain.Session{}, err
	}
	if staffJSON != "" {
		if err := json.Unmarshal([]byte(staffJSON), &entity.Staff); err != nil {
			return domain.Session{}, fmt.Errorf("decoding staff list: %w", err)
		}
	}
	if teamID.Valid {
		entity.Team = &domain.Team{ID: teamID.String, Name: teamName.String, Category: teamCategory.String}
	}
	return entity, nil
}
