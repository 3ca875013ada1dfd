package session

import (
	"context"

	domain "clubplan/internal/domain/session"
)

// Store defines the persistence interface for sessions. This is the
// session-repository collaborator: the planning engine only ever consumes
// the immutable snapshots it returns.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, entity domain.Session) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Session, error)
	ListByDay(ctx context.Context, day string) ([]domain.Session, error)
	SaveTeam(ctx context.Context, team domain.Team) error
}
