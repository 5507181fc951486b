package interfaces

import (
	"context"
	"parking_service/internal/domain/entities"
)

// ISpaceRepository abstracts persistence for Space.
//
// Lookups return a zero Space (empty Code) when the record is missing. Occupy is
// the only way a space becomes occupied and must be a single-record conditional
// update: it succeeds only while the stored status is available.
// ReleaseIfOccupiedBy is its counterpart for the session lifecycle: it succeeds
// only while the space is still bound to the given session.

type ISpaceRepository interface {
	Create(ctx context.Context, s entities.Space) (entities.Space, error)
	GetByCode(ctx context.Context, code string) (entities.Space, error)
	List(ctx context.Context) ([]entities.Space, error)
	ListByCategory(ctx context.Context, category entities.Category) ([]entities.Space, error)
	Occupy(ctx context.Context, code string, sessionID string) (entities.Space, error)
	SetStatus(ctx context.Context, code string, status entities.SpaceStatus) (entities.Space, error)
	ReleaseIfOccupiedBy(ctx context.Context, code string, sessionID string) (entities.Space, error)
	DeleteUnoccupied(ctx context.Context, code string) (bool, error)
}
