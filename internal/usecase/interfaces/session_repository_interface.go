package interfaces

import (
	"context"
	"parking_service/internal/domain/entities"
)

// ISessionRepository abstracts persistence for Session.
//
// CreateActive writes the session together with a per-plate guard so that at
// most one active session exists per plate; a second writer gets ErrDuplicateKey.
// Close is conditional on the stored session still being active and drops the
// guard in the same write. It returns a zero Session when the condition fails.

type ISessionRepository interface {
	CreateActive(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)
	GetActiveByPlate(ctx context.Context, plate string) (entities.Session, error)
	GetLatestByPlate(ctx context.Context, plate string) (entities.Session, error)
	ListByStatus(ctx context.Context, status entities.SessionStatus) ([]entities.Session, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Session, error)
	ListAll(ctx context.Context) ([]entities.Session, error)
	Close(ctx context.Context, s entities.Session) (entities.Session, error)
	Delete(ctx context.Context, id string) error
}
