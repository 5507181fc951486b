package interfaces

import (
	"context"
	"parking_service/internal/domain/entities"
)

// IUserRepository abstracts persistence for operator accounts.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) (entities.User, error)
}
