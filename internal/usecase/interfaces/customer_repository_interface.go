package interfaces

import (
	"context"
	"parking_service/internal/domain/entities"
)

// ICustomerRepository abstracts persistence for Customer.
//
// AppendUsage is append-only and idempotent on UsageRecord.Key: it reports false
// when the key is already in the history or the customer does not exist.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByDocument(ctx context.Context, document string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	AddVehicle(ctx context.Context, id string, v entities.CustomerVehicle) (entities.Customer, error)
	AppendUsage(ctx context.Context, id string, u entities.UsageRecord) (bool, error)
}
