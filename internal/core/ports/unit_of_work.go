package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin see and write through the transaction; nothing is visible to other
// units of work until Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	// Rollback discards the transaction. Calling it after Commit is a no-op that
	// returns an error, so it is safe to defer.
	Rollback(ctx context.Context) error

	CityRepository() CityRepository
	DriverRepository() DriverRepository
	CustomerRepository() CustomerRepository
	RestaurantRepository() RestaurantRepository
	DeliveryRepository() DeliveryRepository
}
