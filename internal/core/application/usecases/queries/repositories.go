// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models for specific use cases and never write.
package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

type (
	// ReadUoW is a read-only unit of work. Handlers Begin it and always Rollback;
	// there is nothing to commit.
	ReadUoW interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error

		CityRepository() ports.CityRepository
		DriverRepository() ports.DriverRepository
		CustomerRepository() ports.CustomerRepository
		RestaurantRepository() ports.RestaurantRepository
		DeliveryRepository() ports.DeliveryRepository
	}

	// ReadUoWFactory creates new read unit of work instances.
	ReadUoWFactory interface {
		Create() ReadUoW
	}
)

func withReadUoW[T any](ctx context.Context, factory ReadUoWFactory, read func(ReadUoW) (T, error)) (T, error) {
	var zero T

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return read(uow)
}
