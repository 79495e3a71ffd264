// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CityRepoFactory provides access to the city repository within a transaction.
	CityRepoFactory interface {
		CityRepository() ports.CityRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CityUoW manages transactions for city-only operations.
	CityUoW interface {
		TxManager
		CityRepoFactory
	}

	// CityUoWFactory creates new city unit of work instances.
	CityUoWFactory interface {
		Create() CityUoW
	}

	// RegistryUoW manages transactions for registering drivers, customers and
	// restaurants. The city repository is used to check that the home city exists.
	RegistryUoW interface {
		TxManager
		CityRepoFactory
		DriverRepoFactory
		CustomerRepoFactory
		RestaurantRepoFactory
	}

	// RegistryUoWFactory creates new registry unit of work instances.
	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// DeliveryUoW manages the assignment transaction: read the drivers of a
	// city and their history, then append the new delivery.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   drivers, err := uow.DriverRepository().GetAllByCity(ctx, cityID)
	//   history, err := uow.DeliveryRepository().GetAllByDrivers(ctx, ids)
	//   // ... assign
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		DriverRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
