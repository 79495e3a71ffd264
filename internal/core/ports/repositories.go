// Package ports defines the storage contracts of the dispatch core. Adapters in
// internal/adapters/out implement them; the core depends only on these
// interfaces.
//
// Listing methods return entities in a deterministic order: drivers, cities,
// customers and restaurants by name then id, deliveries by delivery time then
// id. Domain services rely on that order for tie-breaking.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
)

// CityRepository stores cities. Names are unique.
type CityRepository interface {
	Add(ctx context.Context, c *city.City) error
	Get(ctx context.Context, id kernel.UUID) (*city.City, error)
	FindByName(ctx context.Context, name string) (*city.City, error)
	GetAll(ctx context.Context) ([]*city.City, error)
}

// DriverRepository stores drivers.
type DriverRepository interface {
	Add(ctx context.Context, d *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
	FindByName(ctx context.Context, name string) (*driver.Driver, error)

	// GetAll returns every driver. Used by the global ranking report.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// GetAllByCity returns the drivers whose home city is cityID.
	GetAllByCity(ctx context.Context, cityID kernel.UUID) ([]*driver.Driver, error)
}

// CustomerRepository stores customers.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	FindByName(ctx context.Context, name string) (*customer.Customer, error)
}

// RestaurantRepository stores restaurants.
type RestaurantRepository interface {
	Add(ctx context.Context, r *restaurant.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
	FindByName(ctx context.Context, name string) (*restaurant.Restaurant, error)
}

// DeliveryRepository stores deliveries. Deliveries are append-only.
type DeliveryRepository interface {
	// Add persists a new delivery. It returns ErrDriverAlreadyBooked when the
	// driver already has a delivery at the same time.
	Add(ctx context.Context, d *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAll returns the complete delivery history.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)

	// GetAllByDrivers returns the complete history of the given drivers.
	GetAllByDrivers(ctx context.Context, driverIDs []kernel.UUID) ([]*delivery.Delivery, error)
}
