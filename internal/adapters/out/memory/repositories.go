package memory

import (
	"context"
	"slices"

	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"
)

func citiesOf(t *tables) map[kernel.UUID]*city.City                  { return t.cities }
func driversOf(t *tables) map[kernel.UUID]*driver.Driver             { return t.drivers }
func customersOf(t *tables) map[kernel.UUID]*customer.Customer       { return t.customers }
func restaurantsOf(t *tables) map[kernel.UUID]*restaurant.Restaurant { return t.restaurants }
func deliveriesOf(t *tables) map[kernel.UUID]*delivery.Delivery      { return t.deliveries }

type cityRepository struct{ uow *UnitOfWork }

func (r cityRepository) Add(ctx context.Context, c *city.City) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	rows := newTables()
	rows.cities[c.ID()] = c
	rows.cityNames[c.Name()] = c.ID()
	return r.uow.stage(rows)
}

func (r cityRepository) Get(ctx context.Context, id kernel.UUID) (*city.City, error) {
	return get(ctx, r.uow, "city", citiesOf, id)
}

func (r cityRepository) FindByName(ctx context.Context, name string) (*city.City, error) {
	return findByName(ctx, r.uow, "city", citiesOf, name)
}

func (r cityRepository) GetAll(ctx context.Context) ([]*city.City, error) {
	return list(ctx, r.uow, citiesOf, nil, byNameThenID[*city.City])
}

type driverRepository struct{ uow *UnitOfWork }

func (r driverRepository) Add(ctx context.Context, d *driver.Driver) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	rows := newTables()
	rows.drivers[d.ID()] = d
	return r.uow.stage(rows)
}

func (r driverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return get(ctx, r.uow, "driver", driversOf, id)
}

func (r driverRepository) FindByName(ctx context.Context, name string) (*driver.Driver, error) {
	return findByName(ctx, r.uow, "driver", driversOf, name)
}

func (r driverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	return list(ctx, r.uow, driversOf, nil, byNameThenID[*driver.Driver])
}

func (r driverRepository) GetAllByCity(ctx context.Context, cityID kernel.UUID) ([]*driver.Driver, error) {
	if err := cityID.Validate(); err != nil {
		return nil, err
	}
	return list(ctx, r.uow, driversOf, func(d *driver.Driver) bool { return d.IsBasedIn(cityID) }, byNameThenID[*driver.Driver])
}

type customerRepository struct{ uow *UnitOfWork }

func (r customerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	rows := newTables()
	rows.customers[c.ID()] = c
	return r.uow.stage(rows)
}

func (r customerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return get(ctx, r.uow, "customer", customersOf, id)
}

func (r customerRepository) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	return findByName(ctx, r.uow, "customer", customersOf, name)
}

type restaurantRepository struct{ uow *UnitOfWork }

func (r restaurantRepository) Add(ctx context.Context, v *restaurant.Restaurant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}

	rows := newTables()
	rows.restaurants[v.ID()] = v
	return r.uow.stage(rows)
}

func (r restaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	return get(ctx, r.uow, "restaurant", restaurantsOf, id)
}

func (r restaurantRepository) FindByName(ctx context.Context, name string) (*restaurant.Restaurant, error) {
	return findByName(ctx, r.uow, "restaurant", restaurantsOf, name)
}

type deliveryRepository struct{ uow *UnitOfWork }

// Add returns ports.ErrDriverAlreadyBooked when the driver already has a
// delivery at the same time.
func (r deliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	rows := newTables()
	rows.deliveries[d.ID()] = d
	rows.bookings[bookingOf(d)] = d.ID()
	return r.uow.stage(rows)
}

func (r deliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return get(ctx, r.uow, "delivery", deliveriesOf, id)
}

func (r deliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	return list(ctx, r.uow, deliveriesOf, nil, byTimeThenID)
}

func (r deliveryRepository) GetAllByDrivers(ctx context.Context, driverIDs []kernel.UUID) ([]*delivery.Delivery, error) {
	wanted := make(map[kernel.UUID]struct{}, len(driverIDs))
	for _, id := range driverIDs {
		wanted[id] = struct{}{}
	}

	return list(ctx, r.uow, deliveriesOf, func(d *delivery.Delivery) bool {
		_, ok := wanted[d.DriverID()]
		return ok
	}, byTimeThenID)
}

func get[T any](
	ctx context.Context,
	uow *UnitOfWork,
	name string,
	pick func(*tables) map[kernel.UUID]T,
	id kernel.UUID,
) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if err := id.Validate(); err != nil {
		return zero, err
	}

	var (
		v  T
		ok bool
	)
	uow.read(func(layers []*tables) { v, ok = lookup(layers, pick, id) })
	if !ok {
		return zero, errs.NewObjectNotFoundError(name, id.String())
	}
	return v, nil
}

func findByName[T named](
	ctx context.Context,
	uow *UnitOfWork,
	name string,
	pick func(*tables) map[kernel.UUID]T,
	wanted string,
) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	var all []T
	uow.read(func(layers []*tables) { all = collect(layers, pick, nil) })

	v, ok := firstByName(all, wanted)
	if !ok {
		return zero, errs.NewObjectNotFoundError(name, wanted)
	}
	return v, nil
}

func list[T any](
	ctx context.Context,
	uow *UnitOfWork,
	pick func(*tables) map[kernel.UUID]T,
	keep func(T) bool,
	order func(a, b T) int,
) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []T
	uow.read(func(layers []*tables) { out = collect(layers, pick, keep) })
	slices.SortFunc(out, order)
	return out, nil
}
