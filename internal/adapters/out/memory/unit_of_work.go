package memory

import (
	"context"
	"errors"

	"dispatch/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback outside a transaction.
var ErrNoTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes between Begin and Commit. Reads see committed state
// plus the unit's own pending writes. A UnitOfWork is not safe for concurrent
// use; create one per operation.
type UnitOfWork struct {
	store   *Store
	pending *tables
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.pending == nil {
		u.pending = newTables()
	}
	return nil
}

// Commit applies the pending writes. On a uniqueness conflict with rows
// committed by another unit of work nothing is applied.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.pending == nil {
		return ErrNoTransaction
	}

	pending := u.pending
	u.pending = nil
	if pending.isEmpty() {
		return nil
	}
	return u.store.commit(pending)
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.pending == nil {
		return ErrNoTransaction
	}
	u.pending = nil
	return nil
}

func (u *UnitOfWork) CityRepository() ports.CityRepository         { return cityRepository{u} }
func (u *UnitOfWork) DriverRepository() ports.DriverRepository     { return driverRepository{u} }
func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository { return customerRepository{u} }
func (u *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantRepository{u}
}
func (u *UnitOfWork) DeliveryRepository() ports.DeliveryRepository { return deliveryRepository{u} }

// read runs fn over committed state and the pending overlay.
func (u *UnitOfWork) read(fn func(layers []*tables)) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	layers := []*tables{u.store.committed}
	if u.pending != nil {
		layers = append(layers, u.pending)
	}
	fn(layers)
}

// stage records rows in the pending set, or commits them right away outside a
// transaction.
func (u *UnitOfWork) stage(rows *tables) error {
	if u.pending == nil {
		return u.store.commit(rows)
	}

	u.store.mu.RLock()
	err := errors.Join(u.store.committed.conflicts(rows), u.pending.conflicts(rows))
	u.store.mu.RUnlock()
	if err != nil {
		return err
	}

	u.pending.apply(rows)
	return nil
}
