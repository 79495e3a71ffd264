// Package memory implements the storage ports in process memory. It backs the
// service when no database is configured and the end-to-end tests.
//
// A Store holds committed state. Units of work stage their writes and apply
// them atomically on Commit, re-checking uniqueness against what other units
// of work committed in the meantime. Outside a transaction writes apply
// immediately, like statements on a plain database connection.
package memory

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/core/ports"
)

// booking is the (driver, delivery time) pair that must be unique. Times are
// kept as Unix microseconds, the precision of delivery.TimePrecision.
type booking struct {
	driverID kernel.UUID
	at       int64
}

func bookingOf(d *delivery.Delivery) booking {
	return booking{driverID: d.DriverID(), at: d.DeliveryTime().UnixMicro()}
}

// tables is one set of rows: the committed state or a pending write set.
type tables struct {
	cities      map[kernel.UUID]*city.City
	drivers     map[kernel.UUID]*driver.Driver
	customers   map[kernel.UUID]*customer.Customer
	restaurants map[kernel.UUID]*restaurant.Restaurant
	deliveries  map[kernel.UUID]*delivery.Delivery

	cityNames map[string]kernel.UUID
	bookings  map[booking]kernel.UUID
}

func newTables() *tables {
	return &tables{
		cities:      map[kernel.UUID]*city.City{},
		drivers:     map[kernel.UUID]*driver.Driver{},
		customers:   map[kernel.UUID]*customer.Customer{},
		restaurants: map[kernel.UUID]*restaurant.Restaurant{},
		deliveries:  map[kernel.UUID]*delivery.Delivery{},
		cityNames:   map[string]kernel.UUID{},
		bookings:    map[booking]kernel.UUID{},
	}
}

func (t *tables) isEmpty() bool {
	return len(t.cities)+len(t.drivers)+len(t.customers)+len(t.restaurants)+len(t.deliveries) == 0
}

// Store is the committed state shared by every unit of work.
type Store struct {
	mu        sync.RWMutex
	committed *tables
}

func NewStore() *Store {
	return &Store{committed: newTables()}
}

// conflicts checks the rows of pending against committed.
func (t *tables) conflicts(pending *tables) error {
	for id, c := range pending.cities {
		if _, ok := t.cities[id]; ok {
			return fmt.Errorf("city %s: %w", id, ports.ErrAlreadyExists)
		}
		if _, ok := t.cityNames[c.Name()]; ok {
			return fmt.Errorf("city %q: %w", c.Name(), ports.ErrAlreadyExists)
		}
	}
	if err := idConflict("driver", t.drivers, pending.drivers); err != nil {
		return err
	}
	if err := idConflict("customer", t.customers, pending.customers); err != nil {
		return err
	}
	if err := idConflict("restaurant", t.restaurants, pending.restaurants); err != nil {
		return err
	}
	if err := idConflict("delivery", t.deliveries, pending.deliveries); err != nil {
		return err
	}
	for _, d := range pending.deliveries {
		if _, ok := t.bookings[bookingOf(d)]; ok {
			return fmt.Errorf("driver %s at %s: %w", d.DriverID(), d.DeliveryTime(), ports.ErrDriverAlreadyBooked)
		}
	}
	return nil
}

func idConflict[T any](name string, committed, pending map[kernel.UUID]T) error {
	for id := range pending {
		if _, ok := committed[id]; ok {
			return fmt.Errorf("%s %s: %w", name, id, ports.ErrAlreadyExists)
		}
	}
	return nil
}

func (t *tables) apply(pending *tables) {
	maps.Copy(t.cities, pending.cities)
	maps.Copy(t.drivers, pending.drivers)
	maps.Copy(t.customers, pending.customers)
	maps.Copy(t.restaurants, pending.restaurants)
	maps.Copy(t.deliveries, pending.deliveries)
	maps.Copy(t.cityNames, pending.cityNames)
	maps.Copy(t.bookings, pending.bookings)
}

// commit applies pending atomically or not at all.
func (s *Store) commit(pending *tables) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.committed.conflicts(pending); err != nil {
		return err
	}
	s.committed.apply(pending)
	return nil
}

func lookup[T any](layers []*tables, pick func(*tables) map[kernel.UUID]T, id kernel.UUID) (T, bool) {
	for _, l := range layers {
		if v, ok := pick(l)[id]; ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func collect[T any](layers []*tables, pick func(*tables) map[kernel.UUID]T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, l := range layers {
		for _, v := range pick(l) {
			if keep == nil || keep(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

type named interface {
	ID() kernel.UUID
	Name() string
}

// byNameThenID is the listing order promised by the ports package.
func byNameThenID[T named](a, b T) int {
	if c := strings.Compare(a.Name(), b.Name()); c != 0 {
		return c
	}
	return a.ID().Compare(b.ID())
}

func byTimeThenID(a, b *delivery.Delivery) int {
	if c := a.DeliveryTime().Compare(b.DeliveryTime()); c != 0 {
		return c
	}
	return a.ID().Compare(b.ID())
}

func firstByName[T named](items []T, name string) (T, bool) {
	matches := slices.DeleteFunc(items, func(v T) bool { return v.Name() != name })
	if len(matches) == 0 {
		var zero T
		return zero, false
	}
	return slices.MinFunc(matches, func(a, b T) int { return a.ID().Compare(b.ID()) }), true
}
