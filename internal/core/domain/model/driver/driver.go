// Package driver provides the Driver entity: a person based in one city who can
// be assigned deliveries in that city.
package driver

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

// Driver is an entity identified by its UUID.
//
// Invariants:
//   - Must have a valid identifier and home city
//   - Name cannot be blank
//
// Drivers carry no booking state of their own; availability and load are
// derived from the delivery history by the domain services.
type Driver struct {
	id     kernel.UUID
	name   string
	cityID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriver registers a driver with a fresh identity in the given city.
//
// Example:
//
//	mary, err := driver.NewDriver("Mary", telAviv.ID())
func NewDriver(name string, cityID kernel.UUID) (*Driver, error) {
	return RestoreDriver(kernel.NewUUID(), name, cityID)
}

// RestoreDriver rebuilds a driver loaded from storage.
func RestoreDriver(id kernel.UUID, name string, cityID kernel.UUID) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setCityID(cityID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the driver was built by a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// CityID returns the identifier of the driver's home city.
func (d *Driver) CityID() kernel.UUID { return d.cityID }

// IsEqual compares drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// IsBasedIn reports whether the driver's home city is cityID.
func (d *Driver) IsBasedIn(cityID kernel.UUID) bool {
	return d.cityID.IsEqual(cityID)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setCityID(cityID kernel.UUID) error {
	if err := cityID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("city", err)
	}
	d.cityID = cityID
	return nil
}
