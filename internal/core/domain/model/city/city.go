// Package city provides the City entity. Drivers, customers and restaurants are
// all based in exactly one city, and a delivery never crosses city borders.
package city

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCityIsNotConstructed = errors.New("City must be created via NewCity or RestoreCity constructor")

// City is an entity identified by its UUID. The name is unique across the
// system and is what the plumbing layer uses to look cities up.
type City struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewCity creates a city with a fresh identity.
func NewCity(name string) (*City, error) {
	return RestoreCity(kernel.NewUUID(), name)
}

// RestoreCity rebuilds a city loaded from storage.
func RestoreCity(id kernel.UUID, name string) (*City, error) {
	c := &City{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *City) Validate() error {
	if c == nil {
		return ErrCityIsNotConstructed
	}
	return c.guard.Validate(ErrCityIsNotConstructed)
}

func (c *City) ID() kernel.UUID { return c.id }

func (c *City) Name() string { return c.name }

// IsEqual compares cities by identity.
func (c *City) IsEqual(other *City) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *City) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *City) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
