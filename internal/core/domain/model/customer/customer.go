// Package customer provides the Customer entity: the person ordering food. The
// customer's home city decides which drivers may carry the order.
package customer

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

type Customer struct {
	id      kernel.UUID
	name    string
	cityID  kernel.UUID
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer with a fresh identity. The address is free text
// and may be empty.
func NewCustomer(name string, cityID kernel.UUID, address string) (*Customer, error) {
	return RestoreCustomer(kernel.NewUUID(), name, cityID, address)
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(id kernel.UUID, name string, cityID kernel.UUID, address string) (*Customer, error) {
	c := &Customer{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCityID(cityID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID     { return c.id }
func (c *Customer) Name() string        { return c.name }
func (c *Customer) CityID() kernel.UUID { return c.cityID }
func (c *Customer) Address() string     { return c.address }

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setCityID(cityID kernel.UUID) error {
	if err := cityID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("city", err)
	}
	c.cityID = cityID
	return nil
}
