package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
)

// residentFields are the fields shared by everything that lives in a city.
type residentFields struct {
	name   string
	cityID kernel.UUID
}

func newResidentFields(name string, cityID kernel.UUID) (residentFields, error) {
	var f residentFields

	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	var cityErr error
	if err := cityID.Validate(); err != nil {
		cityErr = errs.NewValueIsRequiredErrorWithCause("city", err)
	}

	if err := errors.Join(nameErr, cityErr); err != nil {
		return residentFields{}, invalidArgument(err)
	}

	f.name = name
	f.cityID = cityID
	return f, nil
}

// CreateDriverCommand registers a driver in an existing city.
type CreateDriverCommand struct {
	residentFields

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(name string, cityID kernel.UUID) (CreateDriverCommand, error) {
	f, err := newResidentFields(name, cityID)
	if err != nil {
		return CreateDriverCommand{}, err
	}

	return CreateDriverCommand{residentFields: f, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateDriverCommand) Validate() error {
	if err := c.guard.Validate(ErrCreateDriverCommandIsNotConstructed); err != nil {
		return invalidArgument(err)
	}
	return nil
}

func (c CreateDriverCommand) Name() string        { return c.name }
func (c CreateDriverCommand) CityID() kernel.UUID { return c.cityID }

// CreateCustomerCommand registers a customer in an existing city. The address
// is free text and may be empty.
type CreateCustomerCommand struct {
	residentFields
	address string

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(name string, cityID kernel.UUID, address string) (CreateCustomerCommand, error) {
	f, err := newResidentFields(name, cityID)
	if err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		residentFields: f,
		address:        strings.TrimSpace(address),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) Validate() error {
	if err := c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed); err != nil {
		return invalidArgument(err)
	}
	return nil
}

func (c CreateCustomerCommand) Name() string        { return c.name }
func (c CreateCustomerCommand) CityID() kernel.UUID { return c.cityID }
func (c CreateCustomerCommand) Address() string     { return c.address }

// CreateRestaurantCommand registers a restaurant in an existing city.
type CreateRestaurantCommand struct {
	residentFields
	description string

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(name string, cityID kernel.UUID, description string) (CreateRestaurantCommand, error) {
	f, err := newResidentFields(name, cityID)
	if err != nil {
		return CreateRestaurantCommand{}, err
	}

	return CreateRestaurantCommand{
		residentFields: f,
		description:    strings.TrimSpace(description),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRestaurantCommand) Validate() error {
	if err := c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed); err != nil {
		return invalidArgument(err)
	}
	return nil
}

func (c CreateRestaurantCommand) Name() string        { return c.name }
func (c CreateRestaurantCommand) CityID() kernel.UUID { return c.cityID }
func (c CreateRestaurantCommand) Description() string { return c.description }
