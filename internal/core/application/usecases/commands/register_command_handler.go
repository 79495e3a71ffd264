package commands

import (
	"context"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
)

// RegistrationObserver is told about every driver that has been committed.
type RegistrationObserver interface {
	DriverRegistered(ctx context.Context, d *driver.Driver)
}

// RegisterCommandHandler stores drivers, customers and restaurants. Each of
// them must reference an existing city; a missing one is reported as the
// repository's errs.ObjectNotFoundError.
//
// Example:
//
//	handler := NewRegisterCommandHandler(uowFactory)
//	cmd, _ := NewCreateDriverCommand("Mary", telAviv.ID())
//	mary, err := handler.HandleCreateDriver(ctx, cmd)
type RegisterCommandHandler struct {
	uowFactory RegistryUoWFactory
	observers  []RegistrationObserver
}

func NewRegisterCommandHandler(uowFactory RegistryUoWFactory, observers ...RegistrationObserver) RegisterCommandHandler {
	return RegisterCommandHandler{
		uowFactory: uowFactory,
		observers:  observers,
	}
}

func (h *RegisterCommandHandler) HandleCreateDriver(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(cmd.Name(), cmd.CityID())
	if err != nil {
		return nil, invalidArgument(err)
	}

	if err = h.register(ctx, cmd.CityID(), func(uow RegistryUoW) error {
		return uow.DriverRepository().Add(ctx, d)
	}); err != nil {
		return nil, err
	}

	for _, o := range h.observers {
		o.DriverRegistered(ctx, d)
	}
	return d, nil
}

func (h *RegisterCommandHandler) HandleCreateCustomer(
	ctx context.Context,
	cmd CreateCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(cmd.Name(), cmd.CityID(), cmd.Address())
	if err != nil {
		return nil, invalidArgument(err)
	}

	if err = h.register(ctx, cmd.CityID(), func(uow RegistryUoW) error {
		return uow.CustomerRepository().Add(ctx, c)
	}); err != nil {
		return nil, err
	}

	return c, nil
}

func (h *RegisterCommandHandler) HandleCreateRestaurant(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := restaurant.NewRestaurant(cmd.Name(), cmd.CityID(), cmd.Description())
	if err != nil {
		return nil, invalidArgument(err)
	}

	if err = h.register(ctx, cmd.CityID(), func(uow RegistryUoW) error {
		return uow.RestaurantRepository().Add(ctx, r)
	}); err != nil {
		return nil, err
	}

	return r, nil
}

func (h *RegisterCommandHandler) register(ctx context.Context, cityID kernel.UUID, add func(RegistryUoW) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CityRepository().Get(ctx, cityID); err != nil {
		return err
	}

	if err := add(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
