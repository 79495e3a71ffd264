package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand asks for a new order from restaurant to customer at
// deliveryTime, with a driver assigned to it.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(cust, rest, time.Date(2024, 5, 12, 19, 0, 0, 0, time.UTC))
//	if err != nil {
//	    return err // wraps ErrInvalidArgument
//	}
//
//	d, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	customer     *customer.Customer
	restaurant   *restaurant.Restaurant
	deliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand requires a constructed customer and restaurant and a
// non-zero delivery time. The time is normalized to UTC with
// delivery.TimePrecision. Every failure wraps ErrInvalidArgument.
func NewCreateDeliveryCommand(
	c *customer.Customer,
	r *restaurant.Restaurant,
	deliveryTime time.Time,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(c),
		cmd.setRestaurant(r),
		cmd.setDeliveryTime(deliveryTime),
	); err != nil {
		return CreateDeliveryCommand{}, invalidArgument(err)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	if err := c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed); err != nil {
		return invalidArgument(err)
	}
	return nil
}

func (c CreateDeliveryCommand) Customer() *customer.Customer {
	return c.customer
}

func (c CreateDeliveryCommand) Restaurant() *restaurant.Restaurant {
	return c.restaurant
}

func (c CreateDeliveryCommand) DeliveryTime() time.Time {
	return c.deliveryTime
}

func (c *CreateDeliveryCommand) setCustomer(cust *customer.Customer) error {
	if cust == nil {
		return errs.NewValueIsRequiredError("customer")
	}
	if err := cust.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}

	c.customer = cust
	return nil
}

func (c *CreateDeliveryCommand) setRestaurant(r *restaurant.Restaurant) error {
	if r == nil {
		return errs.NewValueIsRequiredError("restaurant")
	}
	if err := r.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}

	c.restaurant = r
	return nil
}

// ValidateDeliveryTime checks a requested time before the order parties are
// resolved. Failures wrap ErrInvalidArgument.
func ValidateDeliveryTime(t time.Time) error {
	if t.IsZero() {
		return invalidArgument(errs.NewValueIsRequiredError("delivery time"))
	}
	return nil
}

func (c *CreateDeliveryCommand) setDeliveryTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}

	c.deliveryTime = delivery.NormalizeTime(t)
	return nil
}
