package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderPartiesQueryIsNotConstructed = errors.New(
	"GetOrderPartiesQuery must be created via NewGetOrderPartiesQuery constructor",
)

// GetOrderPartiesQuery resolves the customer and restaurant of a new order from
// their identifiers, so they can be handed to commands.NewCreateDeliveryCommand.
type GetOrderPartiesQuery struct {
	customerID   kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderPartiesQuery(customerID, restaurantID kernel.UUID) (GetOrderPartiesQuery, error) {
	if err := errors.Join(customerID.Validate(), restaurantID.Validate()); err != nil {
		return GetOrderPartiesQuery{}, err
	}

	return GetOrderPartiesQuery{
		customerID:   customerID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderPartiesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderPartiesQueryIsNotConstructed)
}

func (q GetOrderPartiesQuery) CustomerID() kernel.UUID   { return q.customerID }
func (q GetOrderPartiesQuery) RestaurantID() kernel.UUID { return q.restaurantID }

type GetOrderPartiesQueryResponse struct {
	Customer   *customer.Customer
	Restaurant *restaurant.Restaurant
}
