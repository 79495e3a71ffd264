package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDeliveryQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cityID := kernel.NewUUID()

	drv := mustDriver(t, "Mary", cityID)
	cust, err := customer.NewCustomer("Dana", cityID, "")
	require.NoError(t, err)
	rest, err := restaurant.NewRestaurant("Vitrina", cityID, "")
	require.NoError(t, err)
	distance, err := kernel.NewDistance(12.25)
	require.NoError(t, err)
	d, err := delivery.NewDelivery(drv, rest, cust, noon, distance)
	require.NoError(t, err)

	uow := newFakeReadUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.drivers.On("Get", ctx, drv.ID()).Return(drv, nil).Once()
	uow.restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	uow.customers.On("Get", ctx, cust.ID()).Return(cust, nil).Once()

	h := queries.NewGetDeliveryQueryHandler(fakeReadUoWFactory{uow})
	query, err := queries.NewGetDeliveryQuery(d.ID())
	require.NoError(t, err)

	got, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, queries.GetDeliveryQueryResponse{
		ID:             d.ID(),
		DriverID:       drv.ID(),
		DriverName:     "Mary",
		RestaurantID:   rest.ID(),
		RestaurantName: "Vitrina",
		CustomerID:     cust.ID(),
		CustomerName:   "Dana",
		CityID:         cityID,
		DeliveryTime:   noon,
		DistanceKm:     12.25,
	}, got)
	uow.AssertExpectations(t)
}

func TestGetDeliveryQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	uow := newFakeReadUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.deliveries.On("Get", ctx, id).Return(nil, notFound("delivery", id)).Once()

	h := queries.NewGetDeliveryQueryHandler(fakeReadUoWFactory{uow})
	query, err := queries.NewGetDeliveryQuery(id)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetDeliveryQueryHandler_Handle_InvalidQuery(t *testing.T) {
	h := queries.NewGetDeliveryQueryHandler(fakeReadUoWFactory{newFakeReadUoW()})

	_, err := h.Handle(t.Context(), queries.GetDeliveryQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewGetDeliveryQuery constructor")
}
