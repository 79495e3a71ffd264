package queries

import (
	"context"
)

type GetDeliveryQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetDeliveryQueryHandler(uowFactory ReadUoWFactory) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound when the delivery does not exist.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	return withReadUoW(ctx, h.uowFactory, func(uow ReadUoW) (GetDeliveryQueryResponse, error) {
		d, err := uow.DeliveryRepository().Get(ctx, query.DeliveryID())
		if err != nil {
			return GetDeliveryQueryResponse{}, err
		}

		drv, err := uow.DriverRepository().Get(ctx, d.DriverID())
		if err != nil {
			return GetDeliveryQueryResponse{}, err
		}

		rest, err := uow.RestaurantRepository().Get(ctx, d.RestaurantID())
		if err != nil {
			return GetDeliveryQueryResponse{}, err
		}

		cust, err := uow.CustomerRepository().Get(ctx, d.CustomerID())
		if err != nil {
			return GetDeliveryQueryResponse{}, err
		}

		return GetDeliveryQueryResponse{
			ID:             d.ID(),
			DriverID:       drv.ID(),
			DriverName:     drv.Name(),
			RestaurantID:   rest.ID(),
			RestaurantName: rest.Name(),
			CustomerID:     cust.ID(),
			CustomerName:   cust.Name(),
			CityID:         cust.CityID(),
			DeliveryTime:   d.DeliveryTime(),
			DistanceKm:     d.Distance().Kilometers(),
		}, nil
	})
}
