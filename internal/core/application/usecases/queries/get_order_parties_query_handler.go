package queries

import (
	"context"
)

type GetOrderPartiesQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetOrderPartiesQueryHandler(uowFactory ReadUoWFactory) GetOrderPartiesQueryHandler {
	return GetOrderPartiesQueryHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound when either party is unknown.
func (h GetOrderPartiesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderPartiesQuery,
) (GetOrderPartiesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderPartiesQueryResponse{}, err
	}

	return withReadUoW(ctx, h.uowFactory, func(uow ReadUoW) (GetOrderPartiesQueryResponse, error) {
		cust, err := uow.CustomerRepository().Get(ctx, query.CustomerID())
		if err != nil {
			return GetOrderPartiesQueryResponse{}, err
		}

		rest, err := uow.RestaurantRepository().Get(ctx, query.RestaurantID())
		if err != nil {
			return GetOrderPartiesQueryResponse{}, err
		}

		return GetOrderPartiesQueryResponse{Customer: cust, Restaurant: rest}, nil
	})
}
