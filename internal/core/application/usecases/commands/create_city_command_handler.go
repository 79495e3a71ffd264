package commands

import (
	"context"

	"dispatch/internal/core/domain/model/city"
)

// CreateCityCommandHandler stores new cities. A taken name is reported by the
// repository as ports.ErrAlreadyExists.
type CreateCityCommandHandler struct {
	uowFactory CityUoWFactory
}

func NewCreateCityCommandHandler(uowFactory CityUoWFactory) CreateCityCommandHandler {
	return CreateCityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateCityCommandHandler) Handle(ctx context.Context, cmd CreateCityCommand) (*city.City, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := city.NewCity(cmd.Name())
	if err != nil {
		return nil, invalidArgument(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CityRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
