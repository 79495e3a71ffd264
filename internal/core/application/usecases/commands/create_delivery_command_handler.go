package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// AssignmentObserver is notified about the outcome of every assignment attempt.
// DeliveryAssigned is called only after the transaction has committed.
type AssignmentObserver interface {
	DeliveryAssigned(ctx context.Context, d *delivery.Delivery)
	AssignmentRejected(ctx context.Context, err error)
}

// CreateDeliveryCommandHandler creates an order and assigns a driver to it.
//
// The whole read-decide-write sequence runs under one in-process lock and one
// storage transaction, so two concurrent requests can never pick the same
// driver for the same time. Storage enforces the same rule with a unique
// constraint for other processes; a violation is reported as
// services.ErrNoAvailableDriver.
//
// A handler owns its lock: build it once and share it between callers.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, services.NewUniformDistanceSampler(nil))
//	cmd, _ := NewCreateDeliveryCommand(cust, rest, at)
//
//	d, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrCityMismatch):
//	case errors.Is(err, services.ErrNoAvailableDriver):
//	}
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	assigner   services.DriverAssigner
	observers  []AssignmentObserver

	mu *sync.Mutex
}

// NewCreateDeliveryCommandHandler creates the handler. A nil sampler means
// uniformly random distances.
func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	sampler services.DistanceSampler,
	observers ...AssignmentObserver,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewDriverAssigner(sampler),
		observers:  observers,
		mu:         &sync.Mutex{},
	}
}

// Handle returns the persisted delivery. Errors: ErrInvalidArgument,
// services.ErrCityMismatch, services.ErrNoAvailableDriver or a storage error.
// No delivery is stored when an error is returned.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	d, err := h.handle(ctx, cmd)
	if err != nil {
		for _, o := range h.observers {
			o.AssignmentRejected(ctx, err)
		}
		return nil, err
	}

	for _, o := range h.observers {
		o.DeliveryAssigned(ctx, d)
	}
	return d, nil
}

func (h *CreateDeliveryCommandHandler) handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cust, rest := cmd.Customer(), cmd.Restaurant()
	if !rest.SharesCityWith(cust.CityID()) {
		return nil, services.ErrCityMismatch
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drivers, err := uow.DriverRepository().GetAllByCity(ctx, cust.CityID())
	if err != nil {
		return nil, err
	}

	deliveryRepo := uow.DeliveryRepository()

	var history []*delivery.Delivery
	if len(drivers) > 0 {
		ids := make([]kernel.UUID, 0, len(drivers))
		for _, d := range drivers {
			ids = append(ids, d.ID())
		}

		if history, err = deliveryRepo.GetAllByDrivers(ctx, ids); err != nil {
			return nil, err
		}
	}

	d, err := h.assigner.Assign(cust, rest, cmd.DeliveryTime(), drivers, history)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		if errors.Is(err, ports.ErrDriverAlreadyBooked) {
			return nil, fmt.Errorf("%w: %w", services.ErrNoAvailableDriver, err)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
