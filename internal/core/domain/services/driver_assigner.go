package services

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/restaurant"
)

var (
	// ErrCityMismatch is returned when the customer and restaurant cities differ.
	ErrCityMismatch = delivery.ErrCityMismatch

	// ErrNoAvailableDriver is returned when no driver of the city is free at the
	// requested time.
	ErrNoAvailableDriver = errors.New("no available driver is free at the requested time")
)

// DriverAssigner runs the assignment workflow on loaded data:
//
//  1. customer and restaurant must share a city
//  2. EligibilityFilter narrows drivers to the free ones of that city
//  3. LoadBalancer picks the least busy of them
//  4. DistanceSampler supplies the distance
//  5. a new Delivery is built
//
// Nothing is persisted here.
type DriverAssigner struct {
	filter   EligibilityFilter
	balancer LoadBalancer
	sampler  DistanceSampler
}

// NewDriverAssigner uses a UniformDistanceSampler when sampler is nil.
func NewDriverAssigner(sampler DistanceSampler) DriverAssigner {
	if sampler == nil {
		sampler = NewUniformDistanceSampler(nil)
	}
	return DriverAssigner{
		filter:   NewEligibilityFilter(),
		balancer: NewLoadBalancer(),
		sampler:  sampler,
	}
}

// Assign returns the new delivery. drivers should be the drivers of the
// customer's city and deliveries their complete history.
func (a DriverAssigner) Assign(
	c *customer.Customer,
	r *restaurant.Restaurant,
	requestedTime time.Time,
	drivers []*driver.Driver,
	deliveries []*delivery.Delivery,
) (*delivery.Delivery, error) {
	if err := errors.Join(c.Validate(), r.Validate()); err != nil {
		return nil, err
	}

	if !r.SharesCityWith(c.CityID()) {
		return nil, ErrCityMismatch
	}

	eligible := a.filter.Eligible(drivers, deliveries, c.CityID(), requestedTime)
	if len(eligible) == 0 {
		return nil, ErrNoAvailableDriver
	}

	chosen, err := a.balancer.ChooseLeastBusy(eligible, deliveries)
	if err != nil {
		return nil, err
	}

	distance, err := a.sampler.Sample()
	if err != nil {
		return nil, err
	}

	return delivery.NewDelivery(chosen, r, c, requestedTime, distance)
}
