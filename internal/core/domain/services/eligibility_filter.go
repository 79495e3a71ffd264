package services

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// EligibilityFilter selects the drivers that may take a delivery.
type EligibilityFilter struct{}

func NewEligibilityFilter() EligibilityFilter {
	return EligibilityFilter{}
}

// Eligible returns, in input order, the drivers based in cityID that have no
// delivery at exactly requestedTime. deliveries must contain at least every
// delivery of the given drivers; extra deliveries are ignored.
//
// An empty result is not an error; the caller decides what it means.
func (EligibilityFilter) Eligible(
	drivers []*driver.Driver,
	deliveries []*delivery.Delivery,
	cityID kernel.UUID,
	requestedTime time.Time,
) []*driver.Driver {
	booked := make(map[kernel.UUID]struct{})
	for _, d := range deliveries {
		if d.IsScheduledAt(requestedTime) {
			booked[d.DriverID()] = struct{}{}
		}
	}

	eligible := make([]*driver.Driver, 0, len(drivers))
	for _, d := range drivers {
		if !d.IsBasedIn(cityID) {
			continue
		}
		if _, busy := booked[d.ID()]; busy {
			continue
		}
		eligible = append(eligible, d)
	}

	return eligible
}
