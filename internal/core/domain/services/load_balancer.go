package services

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// ErrNoCandidates is returned by ChooseLeastBusy for an empty candidate set.
var ErrNoCandidates = errors.New("no candidate drivers")

// LoadBalancer spreads deliveries across drivers by historical load.
type LoadBalancer struct{}

func NewLoadBalancer() LoadBalancer {
	return LoadBalancer{}
}

// ChooseLeastBusy returns the candidate with the fewest deliveries in history.
// The count covers every delivery of the driver, regardless of time or city.
// On a tie the earlier candidate wins.
func (LoadBalancer) ChooseLeastBusy(
	candidates []*driver.Driver,
	deliveries []*delivery.Delivery,
) (*driver.Driver, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	load := CountByDriver(deliveries)

	best := candidates[0]
	for _, c := range candidates[1:] {
		if load[c.ID()] < load[best.ID()] {
			best = c
		}
	}

	return best, nil
}

// CountByDriver returns the number of deliveries per driver.
func CountByDriver(deliveries []*delivery.Delivery) map[kernel.UUID]int {
	counts := make(map[kernel.UUID]int)
	for _, d := range deliveries {
		counts[d.DriverID()]++
	}
	return counts
}
