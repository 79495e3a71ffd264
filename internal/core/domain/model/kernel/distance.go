package kernel

import (
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// MinKm is the inclusive lower bound of a delivery distance.
	MinKm = 0.0
	// MaxKm is the exclusive upper bound of a delivery distance.
	MaxKm = 20.0
)

var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"distance must be created via NewDistance constructor")

// Distance is the length of a single delivery in kilometres. It is assigned once,
// when the delivery is created, and never recomputed.
type Distance struct {
	km    float64
	guard guard.ConstructorGuard
}

// NewDistance accepts values in [MinKm, MaxKm).
func NewDistance(km float64) (Distance, error) {
	if math.IsNaN(km) || km < MinKm || km >= MaxKm {
		return Distance{}, errs.NewValueIsOutOfRangeError("distance", km, MinKm, MaxKm)
	}
	return Distance{km: km, guard: guard.NewConstructorGuard()}, nil
}

func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Kilometers returns the exact distance.
func (d Distance) Kilometers() float64 {
	return d.km
}

// WholeKilometers truncates toward zero. Ranking reports account in whole kilometres.
func (d Distance) WholeKilometers() int64 {
	return int64(d.km)
}
