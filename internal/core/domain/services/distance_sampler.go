package services

import (
	"math/rand/v2"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
)

// DistanceSampler supplies the distance of a new delivery. Real travel distance
// is not computed by this service.
type DistanceSampler interface {
	Sample() (kernel.Distance, error)
}

// UniformDistanceSampler draws distances uniformly from [kernel.MinKm, kernel.MaxKm).
type UniformDistanceSampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewUniformDistanceSampler uses src for randomness. A nil src falls back to the
// runtime's global generator.
func NewUniformDistanceSampler(src rand.Source) *UniformDistanceSampler {
	s := &UniformDistanceSampler{}
	if src != nil {
		s.rnd = rand.New(src) //nolint:gosec // distances are not security sensitive
	}
	return s
}

func (s *UniformDistanceSampler) Sample() (kernel.Distance, error) {
	return kernel.NewDistance(kernel.MinKm + s.float64()*(kernel.MaxKm-kernel.MinKm))
}

func (s *UniformDistanceSampler) float64() float64 {
	if s.rnd == nil {
		return rand.Float64() //nolint:gosec // distances are not security sensitive
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// FixedDistanceSampler always returns the same distance.
type FixedDistanceSampler struct {
	Km float64
}

func (s FixedDistanceSampler) Sample() (kernel.Distance, error) {
	return kernel.NewDistance(s.Km)
}
