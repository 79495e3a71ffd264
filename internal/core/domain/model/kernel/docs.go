// Package kernel provides the value objects shared by every aggregate of the
// dispatch domain.
//
// The package includes:
//   - UUID: identity of cities, drivers, customers, restaurants and deliveries
//   - Distance: a delivery distance in kilometres, bounded to [MinKm, MaxKm)
//
// Values are immutable and are only valid when built through their
// constructors.
package kernel
