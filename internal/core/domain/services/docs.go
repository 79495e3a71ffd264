// Package services provides the domain services of the dispatch engine. They
// work on entities already loaded by the application layer and never touch
// storage themselves.
//
// The package includes:
//   - EligibilityFilter: drivers of a city that are free at an exact time
//   - LoadBalancer: the least busy driver of a candidate set
//   - DistanceSampler: the source of delivery distances
//   - DriverAssigner: the assignment workflow built from the three above
//   - RankingAggregator: per-driver distance totals, sorted descending
//
// Ordering contract: whenever two drivers tie, the one that comes first in the
// input slice wins. Repositories return drivers ordered by name, then id, so
// ties are resolved deterministically.
package services
