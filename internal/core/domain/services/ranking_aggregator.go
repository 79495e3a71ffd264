package services

import (
	"cmp"
	"slices"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverDistance is one line of a ranking report.
type DriverDistance struct {
	Driver *driver.Driver
	// TotalDistance is the sum of whole kilometres over the driver's deliveries.
	TotalDistance int64
}

// RankingAggregator builds driver ranking reports from delivery history.
type RankingAggregator struct{}

func NewRankingAggregator() RankingAggregator {
	return RankingAggregator{}
}

// Rank returns one entry per driver, including drivers without deliveries,
// sorted by total distance descending. Each delivery's distance is truncated to
// whole kilometres before summing. Ties keep the order of drivers.
//
// The driver scope (everyone, or one city) is decided by the caller through the
// drivers slice; deliveries of drivers outside it are ignored.
func (RankingAggregator) Rank(drivers []*driver.Driver, deliveries []*delivery.Delivery) []DriverDistance {
	totals := make(map[kernel.UUID]int64, len(drivers))
	for _, d := range deliveries {
		totals[d.DriverID()] += d.Distance().WholeKilometers()
	}

	report := make([]DriverDistance, 0, len(drivers))
	for _, d := range drivers {
		report = append(report, DriverDistance{Driver: d, TotalDistance: totals[d.ID()]})
	}

	slices.SortStableFunc(report, func(a, b DriverDistance) int {
		return cmp.Compare(b.TotalDistance, a.TotalDistance)
	})

	return report
}
