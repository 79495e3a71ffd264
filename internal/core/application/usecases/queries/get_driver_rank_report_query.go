package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverRankReportQueryIsNotConstructed = errors.New(
	"GetDriverRankReportQuery must be created via NewGetDriverRankReportQuery or NewGetCityDriverRankReportQuery constructor",
)

// GetDriverRankReportQuery ranks drivers by the distance they have covered,
// either across all cities or within one.
//
// Example:
//
//	query := NewGetDriverRankReportQuery()
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	for i, line := range report {
//	    fmt.Printf("%d. %s %d km\n", i+1, line.DriverName, line.TotalDistance)
//	}
type GetDriverRankReportQuery struct {
	cityID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverRankReportQuery creates a query over all drivers.
func NewGetDriverRankReportQuery() GetDriverRankReportQuery {
	return GetDriverRankReportQuery{guard: guard.NewConstructorGuard()}
}

// NewGetCityDriverRankReportQuery creates a query over the drivers of one city.
func NewGetCityDriverRankReportQuery(cityID kernel.UUID) (GetDriverRankReportQuery, error) {
	if err := cityID.Validate(); err != nil {
		return GetDriverRankReportQuery{}, err
	}

	return GetDriverRankReportQuery{cityID: &cityID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDriverRankReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRankReportQueryIsNotConstructed)
}

// CityID returns the city scope and false for the global report.
func (q GetDriverRankReportQuery) CityID() (kernel.UUID, bool) {
	if q.cityID == nil {
		return kernel.UUID{}, false
	}
	return *q.cityID, true
}

// CacheKey identifies the report in a RankReportCache.
func (q GetDriverRankReportQuery) CacheKey() string {
	if q.cityID == nil {
		return "driver-rank:all"
	}
	return "driver-rank:city:" + q.cityID.String()
}

// DriverRankLine is one line of the report. Lines are ordered by TotalDistance
// descending; equal totals keep the driver order (name, then id).
type DriverRankLine struct {
	DriverID   kernel.UUID
	DriverName string
	CityID     kernel.UUID
	// TotalDistance is in whole kilometres.
	TotalDistance int64
}
