package queries

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// RankReportCache stores finished reports. Implementations handle their own
// failures: a miss is always a safe answer.
//
// Get returns the slot a report computed after the lookup must be stored in.
// The slot is resolved at lookup time, so a report built from a snapshot that
// an invalidation has since made stale is never served.
type RankReportCache interface {
	Get(ctx context.Context, key string) (report []DriverRankLine, slot string, ok bool)
	Set(ctx context.Context, slot string, report []DriverRankLine)
}

type noCache struct{}

func (noCache) Get(context.Context, string) ([]DriverRankLine, string, bool) { return nil, "", false }
func (noCache) Set(context.Context, string, []DriverRankLine)                {}

// GetDriverRankReportQueryHandler builds ranking reports from the delivery
// history inside one read transaction.
type GetDriverRankReportQueryHandler struct {
	uowFactory ReadUoWFactory
	aggregator services.RankingAggregator
	cache      RankReportCache
}

// NewGetDriverRankReportQueryHandler creates the handler. cache may be nil.
func NewGetDriverRankReportQueryHandler(uowFactory ReadUoWFactory, cache RankReportCache) GetDriverRankReportQueryHandler {
	if cache == nil {
		cache = noCache{}
	}

	return GetDriverRankReportQueryHandler{
		uowFactory: uowFactory,
		aggregator: services.NewRankingAggregator(),
		cache:      cache,
	}
}

// Handle returns the report. A city-scoped query for an unknown city fails with
// errs.ErrObjectNotFound; a known city without drivers yields an empty report.
func (h GetDriverRankReportQueryHandler) Handle(ctx context.Context, query GetDriverRankReportQuery) ([]DriverRankLine, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report, slot, ok := h.cache.Get(ctx, query.CacheKey())
	if ok {
		return report, nil
	}

	report, err := withReadUoW(ctx, h.uowFactory, func(uow ReadUoW) ([]DriverRankLine, error) {
		drivers, history, err := h.load(ctx, uow, query)
		if err != nil {
			return nil, err
		}

		ranked := h.aggregator.Rank(drivers, history)
		lines := make([]DriverRankLine, 0, len(ranked))
		for _, r := range ranked {
			lines = append(lines, DriverRankLine{
				DriverID:      r.Driver.ID(),
				DriverName:    r.Driver.Name(),
				CityID:        r.Driver.CityID(),
				TotalDistance: r.TotalDistance,
			})
		}
		return lines, nil
	})
	if err != nil {
		return nil, err
	}

	h.cache.Set(ctx, slot, report)
	return report, nil
}

func (h GetDriverRankReportQueryHandler) load(
	ctx context.Context,
	uow ReadUoW,
	query GetDriverRankReportQuery,
) ([]*driver.Driver, []*delivery.Delivery, error) {
	cityID, scoped := query.CityID()
	if !scoped {
		drivers, err := uow.DriverRepository().GetAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		history, err := uow.DeliveryRepository().GetAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		return drivers, history, nil
	}

	if _, err := uow.CityRepository().Get(ctx, cityID); err != nil {
		return nil, nil, err
	}

	drivers, err := uow.DriverRepository().GetAllByCity(ctx, cityID)
	if err != nil {
		return nil, nil, err
	}
	if len(drivers) == 0 {
		return drivers, nil, nil
	}

	ids := make([]kernel.UUID, 0, len(drivers))
	for _, d := range drivers {
		ids = append(ids, d.ID())
	}

	history, err := uow.DeliveryRepository().GetAllByDrivers(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return drivers, history, nil
}
