// Package rediscache caches driver ranking reports in Redis.
//
// Cached entries are namespaced by a generation number. Invalidate bumps the
// generation, which orphans every report at once; orphans expire with their
// TTL.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 30 * time.Second

	generationKey = "dispatch:driver-rank:generation"
	reportPrefix  = "dispatch:report:"
)

// NewClient connects to the Redis server at addr.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// RankReportCache implements queries.RankReportCache. Redis failures are
// logged and reported as misses.
type RankReportCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewRankReportCache uses DefaultTTL when ttl is not positive.
func NewRankReportCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *RankReportCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RankReportCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "rank_report_cache"),
	}
}

type lineDTO struct {
	DriverID      string `json:"driverId"`
	DriverName    string `json:"driverName"`
	CityID        string `json:"cityId"`
	TotalDistance int64  `json:"totalDistance"`
}

// Get looks key up under the current generation. The returned slot pins that
// generation: a report stored there after an invalidation is never served.
func (c *RankReportCache) Get(ctx context.Context, key string) ([]queries.DriverRankLine, string, bool) {
	slot, err := c.key(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "read cache generation", "error", err)
		return nil, "", false
	}

	raw, err := c.client.Get(ctx, slot).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "read cached report", "key", slot, "error", err)
		}
		return nil, slot, false
	}

	report, err := decode(raw)
	if err != nil {
		c.logger.WarnContext(ctx, "decode cached report", "key", slot, "error", err)
		return nil, slot, false
	}
	return report, slot, true
}

// Set stores report in a slot returned by Get. An empty slot is ignored.
func (c *RankReportCache) Set(ctx context.Context, slot string, report []queries.DriverRankLine) {
	if slot == "" {
		return
	}

	raw, err := encode(report)
	if err != nil {
		c.logger.WarnContext(ctx, "encode report", "error", err)
		return
	}

	if err = c.client.Set(ctx, slot, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "store report", "key", slot, "error", err)
	}
}

// Invalidate drops every cached report.
func (c *RankReportCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		c.logger.WarnContext(ctx, "invalidate reports", "error", err)
	}
}

// DeliveryAssigned invalidates the cache: every report that includes the
// driver is now stale.
func (c *RankReportCache) DeliveryAssigned(ctx context.Context, _ *delivery.Delivery) {
	c.Invalidate(ctx)
}

func (c *RankReportCache) AssignmentRejected(context.Context, error) {}

// DriverRegistered invalidates the cache: the new driver belongs in the
// reports with a zero total.
func (c *RankReportCache) DriverRegistered(ctx context.Context, _ *driver.Driver) {
	c.Invalidate(ctx)
}

func (c *RankReportCache) key(ctx context.Context, key string) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return reportPrefix + strconv.FormatInt(gen, 10) + ":" + key, nil
}

func encode(report []queries.DriverRankLine) ([]byte, error) {
	lines := make([]lineDTO, 0, len(report))
	for _, l := range report {
		lines = append(lines, lineDTO{
			DriverID:      l.DriverID.String(),
			DriverName:    l.DriverName,
			CityID:        l.CityID.String(),
			TotalDistance: l.TotalDistance,
		})
	}
	return json.Marshal(lines)
}

func decode(raw []byte) ([]queries.DriverRankLine, error) {
	var lines []lineDTO
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}

	report := make([]queries.DriverRankLine, 0, len(lines))
	for _, l := range lines {
		driverID, err := kernel.UUIDFromString(l.DriverID)
		if err != nil {
			return nil, err
		}
		cityID, err := kernel.UUIDFromString(l.CityID)
		if err != nil {
			return nil, err
		}
		report = append(report, queries.DriverRankLine{
			DriverID:      driverID,
			DriverName:    l.DriverName,
			CityID:        cityID,
			TotalDistance: l.TotalDistance,
		})
	}
	return report, nil
}
