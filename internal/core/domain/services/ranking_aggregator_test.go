package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rankLine struct {
	name  string
	total int64
}

func lines(report []services.DriverDistance) []rankLine {
	out := make([]rankLine, 0, len(report))
	for _, r := range report {
		out = append(out, rankLine{name: r.Driver.Name(), total: r.TotalDistance})
	}
	return out
}

func TestRankingAggregator_Rank(t *testing.T) {
	cityID := kernel.NewUUID()
	a := newDriver(t, "A", cityID)
	b := newDriver(t, "B", cityID)
	aggregator := services.NewRankingAggregator()

	t.Run("sorts totals descending", func(t *testing.T) {
		history := []*delivery.Delivery{
			newDelivery(t, a, noon, 5),
			newDelivery(t, a, noon.Add(time.Minute), 7),
			newDelivery(t, b, noon, 10),
			newDelivery(t, b, noon.Add(time.Minute), 10),
		}

		got := aggregator.Rank([]*driver.Driver{a, b}, history)

		assert.Equal(t, []rankLine{{"B", 20}, {"A", 12}}, lines(got))
	})

	t.Run("truncates each distance before summing", func(t *testing.T) {
		history := []*delivery.Delivery{
			newDelivery(t, a, noon, 5.9),
			newDelivery(t, a, noon.Add(time.Minute), 6.9),
		}

		got := aggregator.Rank([]*driver.Driver{a}, history)

		require.Len(t, got, 1)
		assert.Equal(t, int64(11), got[0].TotalDistance)
	})

	t.Run("drivers without deliveries appear with zero", func(t *testing.T) {
		idle := newDriver(t, "Idle", cityID)
		history := []*delivery.Delivery{newDelivery(t, a, noon, 3)}

		got := aggregator.Rank([]*driver.Driver{idle, a}, history)

		assert.Equal(t, []rankLine{{"A", 3}, {"Idle", 0}}, lines(got))
	})

	t.Run("ties keep driver order", func(t *testing.T) {
		c := newDriver(t, "C", cityID)
		history := []*delivery.Delivery{
			newDelivery(t, c, noon, 4),
			newDelivery(t, a, noon, 4),
		}

		got := aggregator.Rank([]*driver.Driver{c, b, a}, history)

		assert.Equal(t, []rankLine{{"C", 4}, {"A", 4}, {"B", 0}}, lines(got))
	})

	t.Run("deliveries of drivers outside scope are ignored", func(t *testing.T) {
		outsider := newDriver(t, "Outsider", kernel.NewUUID())
		history := []*delivery.Delivery{
			newDelivery(t, outsider, noon, 19),
			newDelivery(t, a, noon, 1),
		}

		got := aggregator.Rank([]*driver.Driver{a}, history)

		assert.Equal(t, []rankLine{{"A", 1}}, lines(got))
	})

	t.Run("empty scope yields empty report", func(t *testing.T) {
		got := aggregator.Rank(nil, nil)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
