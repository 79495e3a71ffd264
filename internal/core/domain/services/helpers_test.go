package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

var noon = time.Date(2024, 5, 12, 12, 0, 0, 0, time.UTC)

func newDriver(t *testing.T, name string, cityID kernel.UUID) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(name, cityID)
	require.NoError(t, err)
	return d
}

func newDelivery(t *testing.T, d *driver.Driver, at time.Time, km float64) *delivery.Delivery {
	t.Helper()
	distance, err := kernel.NewDistance(km)
	require.NoError(t, err)
	dl, err := delivery.RestoreDelivery(kernel.NewUUID(), d.ID(), kernel.NewUUID(), kernel.NewUUID(), at, distance)
	require.NoError(t, err)
	return dl
}

func names(drivers []*driver.Driver) []string {
	out := make([]string, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, d.Name())
	}
	return out
}
