package delivery_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parties struct {
	driver     *driver.Driver
	restaurant *restaurant.Restaurant
	customer   *customer.Customer
}

func newParties(t *testing.T, cityID kernel.UUID) parties {
	t.Helper()

	d, err := driver.NewDriver("Robert", cityID)
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant("meat", cityID, "All meat restaurant")
	require.NoError(t, err)
	c, err := customer.NewCustomer("Mozart", cityID, "Wolfgang Amadeus Mozart")
	require.NoError(t, err)

	return parties{driver: d, restaurant: r, customer: c}
}

func mustDistance(t *testing.T, km float64) kernel.Distance {
	t.Helper()
	d, err := kernel.NewDistance(km)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	cityID := kernel.NewUUID()
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	t.Run("binds all parties", func(t *testing.T) {
		p := newParties(t, cityID)

		d, err := delivery.NewDelivery(p.driver, p.restaurant, p.customer, at, mustDistance(t, 7.5))

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		require.NoError(t, d.ID().Validate())
		assert.True(t, d.DriverID().IsEqual(p.driver.ID()))
		assert.True(t, d.RestaurantID().IsEqual(p.restaurant.ID()))
		assert.True(t, d.CustomerID().IsEqual(p.customer.ID()))
		assert.True(t, d.DeliveryTime().Equal(at))
		assert.InDelta(t, 7.5, d.Distance().Kilometers(), 1e-9)
	})

	t.Run("rejects customer and restaurant in different cities", func(t *testing.T) {
		p := newParties(t, cityID)
		elsewhere, err := customer.NewCustomer("Chopin", kernel.NewUUID(), "")
		require.NoError(t, err)

		d, err := delivery.NewDelivery(p.driver, p.restaurant, elsewhere, at, mustDistance(t, 1))

		assert.Nil(t, d)
		require.ErrorIs(t, err, delivery.ErrCityMismatch)
	})

	t.Run("rejects driver from another city", func(t *testing.T) {
		p := newParties(t, cityID)
		outsider, err := driver.NewDriver("Jennifer", kernel.NewUUID())
		require.NoError(t, err)

		_, err = delivery.NewDelivery(outsider, p.restaurant, p.customer, at, mustDistance(t, 1))

		require.ErrorIs(t, err, delivery.ErrDriverOutOfCity)
	})

	t.Run("rejects missing parties", func(t *testing.T) {
		_, err := delivery.NewDelivery(nil, nil, nil, at, mustDistance(t, 1))

		require.ErrorIs(t, err, driver.ErrDriverIsNotConstructed)
		require.ErrorIs(t, err, restaurant.ErrRestaurantIsNotConstructed)
		require.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)
	})

	t.Run("rejects zero time and unconstructed distance", func(t *testing.T) {
		p := newParties(t, cityID)

		_, err := delivery.NewDelivery(p.driver, p.restaurant, p.customer, time.Time{}, kernel.Distance{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, kernel.ErrDistanceIsNotConstructed)
	})
}

func TestRestoreDelivery(t *testing.T) {
	local := time.FixedZone("IST", 2*60*60)
	at := time.Date(2024, 3, 1, 14, 30, 0, 1234567, local)

	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), at, mustDistance(t, 3),
	)

	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.DeliveryTime().Location())
	assert.Equal(t, 1234000, d.DeliveryTime().Nanosecond())
	assert.True(t, d.DeliveryTime().Equal(delivery.NormalizeTime(at)))
}

func TestDelivery_Collides(t *testing.T) {
	driverID := kernel.NewUUID()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), driverID, kernel.NewUUID(), kernel.NewUUID(), at, mustDistance(t, 3),
	)
	require.NoError(t, err)

	tests := []struct {
		name     string
		driverID kernel.UUID
		at       time.Time
		want     bool
	}{
		{name: "same driver same instant", driverID: driverID, at: at, want: true},
		{name: "same instant other zone", driverID: driverID, at: at.In(time.FixedZone("X", 3600)), want: true},
		{name: "same driver one microsecond later", driverID: driverID, at: at.Add(time.Microsecond)},
		{name: "other driver same instant", driverID: kernel.NewUUID(), at: at},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Collides(tt.driverID, tt.at))
		})
	}
}
