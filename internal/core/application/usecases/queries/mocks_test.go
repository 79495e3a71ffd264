package queries_test

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

var errNotImplemented = errors.New("not implemented in mock")

type MockCityRepository struct{ mock.Mock }

func (m *MockCityRepository) Add(context.Context, *city.City) error { return errNotImplemented }
func (m *MockCityRepository) Get(ctx context.Context, id kernel.UUID) (*city.City, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*city.City)
	return c, args.Error(1)
}
func (m *MockCityRepository) FindByName(context.Context, string) (*city.City, error) {
	return nil, errNotImplemented
}
func (m *MockCityRepository) GetAll(context.Context) ([]*city.City, error) {
	return nil, errNotImplemented
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(context.Context, *driver.Driver) error { return errNotImplemented }
func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*driver.Driver)
	return d, args.Error(1)
}
func (m *MockDriverRepository) FindByName(context.Context, string) (*driver.Driver, error) {
	return nil, errNotImplemented
}
func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*driver.Driver)
	return d, args.Error(1)
}
func (m *MockDriverRepository) GetAllByCity(ctx context.Context, cityID kernel.UUID) ([]*driver.Driver, error) {
	args := m.Called(ctx, cityID)
	d, _ := args.Get(0).([]*driver.Driver)
	return d, args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(context.Context, *customer.Customer) error {
	return errNotImplemented
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) FindByName(context.Context, string) (*customer.Customer, error) {
	return nil, errNotImplemented
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(context.Context, *restaurant.Restaurant) error {
	return errNotImplemented
}
func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}
func (m *MockRestaurantRepository) FindByName(context.Context, string) (*restaurant.Restaurant, error) {
	return nil, errNotImplemented
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(context.Context, *delivery.Delivery) error {
	return errNotImplemented
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}
func (m *MockDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*delivery.Delivery)
	return d, args.Error(1)
}
func (m *MockDeliveryRepository) GetAllByDrivers(ctx context.Context, ids []kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, ids)
	d, _ := args.Get(0).([]*delivery.Delivery)
	return d, args.Error(1)
}

// fakeReadUoW serves fixed repositories and records Begin/Rollback.
type fakeReadUoW struct {
	mock.Mock

	cities      *MockCityRepository
	drivers     *MockDriverRepository
	customers   *MockCustomerRepository
	restaurants *MockRestaurantRepository
	deliveries  *MockDeliveryRepository
}

func newFakeReadUoW() *fakeReadUoW {
	return &fakeReadUoW{
		cities:      new(MockCityRepository),
		drivers:     new(MockDriverRepository),
		customers:   new(MockCustomerRepository),
		restaurants: new(MockRestaurantRepository),
		deliveries:  new(MockDeliveryRepository),
	}
}

func (u *fakeReadUoW) Begin(ctx context.Context) error {
	return u.Called(ctx).Error(0)
}

func (u *fakeReadUoW) Rollback(ctx context.Context) error {
	return u.Called(ctx).Error(0)
}

func (u *fakeReadUoW) CityRepository() ports.CityRepository             { return u.cities }
func (u *fakeReadUoW) DriverRepository() ports.DriverRepository         { return u.drivers }
func (u *fakeReadUoW) CustomerRepository() ports.CustomerRepository     { return u.customers }
func (u *fakeReadUoW) RestaurantRepository() ports.RestaurantRepository { return u.restaurants }
func (u *fakeReadUoW) DeliveryRepository() ports.DeliveryRepository     { return u.deliveries }

type fakeReadUoWFactory struct{ uow *fakeReadUoW }

func (f fakeReadUoWFactory) Create() queries.ReadUoW { return f.uow }

// memoryCache is a RankReportCache backed by a map. Slots carry the
// generation current at lookup time.
type memoryCache struct {
	reports    map[string][]queries.DriverRankLine
	generation int
	sets       int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{reports: map[string][]queries.DriverRankLine{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]queries.DriverRankLine, string, bool) {
	slot := fmt.Sprintf("%d:%s", c.generation, key)
	r, ok := c.reports[slot]
	return r, slot, ok
}

func (c *memoryCache) Set(_ context.Context, slot string, report []queries.DriverRankLine) {
	c.sets++
	c.reports[slot] = report
}

func (c *memoryCache) invalidate() {
	c.generation++
}

func notFound(name string, id kernel.UUID) error {
	return errs.NewObjectNotFoundError(name, id)
}
