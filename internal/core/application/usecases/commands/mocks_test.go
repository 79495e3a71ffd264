package commands_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCityRepository struct{ mock.Mock }

func (m *MockCityRepository) Add(ctx context.Context, c *city.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCityRepository) Get(ctx context.Context, id kernel.UUID) (*city.City, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*city.City)
	return c, args.Error(1)
}

func (m *MockCityRepository) FindByName(ctx context.Context, name string) (*city.City, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*city.City)
	return c, args.Error(1)
}

func (m *MockCityRepository) GetAll(ctx context.Context) ([]*city.City, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*city.City)
	return c, args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*driver.Driver)
	return d, args.Error(1)
}

func (m *MockDriverRepository) FindByName(ctx context.Context, name string) (*driver.Driver, error) {
	args := m.Called(ctx, name)
	d, _ := args.Get(0).(*driver.Driver)
	return d, args.Error(1)
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

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantRepository) FindByName(ctx context.Context, name string) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
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

// MockUoW implements every unit of work flavour of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CityRepository() ports.CityRepository {
	args := m.Called()
	return args.Get(0).(ports.CityRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockCityUoWFactory struct{ mock.Mock }

func (m *MockCityUoWFactory) Create() commands.CityUoW {
	args := m.Called()
	return args.Get(0).(commands.CityUoW)
}

type MockRegistryUoWFactory struct{ mock.Mock }

func (m *MockRegistryUoWFactory) Create() commands.RegistryUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistryUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockAssignmentObserver struct{ mock.Mock }

func (m *MockAssignmentObserver) DeliveryAssigned(ctx context.Context, d *delivery.Delivery) {
	m.Called(ctx, d)
}

func (m *MockAssignmentObserver) AssignmentRejected(ctx context.Context, err error) {
	m.Called(ctx, err)
}

type MockRegistrationObserver struct{ mock.Mock }

func (m *MockRegistrationObserver) DriverRegistered(ctx context.Context, d *driver.Driver) {
	m.Called(ctx, d)
}
