// Package seed loads the demo fixture set: five cities with their drivers,
// customers and restaurants.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// ErrAlreadySeeded is returned when the fixture cities already exist.
var ErrAlreadySeeded = errors.New("fixtures are already loaded")

type resident struct {
	name   string
	city   string
	detail string
}

var (
	cities = []string{"Jerusalem", "Tel-Aviv", "Beer-Sheva", "Haifa", "Rishon-Lezion"}

	drivers = []resident{
		{name: "Mary", city: "Tel-Aviv"},
		{name: "Patricia", city: "Tel-Aviv"},
		{name: "Jennifer", city: "Haifa"},
		{name: "James", city: "Beer-Sheva"},
		{name: "John", city: "Beer-Sheva"},
		{name: "Robert", city: "Jerusalem"},
		{name: "David", city: "Jerusalem"},
		{name: "Daniel", city: "Tel-Aviv"},
		{name: "Noa", city: "Haifa"},
		{name: "Ofri", city: "Haifa"},
		{name: "Neta", city: "Jerusalem"},
		{name: "Dany", city: "Rishon-Lezion"},
	}

	customers = []resident{
		{"Beethoven", "Tel-Aviv", "Ludwig van Beethoven"},
		{"Mozart", "Jerusalem", "Wolfgang Amadeus Mozart"},
		{"Chopin", "Haifa", "Frédéric François Chopin"},
		{"Rachmaninoff", "Tel-Aviv", "Sergei Rachmaninoff"},
		{"Bach", "Tel-Aviv", "Sebastian Bach. Johann"},
		{"Picasso", "Rishon-Lezion", "Pablo Picaso"},
		{"Einstein", "Rishon-Lezion", "Albert Einstein"},
		{"Galileo", "Rishon-Lezion", "Galileo Galilei"},
		{"Obama", "Beer-Sheva", "Barak Obama"},
		{"Elon", "Beer-Sheva", "Elon Musk"},
	}

	restaurants = []resident{
		{"meat", "Jerusalem", "All meat restaurant"},
		{"vegan", "Tel-Aviv", "Only vegan"},
		{"cafe", "Tel-Aviv", "Coffee shop"},
		{"chinese", "Tel-Aviv", "chinese restaurant"},
		{"mexican", "Tel-Aviv", "mexican restaurant"},
		{"indian", "Rishon-Lezion", "indian restaurant"},
		{"avocado", "Rishon-Lezion", "avocado restaurant"},
		{"bakery", "Rishon-Lezion", "bakery restaurant"},
		{"breakfast", "Beer-Sheva", "breakfast restaurant"},
	}
)

// Result maps fixture names to the identifiers they were stored with.
type Result struct {
	Cities      map[string]kernel.UUID
	Drivers     map[string]kernel.UUID
	Customers   map[string]kernel.UUID
	Restaurants map[string]kernel.UUID
}

// Seeder stores the fixtures through the regular command handlers.
type Seeder struct {
	createCity commands.CreateCityCommandHandler
	register   commands.RegisterCommandHandler
	logger     *slog.Logger
}

func NewSeeder(
	createCity commands.CreateCityCommandHandler,
	register commands.RegisterCommandHandler,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		createCity: createCity,
		register:   register,
		logger:     logger.With("component", "seed"),
	}
}

// Run stores every fixture. It returns ErrAlreadySeeded, and stores nothing,
// when the first fixture city exists.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	res := Result{
		Cities:      make(map[string]kernel.UUID, len(cities)),
		Drivers:     make(map[string]kernel.UUID, len(drivers)),
		Customers:   make(map[string]kernel.UUID, len(customers)),
		Restaurants: make(map[string]kernel.UUID, len(restaurants)),
	}

	for _, name := range cities {
		cmd, err := commands.NewCreateCityCommand(name)
		if err != nil {
			return Result{}, err
		}

		c, err := s.createCity.Handle(ctx, cmd)
		if errors.Is(err, ports.ErrAlreadyExists) {
			return Result{}, ErrAlreadySeeded
		}
		if err != nil {
			return Result{}, fmt.Errorf("seed city %q: %w", name, err)
		}
		res.Cities[name] = c.ID()
	}

	for _, d := range drivers {
		cmd, err := commands.NewCreateDriverCommand(d.name, res.Cities[d.city])
		if err != nil {
			return Result{}, err
		}

		driver, err := s.register.HandleCreateDriver(ctx, cmd)
		if err != nil {
			return Result{}, fmt.Errorf("seed driver %q: %w", d.name, err)
		}
		res.Drivers[d.name] = driver.ID()
	}

	for _, c := range customers {
		cmd, err := commands.NewCreateCustomerCommand(c.name, res.Cities[c.city], c.detail)
		if err != nil {
			return Result{}, err
		}

		customer, err := s.register.HandleCreateCustomer(ctx, cmd)
		if err != nil {
			return Result{}, fmt.Errorf("seed customer %q: %w", c.name, err)
		}
		res.Customers[c.name] = customer.ID()
	}

	for _, r := range restaurants {
		cmd, err := commands.NewCreateRestaurantCommand(r.name, res.Cities[r.city], r.detail)
		if err != nil {
			return Result{}, err
		}

		restaurant, err := s.register.HandleCreateRestaurant(ctx, cmd)
		if err != nil {
			return Result{}, fmt.Errorf("seed restaurant %q: %w", r.name, err)
		}
		res.Restaurants[r.name] = restaurant.ID()
	}

	s.logger.InfoContext(ctx, "Fixtures loaded",
		"cities", len(res.Cities),
		"drivers", len(res.Drivers),
		"customers", len(res.Customers),
		"restaurants", len(res.Restaurants),
	)
	return res, nil
}
