// Package restaurant provides the Restaurant entity.
package restaurant

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New(
	"Restaurant must be created via NewRestaurant or RestoreRestaurant constructor",
)

// Restaurant prepares the food of a delivery. It only serves customers of its
// own city.
type Restaurant struct {
	id          kernel.UUID
	name        string
	cityID      kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant with a fresh identity.
func NewRestaurant(name string, cityID kernel.UUID, description string) (*Restaurant, error) {
	return RestoreRestaurant(kernel.NewUUID(), name, cityID, description)
}

// RestoreRestaurant rebuilds a restaurant loaded from storage.
func RestoreRestaurant(id kernel.UUID, name string, cityID kernel.UUID, description string) (*Restaurant, error) {
	r := &Restaurant{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setCityID(cityID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID     { return r.id }
func (r *Restaurant) Name() string        { return r.name }
func (r *Restaurant) CityID() kernel.UUID { return r.cityID }
func (r *Restaurant) Description() string { return r.description }

// SharesCityWith reports whether the restaurant and a party based in cityID are
// in the same city.
func (r *Restaurant) SharesCityWith(cityID kernel.UUID) bool {
	return r.cityID.IsEqual(cityID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCityID(cityID kernel.UUID) error {
	if err := cityID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("city", err)
	}
	r.cityID = cityID
	return nil
}
