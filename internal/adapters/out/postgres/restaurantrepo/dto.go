// Package restaurantrepo persists restaurants with GORM.
package restaurantrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO is the row of the restaurants table.
type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null;index"`
	CityID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(v *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          v.ID().Bytes(),
		Name:        v.Name(),
		CityID:      v.CityID().Bytes(),
		Description: v.Description(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	cityID, err := kernel.UUIDFromGoogle(dto.CityID)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, cityID, dto.Description)
}
