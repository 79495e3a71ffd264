// Package cityrepo persists cities with GORM.
package cityrepo

import (
	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// NameIndex is the unique index on city names.
const NameIndex = "idx_cities_name"

// CityDTO is the row of the cities table.
type CityDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null;uniqueIndex:idx_cities_name"`
}

func (CityDTO) TableName() string {
	return "cities"
}

func fromDomain(c *city.City) CityDTO {
	return CityDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
	}
}

func toDomain(dto CityDTO) (*city.City, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return city.RestoreCity(id, dto.Name)
}
