// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row of the customers table.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null;index"`
	CityID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Address string
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(v *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      v.ID().Bytes(),
		Name:    v.Name(),
		CityID:  v.CityID().Bytes(),
		Address: v.Address(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	cityID, err := kernel.UUIDFromGoogle(dto.CityID)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, cityID, dto.Address)
}
