// Package deliveryrepo persists deliveries with GORM. The deliveries table
// carries a unique index on (driver_id, delivery_time) so that no driver can be
// booked twice for the same time, whatever process writes the row.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverTimeIndex is the unique index that backs the one-delivery-per-driver-
// per-time rule.
const DriverTimeIndex = "idx_deliveries_driver_time"

// DeliveryDTO is the row of the deliveries table. timestamptz keeps
// microseconds, which matches delivery.TimePrecision.
type DeliveryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_deliveries_driver_time,priority:1"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null"`
	DeliveryTime time.Time `gorm:"type:timestamptz;not null;uniqueIndex:idx_deliveries_driver_time,priority:2"`
	DistanceKm   float64   `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           d.ID().Bytes(),
		DriverID:     d.DriverID().Bytes(),
		RestaurantID: d.RestaurantID().Bytes(),
		CustomerID:   d.CustomerID().Bytes(),
		DeliveryTime: d.DeliveryTime(),
		DistanceKm:   d.Distance().Kilometers(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.DriverID, dto.RestaurantID, dto.CustomerID} {
		id, err := kernel.UUIDFromGoogle(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	distance, err := kernel.NewDistance(dto.DistanceKm)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(ids[0], ids[1], ids[2], ids[3], dto.DeliveryTime, distance)
}

func toDomainList(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}
