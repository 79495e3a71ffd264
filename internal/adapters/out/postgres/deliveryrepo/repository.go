package deliveryrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const listOrder = "delivery_time, id"

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the delivery. A violation of DriverTimeIndex is reported as
// ports.ErrDriverAlreadyBooked. Inside a transaction the failed statement
// aborts it, so callers must roll back.
func (r *GormDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		switch {
		case pgerr.IsUniqueViolation(err, DriverTimeIndex):
			return fmt.Errorf("driver %s at %s: %w", d.DriverID(), d.DeliveryTime(), ports.ErrDriverAlreadyBooked)
		case pgerr.IsUniqueViolation(err, ""):
			return fmt.Errorf("delivery %s: %w", d.ID(), ports.ErrAlreadyExists)
		}
		return err
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormDeliveryRepository) GetAllByDrivers(ctx context.Context, driverIDs []kernel.UUID) ([]*delivery.Delivery, error) {
	if len(driverIDs) == 0 {
		return []*delivery.Delivery{}, nil
	}

	ids := make([]uuid.UUID, 0, len(driverIDs))
	for _, id := range driverIDs {
		ids = append(ids, id.Bytes())
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("driver_id IN ?", ids).
		Order(listOrder).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
