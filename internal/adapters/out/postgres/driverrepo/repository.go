package driverrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// listOrder is the deterministic driver order the domain services rely on.
// Names compare bytewise, independent of the database collation.
const listOrder = `name COLLATE "C", id`

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, "") {
			return fmt.Errorf("driver %s: %w", d.ID(), ports.ErrAlreadyExists)
		}
		return err
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByName returns the first driver with the given name.
func (r *GormDriverRepository) FindByName(ctx context.Context, name string) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormDriverRepository) GetAllByCity(ctx context.Context, cityID kernel.UUID) ([]*driver.Driver, error) {
	if err := cityID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("city_id = ?", cityID.Bytes()).
		Order(listOrder).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
