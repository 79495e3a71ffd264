package cityrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCityRepository implements ports.CityRepository using GORM.
type GormCityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCityRepository(db *gorm.DB, tracker aggregateTracker) *GormCityRepository {
	return &GormCityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new city. A taken name or identifier yields ports.ErrAlreadyExists.
func (r *GormCityRepository) Add(ctx context.Context, c *city.City) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, "") {
			return fmt.Errorf("city %q: %w", c.Name(), ports.ErrAlreadyExists)
		}
		return err
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

func (r *GormCityRepository) Get(ctx context.Context, id kernel.UUID) (*city.City, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("city", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCityRepository) FindByName(ctx context.Context, name string) (*city.City, error) {
	var dto CityDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("city", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every city ordered by name.
func (r *GormCityRepository) GetAll(ctx context.Context) ([]*city.City, error) {
	var dtos []CityDTO
	if err := r.db.WithContext(ctx).Order(`name COLLATE "C", id`).Find(&dtos).Error; err != nil {
		return nil, err
	}

	cities := make([]*city.City, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}

	return cities, nil
}
