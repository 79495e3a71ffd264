package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dispatch/internal/adapters/out/postgres/cityrepo"
	"dispatch/internal/adapters/out/postgres/customerrepo"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/restaurantrepo"

	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// maintenanceDB is the database EnsureDatabase connects to.
const maintenanceDB = "postgres"

// ConnectionConfig holds the libpq connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the config as a libpq keyword/value connection string.
func (c ConnectionConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode,
	)
}

// EnsureDatabase creates the configured database when it does not exist yet.
func EnsureDatabase(ctx context.Context, cfg ConnectionConfig) error {
	admin := cfg
	admin.Name = maintenanceDB

	db, err := sql.Open("postgres", admin.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", cfg.Name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %q: %w", cfg.Name, err)
	}
	if exists {
		return nil
	}

	if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(cfg.Name)); err != nil {
		return fmt.Errorf("create database %q: %w", cfg.Name, err)
	}
	return nil
}

// Open connects GORM to the database described by dsn.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates the schema of every table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&cityrepo.CityDTO{},
		&driverrepo.DriverDTO{},
		&customerrepo.CustomerDTO{},
		&restaurantrepo.RestaurantDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
}
