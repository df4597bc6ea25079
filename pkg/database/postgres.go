package database

import (
	"log"

	"github.com/N0Nameez/carcatalog/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Model{},
		&models.Car{},
		&models.Reservation{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: VIN must be unique only when set
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_cars_vin
		ON cars (vin)
		WHERE vin IS NOT NULL AND vin <> ''
	`)

	// Serves the overlap check, which only ever scans active reservations
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_car_active
		ON reservations (car_id, start_date, end_date)
		WHERE status <> 'cancelled'
	`)

	return db
}
