package repository

import (
	"context"
	"time"

	"github.com/N0Nameez/carcatalog/internal/models"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	FindOwnedByID(ctx context.Context, id, userID uint) (*models.Reservation, error)
	FindByUserID(ctx context.Context, userID uint) ([]models.Reservation, error)
	FindActiveByCarID(ctx context.Context, carID uint) ([]models.Reservation, error)
	HasOverlap(ctx context.Context, tx *gorm.DB, carID uint, startDate, endDate time.Time) (bool, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, reservationID uint, status models.ReservationStatus) error
	GetDB() *gorm.DB
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *reservationRepository) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return tx.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Car.Model.Brand").
		Preload("User").
		First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindOwnedByID(ctx context.Context, id, userID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Car.Model.Brand").
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) FindActiveByCarID(ctx context.Context, carID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Car.Model.Brand").
		Preload("User").
		Where("car_id = ? AND status <> ?", carID, models.StatusCancelled).
		Order("start_date ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// HasOverlap reports whether any non-cancelled reservation for the car shares
// at least one calendar day with [startDate, endDate] (inclusive bounds).
func (r *reservationRepository) HasOverlap(ctx context.Context, tx *gorm.DB, carID uint, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("car_id = ? AND status <> ?", carID, models.StatusCancelled).
		Where(
			"(start_date <= ? AND end_date >= ?) OR (start_date <= ? AND end_date >= ?) OR (start_date >= ? AND end_date <= ?)",
			startDate, startDate, endDate, endDate, startDate, endDate,
		).
		Count(&count).Error
	return count > 0, err
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, reservationID uint, status models.ReservationStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", reservationID).
		Update("status", status).Error
}
