package repository

import (
	"context"

	"github.com/N0Nameez/carcatalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CarFilters are AND-combined; nil fields are skipped.
type CarFilters struct {
	BrandID  *uint
	ModelID  *uint
	MinYear  *int
	MaxYear  *int
	MinPrice *float64
	MaxPrice *float64
	Status   *models.CarStatus
	Color    *string
}

type CarRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Car, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Car, error)
	FindAll(ctx context.Context, filters CarFilters) ([]models.Car, error)
	Create(ctx context.Context, car *models.Car) error
	Update(ctx context.Context, car *models.Car) error
	Delete(ctx context.Context, id uint) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, carID uint, status models.CarStatus) error
	FindBrands(ctx context.Context) ([]models.Brand, error)
}

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) FindByID(ctx context.Context, id uint) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).
		Preload("Model.Brand").
		First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// FindByIDForUpdate acquires a row-level lock on the car within the given
// transaction. No joins here: the lock must land on the cars row itself.
func (r *carRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Car, error) {
	var car models.Car
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) FindAll(ctx context.Context, f CarFilters) ([]models.Car, error) {
	var cars []models.Car
	q := r.db.WithContext(ctx).Preload("Model.Brand")

	if f.BrandID != nil {
		q = q.Joins("JOIN models ON models.id = cars.model_id").
			Where("models.brand_id = ?", *f.BrandID)
	}
	if f.ModelID != nil {
		q = q.Where("cars.model_id = ?", *f.ModelID)
	}
	if f.MinYear != nil {
		q = q.Where("cars.year >= ?", *f.MinYear)
	}
	if f.MaxYear != nil {
		q = q.Where("cars.year <= ?", *f.MaxYear)
	}
	if f.MinPrice != nil {
		q = q.Where("cars.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("cars.price <= ?", *f.MaxPrice)
	}
	if f.Status != nil {
		q = q.Where("cars.status = ?", *f.Status)
	}
	if f.Color != nil {
		q = q.Where("cars.color = ?", *f.Color)
	}

	if err := q.Order("cars.id ASC").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *carRepository) Update(ctx context.Context, car *models.Car) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(car).Error
}

func (r *carRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Car{}, id).Error
}

func (r *carRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, carID uint, status models.CarStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Car{}).
		Where("id = ?", carID).
		Update("status", status).Error
}

func (r *carRepository) FindBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.WithContext(ctx).
		Preload("Models").
		Order("name ASC").
		Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}
