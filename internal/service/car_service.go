package service

import (
	"context"
	"errors"

	"github.com/N0Nameez/carcatalog/internal/dto"
	"github.com/N0Nameez/carcatalog/internal/models"
	"github.com/N0Nameez/carcatalog/internal/repository"
	"gorm.io/gorm"
)

var ErrUnknownCarStatus = errors.New("unknown car status")

type CarService interface {
	GetCars(ctx context.Context, filters repository.CarFilters) ([]models.Car, error)
	GetCar(ctx context.Context, id uint) (*models.Car, error)
	CreateCar(ctx context.Context, in dto.CreateCarRequest, createdBy uint) (*models.Car, error)
	UpdateCar(ctx context.Context, id uint, in dto.UpdateCarRequest) (*models.Car, error)
	DeleteCar(ctx context.Context, id uint) error
	GetBrands(ctx context.Context) ([]models.Brand, error)
}

type carService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) GetCars(ctx context.Context, filters repository.CarFilters) ([]models.Car, error) {
	return s.carRepo.FindAll(ctx, filters)
}

func (s *carService) GetCar(ctx context.Context, id uint) (*models.Car, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return car, nil
}

func (s *carService) CreateCar(ctx context.Context, in dto.CreateCarRequest, createdBy uint) (*models.Car, error) {
	status := in.Status
	if status == "" {
		status = models.CarAvailable
	}
	if !status.Valid() {
		return nil, ErrUnknownCarStatus
	}

	car := &models.Car{
		ModelID:     in.ModelID,
		Vin:         in.Vin,
		Year:        in.Year,
		Color:       in.Color,
		Price:       in.Price,
		Mileage:     in.Mileage,
		Status:      status,
		Description: in.Description,
		PhotoURL:    in.PhotoURL,
		CreatedBy:   &createdBy,
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}
	return s.carRepo.FindByID(ctx, car.ID)
}

func (s *carService) UpdateCar(ctx context.Context, id uint, in dto.UpdateCarRequest) (*models.Car, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	if !in.Status.Valid() {
		return nil, ErrUnknownCarStatus
	}

	car.ModelID = in.ModelID
	car.Vin = in.Vin
	car.Year = in.Year
	car.Color = in.Color
	car.Price = in.Price
	car.Mileage = in.Mileage
	car.Status = in.Status
	car.Description = in.Description
	car.PhotoURL = in.PhotoURL

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	return s.carRepo.FindByID(ctx, car.ID)
}

func (s *carService) DeleteCar(ctx context.Context, id uint) error {
	if _, err := s.carRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCarNotFound
		}
		return err
	}
	return s.carRepo.Delete(ctx, id)
}

func (s *carService) GetBrands(ctx context.Context) ([]models.Brand, error) {
	return s.carRepo.FindBrands(ctx)
}
