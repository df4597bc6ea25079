package service

import (
	"context"
	"errors"
	"time"

	"github.com/N0Nameez/carcatalog/internal/models"
	"github.com/N0Nameez/carcatalog/internal/repository"
	"github.com/N0Nameez/carcatalog/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrCarNotFound         = errors.New("car not found")
	ErrCarUnavailable      = errors.New("car is not available for reservation")
	ErrDatesUnavailable    = errors.New("car is already booked for the selected dates")
	ErrEndBeforeStart      = errors.New("end date must be after start date")
	ErrMaxDuration         = errors.New("maximum reservation length is 7 days")
	ErrMustStartToday      = errors.New("reservation must start today")
	ErrMinDuration         = errors.New("minimum reservation length is 1 day")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrCancelCutoff        = errors.New("cancellation is only allowed at least 24 hours before the start date")
	ErrUnknownStatus       = errors.New("unknown reservation status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
)

const (
	maxReservationDays = 7
	minReservationDays = 1
	cancelCutoff       = 24 * time.Hour
)

type CreateReservationInput struct {
	CarID      uint
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
	Comment    *string
}

type ReservationService interface {
	CreateReservation(ctx context.Context, userID uint, in CreateReservationInput) (*models.Reservation, error)
	CancelReservation(ctx context.Context, reservationID, userID uint) error
	UpdateReservationStatus(ctx context.Context, reservationID uint, newStatus string) (*models.Reservation, error)
	GetUserReservations(ctx context.Context, userID uint) ([]models.Reservation, error)
	GetCarReservations(ctx context.Context, carID uint) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	carRepo         repository.CarRepository
	publisher       *rabbitmq.Publisher

	now func() time.Time
}

func NewReservationService(reservationRepo repository.ReservationRepository, carRepo repository.CarRepository, publisher *rabbitmq.Publisher) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		carRepo:         carRepo,
		publisher:       publisher,
		now:             time.Now,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, userID uint, in CreateReservationInput) (*models.Reservation, error) {
	startDate := models.DateOnly(in.StartDate)
	endDate := models.DateOnly(in.EndDate)

	var created *models.Reservation

	err := s.reservationRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the car row — serializes concurrent reservation attempts
		car, err := s.carRepo.FindByIDForUpdate(ctx, tx, in.CarID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCarNotFound
			}
			return err
		}

		// 2. Car must currently be free
		if car.Status != models.CarAvailable {
			return ErrCarUnavailable
		}

		// 3. No active reservation may share a day with the requested range
		overlap, err := s.reservationRepo.HasOverlap(ctx, tx, in.CarID, startDate, endDate)
		if err != nil {
			return err
		}
		if overlap {
			return ErrDatesUnavailable
		}

		// 4-7. Date window checks, in contract order
		if !endDate.After(startDate) {
			return ErrEndBeforeStart
		}
		days := int(endDate.Sub(startDate).Hours() / 24)
		if days > maxReservationDays {
			return ErrMaxDuration
		}
		if !startDate.Equal(models.DateOnly(s.now())) {
			return ErrMustStartToday
		}
		if days < minReservationDays {
			return ErrMinDuration
		}

		reservation := &models.Reservation{
			CarID:      in.CarID,
			UserID:     userID,
			StartDate:  startDate,
			EndDate:    endDate,
			Status:     models.StatusConfirmed,
			TotalPrice: in.TotalPrice,
			Comment:    in.Comment,
		}
		if err := s.reservationRepo.Create(ctx, tx, reservation); err != nil {
			return err
		}
		if err := s.carRepo.UpdateStatus(ctx, tx, in.CarID, models.CarReserved); err != nil {
			return err
		}

		created = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := s.reservationRepo.FindByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.KeyReservationCreated, result)
	}
	return result, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID, userID uint) error {
	reservation, err := s.reservationRepo.FindOwnedByID(ctx, reservationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		return err
	}

	if reservation.StartDate.Sub(s.now()) < cancelCutoff {
		return ErrCancelCutoff
	}

	err = s.reservationRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reservationRepo.UpdateStatus(ctx, tx, reservationID, models.StatusCancelled); err != nil {
			return err
		}
		// The overlap invariant guarantees no other active reservation holds
		// the car, so freeing it unconditionally is safe.
		return s.carRepo.UpdateStatus(ctx, tx, reservation.CarID, models.CarAvailable)
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.KeyReservationCancelled, map[string]uint{
			"reservationId": reservationID,
			"carId":         reservation.CarID,
			"userId":        userID,
		})
	}
	return nil
}

func (s *reservationService) UpdateReservationStatus(ctx context.Context, reservationID uint, newStatus string) (*models.Reservation, error) {
	status := models.ReservationStatus(newStatus)
	if !status.Valid() {
		return nil, ErrUnknownStatus
	}

	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if !models.CanTransition(reservation.Status, status) {
		return nil, ErrInvalidTransition
	}

	err = s.reservationRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reservationRepo.UpdateStatus(ctx, tx, reservationID, status); err != nil {
			return err
		}
		if status == models.StatusCancelled || status == models.StatusCompleted {
			return s.carRepo.UpdateStatus(ctx, tx, reservation.CarID, models.CarAvailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.KeyReservationStatusUpdated, result)
	}
	return result, nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID uint) ([]models.Reservation, error) {
	return s.reservationRepo.FindByUserID(ctx, userID)
}

func (s *reservationService) GetCarReservations(ctx context.Context, carID uint) ([]models.Reservation, error) {
	return s.reservationRepo.FindActiveByCarID(ctx, carID)
}

func (s *reservationService) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}
