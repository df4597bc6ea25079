package dto

import (
	"time"

	"github.com/N0Nameez/carcatalog/internal/models"
)

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Email           string  `json:"email"`
	Username        *string `json:"username,omitempty"`
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
	AvatarURL       *string `json:"avatarUrl,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     string  `json:"newPassword,omitempty"`
}

type CreateCarRequest struct {
	ModelID     uint             `json:"modelId"`
	Vin         *string          `json:"vin,omitempty"`
	Year        int              `json:"year"`
	Color       *string          `json:"color,omitempty"`
	Price       *float64         `json:"price,omitempty"`
	Mileage     *int             `json:"mileage,omitempty"`
	Status      models.CarStatus `json:"status"`
	Description *string          `json:"description,omitempty"`
	PhotoURL    *string          `json:"photoUrl,omitempty"`
}

// UpdateCarRequest replaces all mutable fields of a car.
type UpdateCarRequest = CreateCarRequest

type CreateReservationRequest struct {
	CarID      uint      `json:"carId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	TotalPrice float64   `json:"totalPrice"`
	Comment    *string   `json:"comment,omitempty"`
}

type UpdateReservationStatusRequest struct {
	NewStatus string `json:"newStatus"`
}
