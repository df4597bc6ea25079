package dto

import (
	"time"

	"github.com/N0Nameez/carcatalog/internal/models"
)

type CarResponse struct {
	ID          uint             `json:"id"`
	BrandName   string           `json:"brandName"`
	ModelName   string           `json:"modelName"`
	Year        int              `json:"year"`
	Color       *string          `json:"color,omitempty"`
	Vin         *string          `json:"vin,omitempty"`
	Price       *float64         `json:"price,omitempty"`
	Mileage     *int             `json:"mileage,omitempty"`
	Status      models.CarStatus `json:"status"`
	Description *string          `json:"description,omitempty"`
	PhotoURL    *string          `json:"photoUrl,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type ReservationResponse struct {
	ID         uint                     `json:"id"`
	Car        CarResponse              `json:"car"`
	UserID     uint                     `json:"userId"`
	UserEmail  string                   `json:"userEmail"`
	StartDate  time.Time                `json:"startDate"`
	EndDate    time.Time                `json:"endDate"`
	TotalPrice float64                  `json:"totalPrice"`
	Status     models.ReservationStatus `json:"status"`
	Comment    *string                  `json:"comment,omitempty"`
	CreatedAt  time.Time                `json:"createdAt"`
	UpdatedAt  time.Time                `json:"updatedAt"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserProfileResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Username  *string   `json:"username,omitempty"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BrandResponse struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Country *string         `json:"country,omitempty"`
	Models  []ModelResponse `json:"models"`
}

type ModelResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	YearFrom *int   `json:"yearFrom,omitempty"`
	YearTo   *int   `json:"yearTo,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToCarResponse(car *models.Car) CarResponse {
	resp := CarResponse{
		ID:          car.ID,
		Year:        car.Year,
		Color:       car.Color,
		Vin:         car.Vin,
		Price:       car.Price,
		Mileage:     car.Mileage,
		Status:      car.Status,
		Description: car.Description,
		PhotoURL:    car.PhotoURL,
		CreatedAt:   car.CreatedAt,
	}
	if car.Model != nil {
		resp.ModelName = car.Model.Name
		if car.Model.Brand != nil {
			resp.BrandName = car.Model.Brand.Name
		}
	}
	return resp
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TotalPrice: r.TotalPrice,
		Status:     r.Status,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.Car != nil {
		resp.Car = ToCarResponse(r.Car)
	}
	if r.User != nil {
		resp.UserEmail = r.User.Email
	}
	return resp
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Role: u.Role}
}

func ToUserProfileResponse(u *models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToBrandResponse(b *models.Brand) BrandResponse {
	resp := BrandResponse{
		ID:      b.ID,
		Name:    b.Name,
		Country: b.Country,
		Models:  make([]ModelResponse, len(b.Models)),
	}
	for i, m := range b.Models {
		resp.Models[i] = ModelResponse{ID: m.ID, Name: m.Name, YearFrom: m.YearFrom, YearTo: m.YearTo}
	}
	return resp
}
