package models

import "time"

type CarStatus string

const (
	CarAvailable CarStatus = "available"
	CarReserved  CarStatus = "reserved"
	CarSold      CarStatus = "sold"
)

func (s CarStatus) Valid() bool {
	switch s {
	case CarAvailable, CarReserved, CarSold:
		return true
	}
	return false
}

type Brand struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Country *string `json:"country,omitempty"`

	Models []Model `gorm:"foreignKey:BrandID" json:"models,omitempty"`
}

type Model struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BrandID  uint   `gorm:"not null;index" json:"brand_id"`
	Name     string `gorm:"not null" json:"name"`
	YearFrom *int   `json:"year_from,omitempty"`
	YearTo   *int   `json:"year_to,omitempty"`

	Brand *Brand `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
}

type Car struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ModelID     uint      `gorm:"not null;index" json:"model_id"`
	Vin         *string   `json:"vin,omitempty"`
	Year        int       `gorm:"not null" json:"year"`
	Color       *string   `json:"color,omitempty"`
	Price       *float64  `gorm:"type:decimal(12,2)" json:"price,omitempty"`
	Mileage     *int      `json:"mileage,omitempty"`
	Status      CarStatus `gorm:"type:varchar(16);not null;default:'available';index" json:"status"`
	Description *string   `json:"description,omitempty"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	CreatedBy   *uint     `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Model *Model `gorm:"foreignKey:ModelID" json:"model,omitempty"`
}
