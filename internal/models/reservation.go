package models

import "time"

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// allowedTransitions is the reservation status graph. cancelled and completed
// are terminal.
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransition reports whether from -> to is allowed. A self-transition is a
// no-op and always allowed.
func CanTransition(from, to ReservationStatus) bool {
	if from == to {
		return true
	}
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	CarID      uint              `gorm:"not null;index" json:"car_id"`
	UserID     uint              `gorm:"not null;index" json:"user_id"`
	StartDate  time.Time         `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time         `gorm:"type:date;not null" json:"end_date"`
	Status     ReservationStatus `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	TotalPrice float64           `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Comment    *string           `json:"comment,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Car  *Car  `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE" json:"car,omitempty"`
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// DateOnly strips the time-of-day part, keeping the calendar date in UTC.
// Reservation bounds are calendar dates.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether the two inclusive date ranges share at least one
// calendar day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return (!aStart.After(bStart) && !aEnd.Before(bStart)) ||
		(!aStart.After(bEnd) && !aEnd.Before(bEnd)) ||
		(!aStart.Before(bStart) && !aEnd.After(bEnd))
}
