package models

import "time"

// Reservation statuses. A reservation starts out booked, moves to seated
// when a party is placed at a table, and ends finished or cancelled.
const (
	StatusBooked    = "booked"
	StatusSeated    = "seated"
	StatusFinished  = "finished"
	StatusCancelled = "cancelled"
)

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"reservation_id"`
	FirstName       string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName        string    `gorm:"type:varchar(100);not null" json:"last_name"`
	MobileNumber    string    `gorm:"type:varchar(50);not null;index" json:"mobile_number"`
	People          int       `gorm:"not null" json:"people"`
	ReservationDate string    `gorm:"type:varchar(10);not null;index" json:"reservation_date"`
	ReservationTime string    `gorm:"type:varchar(8);not null" json:"reservation_time"`
	Status          string    `gorm:"type:varchar(20);not null;default:'booked'" json:"status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// ValidReservationStatus reports whether s is one of the four known statuses.
func ValidReservationStatus(s string) bool {
	switch s {
	case StatusBooked, StatusSeated, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the reservation may move to the requested
// status. Transitions are one-directional (booked -> seated -> finished);
// cancellation is reachable from booked and seated. finished and cancelled
// are terminal.
func (r *Reservation) CanTransitionTo(status string) bool {
	switch r.Status {
	case StatusBooked:
		return status == StatusSeated || status == StatusCancelled
	case StatusSeated:
		return status == StatusFinished || status == StatusCancelled
	}
	return false
}

// Finished reports whether the reservation is in its terminal finished state.
func (r *Reservation) Finished() bool {
	return r.Status == StatusFinished
}

// Editable reports whether the reservation's fields may still be changed.
// Only booked reservations are editable.
func (r *Reservation) Editable() bool {
	return r.Status == StatusBooked
}
