package models

import "time"

// Table statuses. A table is occupied exactly when it holds a reference to
// the seated reservation occupying it; freeing the table clears the
// reference.
const (
	TableFree     = "free"
	TableOccupied = "occupied"
)

type Table struct {
	ID            uint         `gorm:"primaryKey" json:"table_id"`
	TableName     string       `gorm:"type:varchar(50);not null" json:"table_name"`
	Capacity      int          `gorm:"not null" json:"capacity"`
	Status        string       `gorm:"type:varchar(20);not null;default:'free'" json:"status"`
	ReservationID *uint        `gorm:"index" json:"reservation_id"`
	Reservation   *Reservation `gorm:"foreignKey:ReservationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null" json:"updated_at"`
}

// Occupied reports whether a seated reservation currently holds the table.
func (t *Table) Occupied() bool {
	return t.Status == TableOccupied
}
