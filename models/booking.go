package models

import (
	"time"

	"hotel-booking/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus int

const (
	BookingStatusHolding   BookingStatus = constants.BookingStatusHolding
	BookingStatusConfirmed BookingStatus = constants.BookingStatusConfirmed
	BookingStatusCancelled BookingStatus = constants.BookingStatusCancelled
	BookingStatusCompleted BookingStatus = constants.BookingStatusCompleted
)

func (s BookingStatus) Valid() bool {
	return s >= BookingStatusHolding && s <= BookingStatusCompleted
}

func (s BookingStatus) String() string {
	switch s {
	case BookingStatusHolding:
		return "Holding"
	case BookingStatusConfirmed:
		return "Confirmed"
	case BookingStatusCancelled:
		return "Cancelled"
	case BookingStatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

type Booking struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	RoomID       uuid.UUID      `json:"roomId" gorm:"type:uuid;not null;index"`
	CheckInTime  time.Time      `json:"checkInTime" gorm:"not null"`
	CheckOutTime time.Time      `json:"checkOutTime" gorm:"not null"`
	AccountID    uuid.UUID      `json:"accountId" gorm:"type:uuid;not null;index"`
	Status       BookingStatus  `json:"status" gorm:"not null;index"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"not null"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
	Room         Room           `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	ensureID(&b.ID)
	return nil
}
