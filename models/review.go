package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	RoomID    uuid.UUID      `json:"roomId" gorm:"type:uuid;not null;index"`
	AccountID uuid.UUID      `json:"accountId" gorm:"type:uuid;not null;index"`
	Comment   string         `json:"comment" gorm:"type:text"`
	Rating    int            `json:"rating" gorm:"not null;index"`
	CreatedAt time.Time      `json:"createdAt" gorm:"not null"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Room      Room           `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
