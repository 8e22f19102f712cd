package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Room struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string         `json:"name" gorm:"size:100;not null;uniqueIndex:idx_rooms_name,where:deleted_at IS NULL"`
	TypeRoomID uuid.UUID      `json:"typeRoomId" gorm:"type:uuid;not null;index"`
	LocationID uuid.UUID      `json:"locationId" gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time      `json:"createdAt" gorm:"not null"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
	TypeRoom   TypeRoom       `json:"-" gorm:"foreignKey:TypeRoomID;constraint:OnDelete:CASCADE"`
	Location   Location       `json:"-" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
