package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TypeRoom struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string         `json:"name" gorm:"size:50;not null;uniqueIndex:idx_type_rooms_name,where:deleted_at IS NULL"`
	PricePerHour float64        `json:"pricePerHour" gorm:"not null"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"not null"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (t *TypeRoom) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
