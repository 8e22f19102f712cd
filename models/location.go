package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Location struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"size:100;not null;uniqueIndex:idx_locations_name,where:deleted_at IS NULL"`
	Address   string         `json:"address" gorm:"size:200;not null"`
	CreatedAt time.Time      `json:"createdAt" gorm:"not null"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}
