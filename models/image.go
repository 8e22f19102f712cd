package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Image struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	OriginFilename string         `json:"originFilename" gorm:"not null"`
	Filename       string         `json:"filename" gorm:"not null"` // key trên file storage
	Filesize       int64          `json:"filesize" gorm:"not null"`
	FileType       string         `json:"fileType" gorm:"not null"`
	FullPath       string         `json:"fullPath" gorm:"not null"`
	RoomID         uuid.UUID      `json:"roomId" gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time      `json:"createdAt" gorm:"not null"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
	Room           Room           `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID)
	return nil
}
