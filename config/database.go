package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"hotel-booking/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewGormLogger prod chỉ log warn, môi trường khác log cả câu query
func NewGormLogger(prod bool) gormlogger.Interface {
	level := gormlogger.Info
	if prod {
		level = gormlogger.Warn
	}
	return gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !prod,
		},
	)
}

// GormConfig lỗi trùng unique được dịch sang gorm.ErrDuplicatedKey
func GormConfig(prod bool) *gorm.Config {
	return &gorm.Config{
		Logger:         NewGormLogger(prod),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func ConnectDB(cfg BookingConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), GormConfig(cfg.IsProd()))
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	if cfg.DB.ShouldMigrate() {
		if err := db.AutoMigrate(models.AllModels()...); err != nil {
			return nil, fmt.Errorf("failed to migrate tables: %w", err)
		}
	}

	log.Println("Successfully connected to db")
	return db, nil
}
