package models

import (
	"github.com/google/uuid"
)

// AllModels danh sách model theo thứ tự migrate (bảng cha trước)
func AllModels() []interface{} {
	return []interface{}{
		&Location{},
		&TypeRoom{},
		&Room{},
		&Image{},
		&Booking{},
		&Review{},
	}
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
