package dto

import "hotel-booking/models"

func ToLocationDto(l models.Location) LocationDto {
	return LocationDto{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		CreatedAt: l.CreatedAt,
	}
}

func ToTypeRoomDto(t models.TypeRoom) TypeRoomDto {
	return TypeRoomDto{
		ID:           t.ID,
		Name:         t.Name,
		PricePerHour: t.PricePerHour,
		CreatedAt:    t.CreatedAt,
	}
}

func ToRoomDto(r models.Room) RoomDto {
	return RoomDto{
		ID:         r.ID,
		Name:       r.Name,
		TypeRoomID: r.TypeRoomID,
		LocationID: r.LocationID,
		CreatedAt:  r.CreatedAt,
	}
}

func ToImageDto(i models.Image) ImageDto {
	return ImageDto{
		ID:             i.ID,
		OriginFilename: i.OriginFilename,
		Filename:       i.Filename,
		Filesize:       i.Filesize,
		FileType:       i.FileType,
		FullPath:       i.FullPath,
		RoomID:         i.RoomID,
		CreatedAt:      i.CreatedAt,
	}
}

// ToBookingDto roomName lấy từ Room đã preload, rỗng nếu chưa preload
func ToBookingDto(b models.Booking) BookingDto {
	return BookingDto{
		ID:           b.ID,
		RoomID:       b.RoomID,
		RoomName:     b.Room.Name,
		CheckInTime:  b.CheckInTime,
		CheckOutTime: b.CheckOutTime,
		AccountID:    b.AccountID,
		Status:       int(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

func ToReviewDto(r models.Review) ReviewDto {
	return ReviewDto{
		ID:        r.ID,
		RoomID:    r.RoomID,
		RoomName:  r.Room.Name,
		AccountID: r.AccountID,
		Comment:   r.Comment,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
	}
}
