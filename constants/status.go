package constants

// Booking status
const (
	BookingStatusHolding   = 1
	BookingStatusConfirmed = 2
	BookingStatusCancelled = 3
	BookingStatusCompleted = 4
)

// Phân trang
const (
	MinPageNumber   = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Giới hạn độ dài / giá trị khi validate
const (
	LocationMinNameLength    = 3
	LocationMaxNameLength    = 100
	LocationMinAddressLength = 10
	LocationMaxAddressLength = 200

	TypeRoomMinNameLength = 3
	TypeRoomMaxNameLength = 50
	TypeRoomMinPrice      = 0

	RoomMinNameLength = 3
	RoomMaxNameLength = 100

	ReviewMinRating = 1
	ReviewMaxRating = 5
)

// Upload file
const (
	MaxUploadFileSize = 10 * 1024 * 1024
	DefaultUploadDir  = "uploads-booking"
)

// AllowedUploadExtensions danh sách đuôi file được phép upload
var AllowedUploadExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp",
	".pdf", ".doc", ".docx", ".txt", ".rtf",
	".mp4", ".avi", ".mov", ".wmv", ".flv",
	".mp3", ".wav", ".ogg", ".m4a",
}
