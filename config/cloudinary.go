package config

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ConnectCloudinary trả về nil khi không cấu hình CLOUDINARY_URL
func ConnectCloudinary(url string) (*cloudinary.Cloudinary, error) {
	if url == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi khởi tạo Cloudinary: %w", err)
	}
	return cld, nil
}
