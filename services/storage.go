package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// FileStorage nơi lưu file upload, key dạng <folder>/<yyyy-mm-dd>/<uuid><ext>
type FileStorage interface {
	Upload(ctx context.Context, key string, content io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cld *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld}
}

// Upload trả về secure URL của file
func (s *CloudinaryStorage) Upload(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	resourceType := cloudinaryResourceType(key)
	resp, err := s.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		PublicID:     cloudinaryPublicID(key, resourceType),
		ResourceType: resourceType,
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, key string) error {
	resourceType := cloudinaryResourceType(key)
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     cloudinaryPublicID(key, resourceType),
		ResourceType: resourceType,
	})
	if err != nil {
		return err
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return nil
}

// cloudinaryResourceType audio cũng lưu dưới dạng video trên Cloudinary
func cloudinaryResourceType(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".pdf":
		return "image"
	case ".mp4", ".avi", ".mov", ".wmv", ".flv", ".mp3", ".wav", ".ogg", ".m4a":
		return "video"
	default:
		return "raw"
	}
}

// raw giữ nguyên đuôi file trong public id, image/video thì bỏ
func cloudinaryPublicID(key, resourceType string) string {
	if resourceType == "raw" {
		return key
	}
	return strings.TrimSuffix(key, path.Ext(key))
}
