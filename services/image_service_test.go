package services

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"hotel-booking/dto"

	"github.com/google/uuid"
)

func TestUploadImage(t *testing.T) {
	opts, _ := testOptions(t)
	ctx := context.Background()
	room := seedRoom(t, opts, "Room 101")
	storage := newFakeStorage()
	svc := NewImageService(ImageServiceOptions{ServiceOptions: opts, Storage: storage})

	res := svc.UploadImage(ctx, dto.UploadImageRequest{
		RoomID:      room.ID,
		Filename:    "Lobby.PNG",
		ContentType: "image/png",
		Size:        4,
		Content:     strings.NewReader("data"),
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("upload status = %d (%s)", res.StatusCode, res.Message)
	}

	keyPattern := regexp.MustCompile(`^uploads-booking/2030-01-01/[0-9a-f-]{36}\.png$`)
	if !keyPattern.MatchString(res.Data.Filename) {
		t.Fatalf("unexpected storage key %q", res.Data.Filename)
	}
	if storage.uploaded[res.Data.Filename] != "data" {
		t.Fatalf("content not uploaded under key")
	}
	if res.Data.OriginFilename != "Lobby.PNG" || res.Data.FullPath != "https://cdn.example.com/"+res.Data.Filename {
		t.Fatalf("metadata = %+v", res.Data)
	}

	list := svc.GetImages(ctx, dto.ImagePaginationRequest{RoomID: room.ID.String()})
	if list.Data.Paging.Total != 1 {
		t.Fatalf("list total = %d", list.Data.Paging.Total)
	}

	if del := svc.DeleteImage(ctx, res.Data.ID); !del.IsSuccess {
		t.Fatalf("delete: %s", del.Message)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != res.Data.Filename {
		t.Fatalf("storage delete calls = %v", storage.deleted)
	}
	if again := svc.DeleteImage(ctx, res.Data.ID); again.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d", again.StatusCode)
	}
}

func TestUploadImageRejections(t *testing.T) {
	opts, _ := testOptions(t)
	ctx := context.Background()
	room := seedRoom(t, opts, "Room 101")
	storage := newFakeStorage()
	svc := NewImageService(ImageServiceOptions{ServiceOptions: opts, Storage: storage})

	cases := []struct {
		name string
		req  dto.UploadImageRequest
		want int
	}{
		{"extension", dto.UploadImageRequest{RoomID: room.ID, Filename: "virus.exe", Size: 10, Content: strings.NewReader("x")}, http.StatusBadRequest},
		{"too large", dto.UploadImageRequest{RoomID: room.ID, Filename: "big.png", Size: 11 * 1024 * 1024, Content: strings.NewReader("x")}, http.StatusBadRequest},
		{"missing room", dto.UploadImageRequest{RoomID: uuid.New(), Filename: "a.png", Size: 1, Content: strings.NewReader("x")}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		if res := svc.UploadImage(ctx, tc.req); res.StatusCode != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, res.StatusCode, tc.want)
		}
	}
	if len(storage.uploaded) != 0 {
		t.Fatalf("nothing should reach storage, got %v", storage.uploaded)
	}

	storage.err = errors.New("quota exceeded")
	res := svc.UploadImage(ctx, dto.UploadImageRequest{RoomID: room.ID, Filename: "a.png", Size: 1, Content: strings.NewReader("x")})
	if res.StatusCode != http.StatusInternalServerError || !strings.Contains(res.Message, "quota exceeded") {
		t.Fatalf("storage failure = %+v", res)
	}
}

func TestCloudinaryKeyMapping(t *testing.T) {
	cases := map[string][2]string{
		"uploads-booking/2030-01-01/a.png":  {"image", "uploads-booking/2030-01-01/a"},
		"uploads-booking/2030-01-01/a.mp3":  {"video", "uploads-booking/2030-01-01/a"},
		"uploads-booking/2030-01-01/a.docx": {"raw", "uploads-booking/2030-01-01/a.docx"},
	}
	for key, want := range cases {
		rt := cloudinaryResourceType(key)
		if rt != want[0] || cloudinaryPublicID(key, rt) != want[1] {
			t.Fatalf("%s: got (%s, %s), want %v", key, rt, cloudinaryPublicID(key, rt), want)
		}
	}
}
