package validator

import (
	"strings"
	"testing"
	"time"

	"hotel-booking/errors"

	"github.com/google/uuid"
)

func TestValidateLocation(t *testing.T) {
	cases := []struct {
		name, address string
		wantCode      errors.ErrorCode
	}{
		{"Downtown Hotel", "123 Main Street City", ""},
		{"", "123 Main Street City", errors.ErrCodeRequiredField},
		{"ab", "123 Main Street City", errors.ErrCodeInvalidLength},
		{strings.Repeat("a", 101), "123 Main Street City", errors.ErrCodeInvalidLength},
		{"Downtown Hotel", "", errors.ErrCodeRequiredField},
		{"Downtown Hotel", "short", errors.ErrCodeInvalidLength},
		// 3 ký tự có dấu vẫn hợp lệ
		{"Huế", "12 Lê Lợi, Thành phố Huế", ""},
	}
	for _, tc := range cases {
		err := ValidateLocation(tc.name, tc.address)
		if tc.wantCode == "" {
			if err != nil {
				t.Fatalf("ValidateLocation(%q, %q) unexpected error: %v", tc.name, tc.address, err)
			}
			continue
		}
		if err == nil || err.Code != tc.wantCode {
			t.Fatalf("ValidateLocation(%q, %q) = %v, want code %s", tc.name, tc.address, err, tc.wantCode)
		}
	}
}

func TestValidateTypeRoom(t *testing.T) {
	if err := ValidateTypeRoom("Deluxe", 0); err != nil {
		t.Fatalf("price 0 should be accepted: %v", err)
	}
	if err := ValidateTypeRoom("Deluxe", -1); err == nil || err.Code != errors.ErrCodeInvalidAmount {
		t.Fatalf("negative price should be rejected, got %v", err)
	}
	if err := ValidateTypeRoom("   ", 10); err == nil || err.Code != errors.ErrCodeRequiredField {
		t.Fatalf("blank name should be rejected, got %v", err)
	}
	if err := ValidateTypeRoom(strings.Repeat("x", 51), 10); err == nil {
		t.Fatalf("51-char name should be rejected")
	}
}

func TestValidateRoom(t *testing.T) {
	id := uuid.New()
	if err := ValidateRoom("Room 101", id, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateRoom("Room 101", uuid.Nil, id); err == nil {
		t.Fatalf("empty type room id should be rejected")
	}
	if err := ValidateRoom("Room 101", id, uuid.Nil); err == nil {
		t.Fatalf("empty location id should be rejected")
	}
	// tên sai được báo trước id rỗng
	if err := ValidateRoom("R", uuid.Nil, uuid.Nil); err == nil || err.Code != errors.ErrCodeInvalidLength {
		t.Fatalf("want length error first, got %v", err)
	}
}

func TestValidateBookingDates(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	tomorrow := now.Add(24 * time.Hour)

	if err := ValidateBookingDates(tomorrow, tomorrow.Add(2*time.Hour), now); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if err := ValidateBookingDates(tomorrow, tomorrow, now); err == nil {
		t.Fatalf("check-in == check-out should be rejected")
	}
	if err := ValidateBookingDates(tomorrow.Add(time.Hour), tomorrow, now); err == nil {
		t.Fatalf("check-in after check-out should be rejected")
	}
	if err := ValidateBookingDates(now.Add(-time.Minute), tomorrow, now); err == nil || err.Code != errors.ErrCodeInvalidDate {
		t.Fatalf("check-in in the past should be rejected, got %v", err)
	}
}

func TestValidateBookingStatus(t *testing.T) {
	for s := 1; s <= 4; s++ {
		if err := ValidateBookingStatus(s); err != nil {
			t.Fatalf("status %d rejected: %v", s, err)
		}
	}
	for _, s := range []int{0, 5, -1} {
		if err := ValidateBookingStatus(s); err == nil {
			t.Fatalf("status %d should be rejected", s)
		}
	}
}

func TestValidateReview(t *testing.T) {
	if err := ValidateReview("Phòng sạch sẽ", 6); err == nil {
		t.Fatalf("rating 6 should be rejected")
	}
	if err := ValidateReview("Phòng sạch sẽ", 0); err == nil {
		t.Fatalf("rating 0 should be rejected")
	}
	for _, r := range []int{1, 5} {
		if err := ValidateReview("Phòng sạch sẽ", r); err != nil {
			t.Fatalf("rating %d rejected: %v", r, err)
		}
	}
	if err := ValidateReview("  \t", 4); err == nil || err.Code != errors.ErrCodeRequiredField {
		t.Fatalf("blank comment should be rejected, got %v", err)
	}
}

func TestValidateUploadFile(t *testing.T) {
	if err := ValidateUploadFile("photo.JPG", 1024); err != nil {
		t.Fatalf("jpg rejected: %v", err)
	}
	if err := ValidateUploadFile("script.exe", 1024); err == nil {
		t.Fatalf("exe should be rejected")
	}
	if err := ValidateUploadFile("big.png", 10*1024*1024+1); err == nil {
		t.Fatalf("file over 10MB should be rejected")
	}
	if err := ValidateUploadFile("empty.png", 0); err == nil {
		t.Fatalf("empty file should be rejected")
	}
}
