package services

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"

	"github.com/google/uuid"
)

func newBookingService(opts ServiceOptions) (*BookingService, *fakeNotifier) {
	n := &fakeNotifier{}
	return NewBookingService(BookingServiceOptions{ServiceOptions: opts, Notifier: n}), n
}

func TestCreateBookingDateRules(t *testing.T) {
	opts, clock := testOptions(t)
	ctx := context.Background()
	room := seedRoom(t, opts, "Room 101")
	svc, _ := newBookingService(opts)

	start := clock.Now().Add(24 * time.Hour)
	account := uuid.New()

	cases := []struct {
		name     string
		in, out  time.Time
		wantCode int
	}{
		{"equal", start, start, http.StatusBadRequest},
		{"reversed", start.Add(time.Hour), start, http.StatusBadRequest},
		{"past", clock.Now().Add(-time.Hour), start, http.StatusBadRequest},
		{"ok", start, start.Add(3 * time.Hour), http.StatusCreated},
	}
	for _, tc := range cases {
		res := svc.CreateBooking(ctx, dto.CreateBookingRequest{RoomID: room.ID, AccountID: account, CheckInTime: tc.in, CheckOutTime: tc.out})
		if res.StatusCode != tc.wantCode {
			t.Fatalf("%s: status = %d (%s), want %d", tc.name, res.StatusCode, res.Message, tc.wantCode)
		}
	}
}

func TestCreateBookingForcesHolding(t *testing.T) {
	opts, clock := testOptions(t)
	ctx := context.Background()
	room := seedRoom(t, opts, "Room 101")
	svc, notifier := newBookingService(opts)

	start := clock.Now().Add(48 * time.Hour)
	res := svc.CreateBooking(ctx, dto.CreateBookingRequest{RoomID: room.ID, AccountID: uuid.New(), CheckInTime: start, CheckOutTime: start.Add(time.Hour)})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d (%s)", res.StatusCode, res.Message)
	}
	if res.Data.Status != constants.BookingStatusHolding {
		t.Fatalf("status = %d, want Holding", res.Data.Status)
	}
	if res.Data.RoomName != "Room 101" {
		t.Fatalf("roomName = %q", res.Data.RoomName)
	}
	if len(notifier.messages) != 1 || !strings.Contains(notifier.messages[0], "booking.created") {
		t.Fatalf("notifier messages = %v", notifier.messages)
	}

	got := svc.GetBookingByID(ctx, res.Data.ID)
	if got.Data.RoomName != "Room 101" || !got.Data.CheckInTime.Equal(start) {
		t.Fatalf("get = %+v", got.Data)
	}

	if missing := svc.CreateBooking(ctx, dto.CreateBookingRequest{RoomID: uuid.New(), AccountID: uuid.New(), CheckInTime: start, CheckOutTime: start.Add(time.Hour)}); missing.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing room status = %d, want 400", missing.StatusCode)
	}
}

func TestUpdateBooking(t *testing.T) {
	opts, clock := testOptions(t)
	ctx := context.Background()
	room := seedRoom(t, opts, "Room 101")
	svc, _ := newBookingService(opts)

	start := clock.Now().Add(48 * time.Hour)
	created := svc.CreateBooking(ctx, dto.CreateBookingRequest{RoomID: room.ID, AccountID: uuid.New(), CheckInTime: start, CheckOutTime: start.Add(time.Hour)})

	if bad := svc.UpdateBooking(ctx, created.Data.ID, dto.UpdateBookingRequest{CheckInTime: start, CheckOutTime: start, Status: constants.BookingStatusConfirmed}); bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid dates status = %d, want 400", bad.StatusCode)
	}
	if bad := svc.UpdateBooking(ctx, created.Data.ID, dto.UpdateBookingRequest{CheckInTime: start, CheckOutTime: start.Add(time.Hour), Status: 9}); bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid status code = %d, want 400", bad.StatusCode)
	}

	ok := svc.UpdateBooking(ctx, created.Data.ID, dto.UpdateBookingRequest{CheckInTime: start, CheckOutTime: start.Add(2 * time.Hour), Status: constants.BookingStatusConfirmed})
	if ok.StatusCode != http.StatusOK || ok.Data.Status != constants.BookingStatusConfirmed || ok.Data.RoomName != "Room 101" {
		t.Fatalf("update = %+v", ok)
	}

	if missing := svc.UpdateBooking(ctx, uuid.New(), dto.UpdateBookingRequest{CheckInTime: start, CheckOutTime: start.Add(time.Hour), Status: 1}); missing.StatusCode != http.StatusNotFound {
		t.Fatalf("missing booking status = %d, want 404", missing.StatusCode)
	}
}

func TestBookingFiltersAndDelete(t *testing.T) {
	opts, clock := testOptions(t)
	ctx := context.Background()
	room := seedRoom(t, opts, "Room 101")
	svc, notifier := newBookingService(opts)

	alice, bob := uuid.New(), uuid.New()
	base := clock.Now().Add(72 * time.Hour)
	a1 := svc.CreateBooking(ctx, dto.CreateBookingRequest{RoomID: room.ID, AccountID: alice, CheckInTime: base, CheckOutTime: base.Add(time.Hour)})
	svc.CreateBooking(ctx, dto.CreateBookingRequest{RoomID: room.ID, AccountID: alice, CheckInTime: base.Add(24 * time.Hour), CheckOutTime: base.Add(26 * time.Hour)})
	svc.CreateBooking(ctx, dto.CreateBookingRequest{RoomID: room.ID, AccountID: bob, CheckInTime: base, CheckOutTime: base.Add(time.Hour)})

	mine := svc.GetBookings(ctx, dto.BookingPaginationRequest{AccountID: alice.String()})
	if mine.Data.Paging.Total != 2 {
		t.Fatalf("alice bookings = %d, want 2", mine.Data.Paging.Total)
	}
	for _, b := range mine.Data.Items {
		if b.RoomName != "Room 101" {
			t.Fatalf("roomName missing in list: %+v", b)
		}
	}

	later := svc.GetBookings(ctx, dto.BookingPaginationRequest{CheckInTime: base.Add(time.Hour)})
	if later.Data.Paging.Total != 1 {
		t.Fatalf("checkInTime filter total = %d, want 1", later.Data.Paging.Total)
	}

	svc.UpdateBooking(ctx, a1.Data.ID, dto.UpdateBookingRequest{CheckInTime: base, CheckOutTime: base.Add(time.Hour), Status: constants.BookingStatusConfirmed})
	confirmed := constants.BookingStatusConfirmed
	byStatus := svc.GetBookings(ctx, dto.BookingPaginationRequest{Status: &confirmed})
	if byStatus.Data.Paging.Total != 1 || byStatus.Data.Items[0].ID != a1.Data.ID {
		t.Fatalf("status filter = %+v", byStatus.Data)
	}

	if del := svc.DeleteBooking(ctx, a1.Data.ID); !del.IsSuccess {
		t.Fatalf("delete: %s", del.Message)
	}
	if again := svc.DeleteBooking(ctx, a1.Data.ID); again.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d", again.StatusCode)
	}
	if last := notifier.messages[len(notifier.messages)-1]; !strings.Contains(last, "booking.deleted") {
		t.Fatalf("last event = %s", last)
	}
}

func TestReleaseExpiredHolds(t *testing.T) {
	opts, clock := testOptions(t)
	ctx := context.Background()
	room := seedRoom(t, opts, "Room 101")
	svc, _ := newBookingService(opts)

	soon := clock.Now().Add(time.Hour)
	held := svc.CreateBooking(ctx, dto.CreateBookingRequest{RoomID: room.ID, AccountID: uuid.New(), CheckInTime: soon, CheckOutTime: soon.Add(time.Hour)})
	confirmed := svc.CreateBooking(ctx, dto.CreateBookingRequest{RoomID: room.ID, AccountID: uuid.New(), CheckInTime: soon, CheckOutTime: soon.Add(time.Hour)})
	svc.UpdateBooking(ctx, confirmed.Data.ID, dto.UpdateBookingRequest{CheckInTime: soon, CheckOutTime: soon.Add(time.Hour), Status: constants.BookingStatusConfirmed})
	future := svc.CreateBooking(ctx, dto.CreateBookingRequest{RoomID: room.ID, AccountID: uuid.New(), CheckInTime: soon.Add(48 * time.Hour), CheckOutTime: soon.Add(49 * time.Hour)})

	if n, err := svc.ReleaseExpiredHolds(ctx); err != nil || n != 0 {
		t.Fatalf("before check-in: n=%d err=%v", n, err)
	}

	clock.Advance(2 * time.Hour)
	n, err := svc.ReleaseExpiredHolds(ctx)
	if err != nil || n != 1 {
		t.Fatalf("after check-in: n=%d err=%v, want 1", n, err)
	}

	if got := svc.GetBookingByID(ctx, held.Data.ID); got.Data.Status != constants.BookingStatusCancelled {
		t.Fatalf("held booking status = %d, want Cancelled", got.Data.Status)
	}
	if got := svc.GetBookingByID(ctx, confirmed.Data.ID); got.Data.Status != constants.BookingStatusConfirmed {
		t.Fatalf("confirmed booking changed to %d", got.Data.Status)
	}
	if got := svc.GetBookingByID(ctx, future.Data.ID); got.Data.Status != constants.BookingStatusHolding {
		t.Fatalf("future booking changed to %d", got.Data.Status)
	}
}
