package services

import (
	"context"
	"net/http"
	"testing"

	"hotel-booking/dto"

	"github.com/google/uuid"
)

func TestTypeRoomSortByPriceDesc(t *testing.T) {
	opts, _ := testOptions(t)
	svc := NewTypeRoomService(opts)
	ctx := context.Background()

	for i, price := range []float64{30, 120, 0, 75.5, 120, 10} {
		res := svc.CreateTypeRoom(ctx, dto.CreateTypeRoomRequest{Name: "Type " + string(rune('A'+i)), PricePerHour: price})
		if !res.IsSuccess {
			t.Fatalf("create: %s", res.Message)
		}
	}

	for _, key := range []string{"priceperhour", "PricePerHour"} {
		res := svc.GetTypeRooms(ctx, dto.TypeRoomPaginationRequest{PaginationRequest: dto.PaginationRequest{SortBy: key, SortDirection: "desc"}})
		items := res.Data.Items
		if len(items) != 6 {
			t.Fatalf("%s: %d items", key, len(items))
		}
		for i := 1; i < len(items); i++ {
			if items[i].PricePerHour > items[i-1].PricePerHour {
				t.Fatalf("%s: not non-increasing at %d: %v > %v", key, i, items[i].PricePerHour, items[i-1].PricePerHour)
			}
		}
	}
}

func TestTypeRoomRejectsNegativePrice(t *testing.T) {
	opts, _ := testOptions(t)
	res := NewTypeRoomService(opts).CreateTypeRoom(context.Background(), dto.CreateTypeRoomRequest{Name: "Suite", PricePerHour: -5})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
}

func TestCreateRoomMissingParents(t *testing.T) {
	opts, _ := testOptions(t)
	ctx := context.Background()
	rooms := NewRoomService(opts)

	loc := NewLocationService(opts).CreateLocation(ctx, dto.CreateLocationRequest{Name: "Downtown Hotel", Address: "123 Main Street City"})
	tr := NewTypeRoomService(opts).CreateTypeRoom(ctx, dto.CreateTypeRoomRequest{Name: "Deluxe", PricePerHour: 40})

	if res := rooms.CreateRoom(ctx, dto.CreateRoomRequest{Name: "Room 101", TypeRoomID: uuid.New(), LocationID: loc.Data.ID}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing type room status = %d, want 400", res.StatusCode)
	}
	if res := rooms.CreateRoom(ctx, dto.CreateRoomRequest{Name: "Room 101", TypeRoomID: tr.Data.ID, LocationID: uuid.New()}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing location status = %d, want 400", res.StatusCode)
	}

	NewTypeRoomService(opts).DeleteTypeRoom(ctx, tr.Data.ID)
	if res := rooms.CreateRoom(ctx, dto.CreateRoomRequest{Name: "Room 101", TypeRoomID: tr.Data.ID, LocationID: loc.Data.ID}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("soft-deleted type room status = %d, want 400", res.StatusCode)
	}
}

func TestRoomFiltersAndUpdate(t *testing.T) {
	opts, _ := testOptions(t)
	ctx := context.Background()
	rooms := NewRoomService(opts)

	first := seedRoom(t, opts, "Room 101")
	second := seedRoom(t, opts, "Room 202")

	res := rooms.GetRooms(ctx, dto.RoomPaginationRequest{LocationID: first.LocationID.String()})
	if len(res.Data.Items) != 1 || res.Data.Items[0].ID != first.ID {
		t.Fatalf("location filter: %+v", res.Data.Items)
	}
	res = rooms.GetRooms(ctx, dto.RoomPaginationRequest{TypeRoomID: second.TypeRoomID.String()})
	if len(res.Data.Items) != 1 || res.Data.Items[0].ID != second.ID {
		t.Fatalf("type room filter: %+v", res.Data.Items)
	}

	moved := rooms.UpdateRoom(ctx, first.ID, dto.UpdateRoomRequest{Name: "Room 101A", TypeRoomID: first.TypeRoomID, LocationID: second.LocationID})
	if moved.StatusCode != http.StatusOK || moved.Data.LocationID != second.LocationID {
		t.Fatalf("update: %+v", moved)
	}
	if bad := rooms.UpdateRoom(ctx, first.ID, dto.UpdateRoomRequest{Name: "Room 101A", TypeRoomID: uuid.New(), LocationID: second.LocationID}); bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("update with missing parent status = %d, want 400", bad.StatusCode)
	}

	if del := rooms.DeleteRoom(ctx, second.ID); !del.IsSuccess {
		t.Fatalf("delete: %s", del.Message)
	}
	if got := rooms.GetRoomByID(ctx, second.ID); got.StatusCode != http.StatusNotFound {
		t.Fatalf("get deleted status = %d", got.StatusCode)
	}
	if again := rooms.DeleteRoom(ctx, second.ID); again.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d", again.StatusCode)
	}
}

func TestTypeRoomSearchIsLiteral(t *testing.T) {
	opts, _ := testOptions(t)
	svc := NewTypeRoomService(opts)
	ctx := context.Background()

	for _, name := range []string{"Deluxe", "Suite_A", "Standard"} {
		if res := svc.CreateTypeRoom(ctx, dto.CreateTypeRoomRequest{Name: name, PricePerHour: 10}); !res.IsSuccess {
			t.Fatalf("create %s: %s", name, res.Message)
		}
	}

	cases := map[string]int64{"%": 0, "_": 1, "e_a": 1, `\`: 0, "SUITE": 1, "d": 2}
	for term, want := range cases {
		res := svc.GetTypeRooms(ctx, dto.TypeRoomPaginationRequest{PaginationRequest: dto.PaginationRequest{Search: term}})
		if !res.IsSuccess || res.Data.Paging.Total != want {
			t.Fatalf("search %q: total = %d, want %d (%s)", term, res.Data.Paging.Total, want, res.Message)
		}
	}
}

func TestTypeRoomNameUniqueAmongLiveRows(t *testing.T) {
	opts, _ := testOptions(t)
	svc := NewTypeRoomService(opts)
	ctx := context.Background()

	first := svc.CreateTypeRoom(ctx, dto.CreateTypeRoomRequest{Name: "Deluxe", PricePerHour: 40})
	other := svc.CreateTypeRoom(ctx, dto.CreateTypeRoomRequest{Name: "Standard", PricePerHour: 20})
	if !first.IsSuccess || !other.IsSuccess {
		t.Fatalf("seed: %s / %s", first.Message, other.Message)
	}

	if dup := svc.CreateTypeRoom(ctx, dto.CreateTypeRoomRequest{Name: "Deluxe", PricePerHour: 50}); dup.StatusCode != http.StatusBadRequest || dup.Message != "Tên loại phòng đã tồn tại" {
		t.Fatalf("duplicate create = %d %q", dup.StatusCode, dup.Message)
	}
	if upd := svc.UpdateTypeRoom(ctx, other.Data.ID, dto.UpdateTypeRoomRequest{Name: "Deluxe", PricePerHour: 20}); upd.StatusCode != http.StatusBadRequest || upd.Message != "Tên loại phòng đã tồn tại" {
		t.Fatalf("duplicate update = %d %q", upd.StatusCode, upd.Message)
	}

	if del := svc.DeleteTypeRoom(ctx, first.Data.ID); !del.IsSuccess {
		t.Fatalf("delete: %s", del.Message)
	}
	if reuse := svc.CreateTypeRoom(ctx, dto.CreateTypeRoomRequest{Name: "Deluxe", PricePerHour: 50}); reuse.StatusCode != http.StatusCreated {
		t.Fatalf("reuse after delete = %d %q", reuse.StatusCode, reuse.Message)
	}
}

func TestRoomNameUniqueAmongLiveRows(t *testing.T) {
	opts, _ := testOptions(t)
	svc := NewRoomService(opts)
	ctx := context.Background()

	first := seedRoom(t, opts, "Room 101")
	other := svc.CreateRoom(ctx, dto.CreateRoomRequest{Name: "Room 102", TypeRoomID: first.TypeRoomID, LocationID: first.LocationID})
	if !other.IsSuccess {
		t.Fatalf("seed: %s", other.Message)
	}

	dup := svc.CreateRoom(ctx, dto.CreateRoomRequest{Name: "Room 101", TypeRoomID: first.TypeRoomID, LocationID: first.LocationID})
	if dup.StatusCode != http.StatusBadRequest || dup.Message != "Tên phòng đã tồn tại" {
		t.Fatalf("duplicate create = %d %q", dup.StatusCode, dup.Message)
	}
	upd := svc.UpdateRoom(ctx, other.Data.ID, dto.UpdateRoomRequest{Name: "Room 101", TypeRoomID: first.TypeRoomID, LocationID: first.LocationID})
	if upd.StatusCode != http.StatusBadRequest || upd.Message != "Tên phòng đã tồn tại" {
		t.Fatalf("duplicate update = %d %q", upd.StatusCode, upd.Message)
	}

	if del := svc.DeleteRoom(ctx, first.ID); !del.IsSuccess {
		t.Fatalf("delete: %s", del.Message)
	}
	reuse := svc.CreateRoom(ctx, dto.CreateRoomRequest{Name: "Room 101", TypeRoomID: first.TypeRoomID, LocationID: first.LocationID})
	if reuse.StatusCode != http.StatusCreated {
		t.Fatalf("reuse after delete = %d %q", reuse.StatusCode, reuse.Message)
	}
}
