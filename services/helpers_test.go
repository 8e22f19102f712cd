package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking/dto"
	"hotel-booking/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// testClock mỗi lần gọi tăng một giây để created_at không trùng
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testOptions(t *testing.T) (ServiceOptions, *testClock) {
	clock := newTestClock()
	return ServiceOptions{DB: newTestDB(t), Clock: clock.Now}, clock
}

// seedRoom tạo location, type room và room dùng chung cho các test
func seedRoom(t *testing.T, opts ServiceOptions, name string) dto.RoomDto {
	t.Helper()
	ctx := context.Background()
	loc := NewLocationService(opts).CreateLocation(ctx, dto.CreateLocationRequest{Name: "Loc " + name, Address: "123 Main Street City"})
	if !loc.IsSuccess {
		t.Fatalf("seed location: %s", loc.Message)
	}
	tr := NewTypeRoomService(opts).CreateTypeRoom(ctx, dto.CreateTypeRoomRequest{Name: "Type " + name, PricePerHour: 50})
	if !tr.IsSuccess {
		t.Fatalf("seed type room: %s", tr.Message)
	}
	room := NewRoomService(opts).CreateRoom(ctx, dto.CreateRoomRequest{Name: name, TypeRoomID: tr.Data.ID, LocationID: loc.Data.ID})
	if !room.IsSuccess {
		t.Fatalf("seed room: %s", room.Message)
	}
	return room.Data
}

type fakeStorage struct {
	uploaded map[string]string
	deleted  []string
	err      error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploaded: map[string]string{}}
}

func (f *fakeStorage) Upload(_ context.Context, key string, content io.Reader, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	f.uploaded[key] = string(data)
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) SendMessage(message string) error {
	f.messages = append(f.messages, message)
	return nil
}
