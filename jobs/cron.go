package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/services"
	"hotel-booking/services/logger"

	"github.com/robfig/cron/v3"
)

const releaseHoldsLockKey = "lock:jobs:release-holds"

// HoldReleaser hủy các booking giữ chỗ đã quá giờ nhận phòng
type HoldReleaser interface {
	ReleaseExpiredHolds(ctx context.Context) (int64, error)
}

// InitCronJobs khởi tạo các cron jobs, spec "off" thì không chạy
func InitCronJobs(c *cron.Cron, spec string, releaser HoldReleaser, locker services.Locker, log logger.Logger) error {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "off") {
		log.Info("Job release holds đã tắt")
		return nil
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return fmt.Errorf("HOLD_SWEEP_SPEC không hợp lệ %q: %w", spec, err)
	}
	ttl := lockTTL(schedule, time.Now())

	c.Schedule(schedule, cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), ttl)
		defer cancel()
		RunReleaseHolds(ctx, releaser, locker, ttl, log)
	}))

	c.Start()
	log.Info("Cron jobs initialized successfully (%s)", spec)
	return nil
}

// RunReleaseHolds chạy một lượt, bỏ qua nếu replica khác đang giữ khóa
func RunReleaseHolds(ctx context.Context, releaser HoldReleaser, locker services.Locker, ttl time.Duration, log logger.Logger) {
	release, ok, err := locker.Acquire(ctx, releaseHoldsLockKey, ttl)
	if err != nil {
		log.Error("Không lấy được khóa %s: %v", releaseHoldsLockKey, err)
		return
	}
	if !ok {
		log.Debug("Replica khác đang chạy release holds")
		return
	}
	defer release()

	count, err := releaser.ReleaseExpiredHolds(ctx)
	if err != nil {
		log.Error("Lỗi release holds: %v", err)
		return
	}
	log.Debug("Release holds xong, %d booking bị hủy", count)
}

// lockTTL ngắn hơn chu kỳ của schedule một chút
func lockTTL(schedule cron.Schedule, from time.Time) time.Duration {
	next := schedule.Next(from)
	period := schedule.Next(next).Sub(next)
	ttl := period * 9 / 10
	if ttl < time.Second {
		ttl = time.Second
	}
	return ttl
}
