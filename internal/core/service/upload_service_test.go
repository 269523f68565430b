package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialhub/socialhub-api/internal/core/domain"
	"github.com/socialhub/socialhub-api/internal/core/ports"
)

type stubUploadRepo struct {
	logs   []*domain.UploadLog
	nextID int
}

func (r *stubUploadRepo) Insert(_ context.Context, log *domain.UploadLog) (*domain.UploadLog, error) {
	r.nextID++
	created := *log
	created.ID = fmt.Sprintf("log_%d", r.nextID)
	r.logs = append(r.logs, &created)
	return &created, nil
}

func (r *stubUploadRepo) CountPlatformUnits(_ context.Context, userID string, from, to time.Time) (int, error) {
	units := 0
	for _, log := range r.logs {
		if log.UserID != userID {
			continue
		}
		if log.CreatedAt.Before(from) || !log.CreatedAt.Before(to) {
			continue
		}
		units += len(log.Platforms)
	}
	return units, nil
}

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, string, time.Time) (bool, error) { return true, nil }
func (noopLocker) Release(context.Context, string, time.Time) error         { return nil }

type recordingLocker struct {
	acquires int
	releases int
}

func (l *recordingLocker) Acquire(context.Context, string, time.Time) (bool, error) {
	l.acquires++
	return true, nil
}

func (l *recordingLocker) Release(context.Context, string, time.Time) error {
	l.releases++
	return nil
}

type brokenLocker struct{}

func (brokenLocker) Acquire(context.Context, string, time.Time) (bool, error) {
	return false, errors.New("redis down")
}

func (brokenLocker) Release(context.Context, string, time.Time) error {
	return errors.New("redis down")
}

func newTestUploadService(repo *stubUploadRepo, lock QuotaLocker) *UploadService {
	return NewUploadService(repo, domain.DefaultPlanLimits(), lock, zerolog.Nop())
}

func freeUser() *domain.User {
	return &domain.User{ID: "user_1", Email: "a@x.com", Plan: domain.PlanFree}
}

func submit(platforms ...string) ports.SubmitUploadInput {
	return ports.SubmitUploadInput{MediaType: domain.MediaVideo, Platforms: platforms}
}

func TestUploadService_Submit_QuotaArithmetic(t *testing.T) {
	repo := &stubUploadRepo{}
	svc := newTestUploadService(repo, noopLocker{})
	user := freeUser()
	ctx := context.Background()

	// Seed 3 units as a single 3-platform log from earlier today.
	if _, err := svc.Submit(ctx, user, submit("instagram", "facebook", "tiktok")); err != nil {
		t.Fatalf("initial submit failed: %v", err)
	}

	// 3 used + 2 requested > 4 limit.
	_, err := svc.Submit(ctx, user, submit("x", "threads"))
	var qe *domain.QuotaExceededError
	if !errors.As(err, &qe) {
		t.Fatalf("expected QuotaExceededError, got %v", err)
	}
	if qe.Used != 3 || qe.Limit != 4 {
		t.Fatalf("expected used=3 limit=4, got used=%d limit=%d", qe.Used, qe.Limit)
	}

	// Exactly one more unit fits.
	log, err := svc.Submit(ctx, user, submit("x"))
	if err != nil {
		t.Fatalf("submit at limit boundary failed: %v", err)
	}
	if log.Status != domain.UploadQueued {
		t.Fatalf("expected queued status, got %s", log.Status)
	}

	// The day is now full; any further request fails.
	_, err = svc.Submit(ctx, user, submit("instagram"))
	if !errors.As(err, &qe) {
		t.Fatalf("expected QuotaExceededError after cap, got %v", err)
	}
	if qe.Used != 4 || qe.Limit != 4 {
		t.Fatalf("expected used=4 limit=4, got used=%d limit=%d", qe.Used, qe.Limit)
	}
}

func TestUploadService_Submit_UnitsArePlatformCounts(t *testing.T) {
	repo := &stubUploadRepo{}
	svc := newTestUploadService(repo, noopLocker{})
	user := freeUser()

	if _, err := svc.Submit(context.Background(), user, submit("instagram", "facebook", "tiktok")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	stats, err := svc.Stats(context.Background(), user)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Used != 3 {
		t.Fatalf("one 3-platform log should count 3 units, got %d", stats.Used)
	}
}

func TestUploadService_Submit_UltraProUnbounded(t *testing.T) {
	repo := &stubUploadRepo{}
	lock := &recordingLocker{}
	svc := newTestUploadService(repo, lock)
	user := &domain.User{ID: "user_9", Plan: domain.PlanUltraPro}
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		if _, err := svc.Submit(ctx, user, submit("instagram", "facebook", "tiktok", "x")); err != nil {
			t.Fatalf("unbounded plan rejected at iteration %d: %v", i, err)
		}
	}

	stats, err := svc.Stats(ctx, user)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Limit != nil {
		t.Fatalf("expected nil limit for ultra_pro, got %d", *stats.Limit)
	}
	if stats.Used != 120 {
		t.Fatalf("expected 120 units used, got %d", stats.Used)
	}
	if lock.acquires != 0 {
		t.Fatalf("unbounded plan should not take the quota lock")
	}
}

func TestUploadService_Submit_TakesAndReleasesLock(t *testing.T) {
	lock := &recordingLocker{}
	svc := newTestUploadService(&stubUploadRepo{}, lock)

	if _, err := svc.Submit(context.Background(), freeUser(), submit("instagram")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if lock.acquires != 1 || lock.releases != 1 {
		t.Fatalf("expected one acquire and one release, got %d/%d", lock.acquires, lock.releases)
	}
}

func TestUploadService_Submit_LockFailureDegrades(t *testing.T) {
	svc := newTestUploadService(&stubUploadRepo{}, brokenLocker{})

	// A broken lock backend must not block uploads.
	if _, err := svc.Submit(context.Background(), freeUser(), submit("instagram")); err != nil {
		t.Fatalf("submit should survive lock failure, got %v", err)
	}
}

func TestUploadService_Submit_NoPlatforms(t *testing.T) {
	svc := newTestUploadService(&stubUploadRepo{}, noopLocker{})

	if _, err := svc.Submit(context.Background(), freeUser(), submit()); !errors.Is(err, domain.ErrNoPlatforms) {
		t.Fatalf("expected ErrNoPlatforms, got %v", err)
	}
}

func TestUploadService_Stats_Idempotent(t *testing.T) {
	repo := &stubUploadRepo{}
	svc := newTestUploadService(repo, noopLocker{})
	user := freeUser()
	ctx := context.Background()

	if _, err := svc.Submit(ctx, user, submit("instagram", "x")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	first, err := svc.Stats(ctx, user)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	second, err := svc.Stats(ctx, user)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if first.Used != second.Used || *first.Limit != *second.Limit {
		t.Fatalf("stats not idempotent: %+v vs %+v", first, second)
	}
	if first.Used != 2 || *first.Limit != 4 {
		t.Fatalf("expected used=2 limit=4, got used=%d limit=%d", first.Used, *first.Limit)
	}
}

func TestUploadService_Stats_IgnoresOtherDays(t *testing.T) {
	repo := &stubUploadRepo{}
	repo.logs = append(repo.logs, &domain.UploadLog{
		ID:        "old",
		UserID:    "user_1",
		Platforms: []string{"instagram", "facebook"},
		Status:    domain.UploadQueued,
		CreatedAt: time.Now().UTC().Add(-25 * time.Hour),
	})
	svc := newTestUploadService(repo, noopLocker{})

	stats, err := svc.Stats(context.Background(), freeUser())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Used != 0 {
		t.Fatalf("yesterday's logs should not count, got used=%d", stats.Used)
	}
}

func TestDayWindow(t *testing.T) {
	at := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)
	from, to := dayWindow(at)

	if !from.Equal(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected window start: %v", from)
	}
	if !to.Equal(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected window end: %v", to)
	}
}
