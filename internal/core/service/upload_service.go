package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialhub/socialhub-api/internal/core/domain"
	"github.com/socialhub/socialhub-api/internal/core/ports"
)

// QuotaLocker abstracts the per-user serialization point (Redis) that closes
// the quota check-then-log race between concurrent requests.
type QuotaLocker interface {
	Acquire(ctx context.Context, userID string, day time.Time) (bool, error)
	Release(ctx context.Context, userID string, day time.Time) error
}

const (
	lockAttempts  = 5
	lockRetryWait = 25 * time.Millisecond
)

// UploadService enforces the per-day platform-unit quota and queues uploads.
// Usage is derived entirely from historical log rows, so it self-corrects.
type UploadService struct {
	repo   ports.UploadLogRepository
	limits domain.PlanLimits
	lock   QuotaLocker
	logger zerolog.Logger
}

func NewUploadService(repo ports.UploadLogRepository, limits domain.PlanLimits, lock QuotaLocker, logger zerolog.Logger) *UploadService {
	return &UploadService{repo: repo, limits: limits, lock: lock, logger: logger}
}

// Stats reports the caller's usage against today's ceiling. Limit is nil for
// unbounded plans.
func (s *UploadService) Stats(ctx context.Context, user *domain.User) (*ports.UploadStats, error) {
	from, to := dayWindow(time.Now().UTC())

	used, err := s.repo.CountPlatformUnits(ctx, user.ID, from, to)
	if err != nil {
		return nil, err
	}

	stats := &ports.UploadStats{Plan: user.Plan, Used: used}
	if limit, bounded := s.limits.Limit(user.Plan); bounded {
		stats.Limit = &limit
	}
	return stats, nil
}

// Submit checks today's usage against the plan ceiling and, when accepted,
// persists a queued upload log. Each requested platform consumes one unit.
// Rejection carries the observed used/limit pair.
func (s *UploadService) Submit(ctx context.Context, user *domain.User, in ports.SubmitUploadInput) (*domain.UploadLog, error) {
	if len(in.Platforms) == 0 {
		return nil, domain.ErrNoPlatforms
	}

	limit, bounded := s.limits.Limit(user.Plan)
	if !bounded {
		return s.insert(ctx, user, in)
	}

	from, to := dayWindow(time.Now().UTC())

	if s.acquireLock(ctx, user.ID, from) {
		defer s.releaseLock(ctx, user.ID, from)
	}

	used, err := s.repo.CountPlatformUnits(ctx, user.ID, from, to)
	if err != nil {
		return nil, err
	}

	if used+len(in.Platforms) > limit {
		s.logger.Info().
			Str("user_id", user.ID).
			Int("used", used).
			Int("limit", limit).
			Int("requested", len(in.Platforms)).
			Msg("upload rejected, quota exceeded")
		return nil, &domain.QuotaExceededError{Used: used, Limit: limit}
	}

	return s.insert(ctx, user, in)
}

func (s *UploadService) insert(ctx context.Context, user *domain.User, in ports.SubmitUploadInput) (*domain.UploadLog, error) {
	log := &domain.UploadLog{
		UserID:    user.ID,
		MediaType: in.MediaType,
		Caption:   in.Caption,
		Platforms: in.Platforms,
		Status:    domain.UploadQueued,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, log)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to insert upload log")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("log_id", created.ID).
		Int("platforms", len(created.Platforms)).
		Msg("upload queued")
	return created, nil
}

// acquireLock serialises concurrent submissions from the same user for the
// same day. Lock failure degrades to the unlocked soft-limit semantics rather
// than rejecting the upload.
func (s *UploadService) acquireLock(ctx context.Context, userID string, day time.Time) bool {
	for attempt := 0; attempt < lockAttempts; attempt++ {
		ok, err := s.lock.Acquire(ctx, userID, day)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("quota lock failed, proceeding unlocked")
			return false
		}
		if ok {
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(lockRetryWait):
		}
	}

	s.logger.Warn().Str("user_id", userID).Msg("quota lock contended, proceeding unlocked")
	return false
}

func (s *UploadService) releaseLock(ctx context.Context, userID string, day time.Time) {
	if err := s.lock.Release(ctx, userID, day); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("quota lock release failed")
	}
}

// dayWindow returns the UTC calendar-day interval [start, start+24h) that
// contains t.
func dayWindow(t time.Time) (from, to time.Time) {
	t = t.UTC()
	from = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 0, 1)
}
