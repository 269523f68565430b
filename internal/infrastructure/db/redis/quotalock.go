package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// lockTTL bounds how long a crashed holder can keep others out.
const lockTTL = 5 * time.Second

// QuotaLock is a short-lived per-user, per-day mutex backed by Redis SET NX.
// It serialises the quota check-then-log sequence so two concurrent uploads
// from the same user cannot both pass a nearly-full limit.
// Key format: quota_lock:<user_id>:<YYYY-MM-DD>
type QuotaLock struct {
	client *redis.Client
}

// NewQuotaLock creates a QuotaLock wrapping the given Redis client.
func NewQuotaLock(client *redis.Client) *QuotaLock {
	return &QuotaLock{client: client}
}

// Acquire attempts to take the lock for the user's current quota day.
// It returns false without error when another request holds it.
func (l *QuotaLock) Acquire(ctx context.Context, userID string, day time.Time) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(userID, day), "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("quota lock acquire: %w", err)
	}
	return ok, nil
}

// Release frees the lock. The TTL covers the case where the holder dies first.
func (l *QuotaLock) Release(ctx context.Context, userID string, day time.Time) error {
	if err := l.client.Del(ctx, l.key(userID, day)).Err(); err != nil {
		return fmt.Errorf("quota lock release: %w", err)
	}
	return nil
}

func (l *QuotaLock) key(userID string, day time.Time) string {
	return fmt.Sprintf("quota_lock:%s:%s", userID, day.UTC().Format("2006-01-02"))
}
