package ports

import (
	"context"
	"time"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// UploadLogRepository persists upload logs and answers quota queries.
type UploadLogRepository interface {
	Insert(ctx context.Context, log *domain.UploadLog) (*domain.UploadLog, error)
	// CountPlatformUnits sums the platform-list lengths of the user's logs
	// created in [from, to). A log targeting 3 platforms contributes 3.
	CountPlatformUnits(ctx context.Context, userID string, from, to time.Time) (int, error)
}
