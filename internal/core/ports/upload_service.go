package ports

import (
	"context"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// SubmitUploadInput is the DTO passed from the transport layer to UploadService.
type SubmitUploadInput struct {
	MediaType domain.MediaType
	Caption   string
	Platforms []string
}

// UploadStats reports the caller's standing against today's quota.
// Limit is nil for unbounded plans.
type UploadStats struct {
	Plan  domain.Plan
	Limit *int
	Used  int
}

// UploadService enforces the per-day platform-unit quota and queues uploads.
type UploadService interface {
	Stats(ctx context.Context, user *domain.User) (*UploadStats, error)
	Submit(ctx context.Context, user *domain.User, in SubmitUploadInput) (*domain.UploadLog, error)
}
