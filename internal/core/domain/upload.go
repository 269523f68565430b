package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrNoPlatforms = errors.New("at least one platform is required")

// MediaType identifies the kind of content being uploaded.
type MediaType string

const (
	MediaVideo MediaType = "video"
	MediaImage MediaType = "image"
	MediaText  MediaType = "text"
)

// UploadStatus is the delivery lifecycle state of an upload log. Transitions
// out of queued are applied by an external delivery worker.
type UploadStatus string

const (
	UploadQueued UploadStatus = "queued"
	UploadPosted UploadStatus = "posted"
	UploadFailed UploadStatus = "failed"
)

// UploadLog records a single upload request. One log targeting N platforms
// consumes N quota units for the day it was created.
type UploadLog struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	MediaType MediaType    `json:"media_type"`
	Caption   string       `json:"caption,omitempty"`
	Platforms []string     `json:"platforms"`
	Status    UploadStatus `json:"status"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// QuotaExceededError rejects an upload that would push today's platform-unit
// usage past the plan ceiling. It carries the numbers for user-facing messaging.
type QuotaExceededError struct {
	Used  int
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("daily limit exceeded: %d/%d used", e.Used, e.Limit)
}
