// Package metrics defines and registers all custom Prometheus metrics for the
// SocialHub API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "socialhub"

// SignupsTotal counts successful account creations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UploadsQueuedTotal counts accepted upload requests.
// Label:
//   - media_type: "video", "image", or "text"
var UploadsQueuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_queued_total",
		Help:      "Total number of uploads accepted into the queue, by media type.",
	},
	[]string{"media_type"},
)

// QuotaRejectionsTotal counts uploads rejected by the daily quota.
// Label:
//   - plan: the caller's subscription tier
var QuotaRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quota_rejections_total",
		Help:      "Total number of uploads rejected because the daily quota was reached.",
	},
	[]string{"plan"},
)

// UploadPlatformUnits observes how many platforms a single accepted upload targets.
var UploadPlatformUnits = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_platform_units",
		Help:      "Number of platform targets per accepted upload.",
		Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
	},
)
