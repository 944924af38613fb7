// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "submission_completed_total",
			Help: "Total number of submissions confirmed with a receipt",
		},
	)

	SubmissionsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submission_failed_total",
			Help: "Total number of failed submissions by error code",
		},
		[]string{"error_code"},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "submission_duration_seconds",
			Help: "Duration of the full submission exchange in seconds",
		},
	)
)
