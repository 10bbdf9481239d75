package trackers

import (
	"article-analytics/internal/shared/metrics"
)

var (
	metricViewTrackedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTracking,
			Name:      "view_tracked_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
