package streams

import (
	"article-analytics/internal/shared/metrics"
)

var (
	streamPageView              = "page_view"
	metricPageViewProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "page_view_published_total",
		},
		[]string{"stream_id"},
	)

	metricPageViewPersistedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "page_view_persisted_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
