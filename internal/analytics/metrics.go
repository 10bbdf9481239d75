package analytics

import (
	"article-analytics/internal/shared/metrics"
)

var (
	// metricReportBuiltTotal counts analytics report computations, labeled with
	// the stable error code on failure ("" on success).
	metricReportBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "report_built_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricReportEventsScanned observes how many view events a single report
	// scanned. Growth here is the early signal that the single-fetch design
	// needs a server-side pre-aggregation.
	metricReportEventsScanned = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "report_events_scanned",
			Buckets:   []float64{100, 1000, 10000, 100000, 1000000},
		},
		[]string{},
	)
)
