package http

import (
	"net/http"

	"article-analytics/internal/analytics"
	"article-analytics/internal/shared/loggers"
	"article-analytics/internal/shared/metrics"
	"article-analytics/internal/trackers"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService analytics.ReportService, trackingService trackers.TrackingService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	articleAnalyticsHandler := NewArticleAnalyticsHandler(reportService)
	trackViewHandler := NewTrackViewHandler(trackingService)

	// Routes. The admin route is expected to sit behind an authenticating
	// proxy; the report exposes aggregate visitor behavior.
	router.Get("/api/admin/article-analytics", errorHandlingAdapter(articleAnalyticsHandler))
	router.Post("/views", errorHandlingAdapter(trackViewHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
