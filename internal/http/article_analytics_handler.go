package http

import (
	"encoding/json"
	"net/http"

	"article-analytics/internal/analytics"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type articleAnalyticsHandler struct {
	reportService analytics.ReportService
}

func NewArticleAnalyticsHandler(reportService analytics.ReportService) AppHttpHandler {
	return &articleAnalyticsHandler{
		reportService: reportService,
	}
}

// Handle serves GET /api/admin/article-analytics requests.
func (h *articleAnalyticsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.BuildReport(r.Context(), queryFrom(r), queryTo(r))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(report)
	return nil
}
