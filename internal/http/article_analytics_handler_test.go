package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	analyticsmocks "article-analytics/internal/analytics/mocks"
	"article-analytics/internal/models"
	"article-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func emptyReport() *models.AnalyticsReport {
	return &models.AnalyticsReport{
		TopArticles:           []*models.TopArticleRow{},
		UniqueVisitorsPerDay:  []*models.VisitorsPerDayRow{},
		AvgReadTimePerArticle: []*models.AvgReadTimeRow{},
		Browsers:              []*models.BrowserRow{},
		Devices:               []*models.DeviceRow{},
		TrafficByHour:         []*models.TrafficByHourRow{},
	}
}

func TestArticleAnalyticsHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockReportService := analyticsmocks.NewMockReportService(ctrl)
	handler := NewArticleAnalyticsHandler(mockReportService)

	report := emptyReport()
	report.TopArticles = []*models.TopArticleRow{
		{ArticleID: "article-A", ViewCount: 7},
	}
	report.TrafficByHour = []*models.TrafficByHourRow{
		{Hour: 14, Views: 7},
	}

	mockReportService.EXPECT().
		BuildReport(gomock.Any(), "2024-01-15", "2024-01-25").
		Return(report, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/article-analytics?from=2024-01-15&to=2024-01-25", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	// Exactly the six report fields
	assert.Len(t, body, 6)
	for _, field := range []string{"topArticles", "uniqueVisitorsPerDay", "avgReadTimePerArticle", "browsers", "devices", "trafficByHour"} {
		assert.Contains(t, body, field)
	}
	assert.JSONEq(t, `[{"article_id": "article-A", "title": null, "slug": null, "view_count": 7}]`, string(body["topArticles"]))
	assert.JSONEq(t, `[{"hour": 14, "views": 7}]`, string(body["trafficByHour"]))
}

func TestArticleAnalyticsHandler_Handle_EmptyReportSerializesArrays(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockReportService := analyticsmocks.NewMockReportService(ctrl)
	handler := NewArticleAnalyticsHandler(mockReportService)

	mockReportService.EXPECT().
		BuildReport(gomock.Any(), "", "").
		Return(emptyReport(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/article-analytics", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)

	// Empty aggregations are [] on the wire, never null
	assert.NotContains(t, rr.Body.String(), "null,")
	assert.JSONEq(t, `{
		"topArticles": [],
		"uniqueVisitorsPerDay": [],
		"avgReadTimePerArticle": [],
		"browsers": [],
		"devices": [],
		"trafficByHour": []
	}`, rr.Body.String())
}

func TestArticleAnalyticsHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockReportService := analyticsmocks.NewMockReportService(ctrl)
	handler := NewArticleAnalyticsHandler(mockReportService)

	expectedErr := svcerrors.NewInternalError("ANL_9000", assert.AnError)
	mockReportService.EXPECT().
		BuildReport(gomock.Any(), "", "").
		Return(nil, expectedErr)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/article-analytics", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ANL_9000", svcErr.Code)
	// Status is written by the adapter, not the handler
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String(), "no partial report bytes on failure")
}
