package analytics

import (
	"context"

	"article-analytics/internal/models"
	"article-analytics/internal/shared/loggers"
	"article-analytics/internal/shared/metrics"
	"article-analytics/internal/stores"
)

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// BuildReport computes the six-part analytics report over the inclusive
	// date window given by the raw from/to query parameters (YYYY-MM-DD,
	// either may be empty for unbounded). Any store failure aborts the whole
	// report; there are no partial results.
	BuildReport(ctx context.Context, fromParam, toParam string) (*models.AnalyticsReport, error)
}

type reportService struct {
	viewEventStore   stores.ViewEventStore
	articleStore     stores.ArticleStore
	topArticlesLimit int
}

func NewReportService(viewEventStore stores.ViewEventStore, articleStore stores.ArticleStore, topArticlesLimit int) ReportService {
	return &reportService{
		viewEventStore:   viewEventStore,
		articleStore:     articleStore,
		topArticlesLimit: topArticlesLimit,
	}
}

func (s *reportService) BuildReport(ctx context.Context, fromParam, toParam string) (*models.AnalyticsReport, error) {
	logger := loggers.Ctx(ctx)

	window, err := models.ParseDateRange(fromParam, toParam)
	if err != nil {
		svcErr := errInvalidDateRange(err.Error(), err)
		metricReportBuiltTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	// One windowed scan feeds every aggregation; the original design's five
	// filtered round-trips collapse into a single fetch over the same set.
	viewEvents, err := s.viewEventStore.ListByWindow(ctx, window)
	if err != nil {
		svcErr := errInternalViewEventStoreFailed(err)
		metricReportBuiltTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	metricReportEventsScanned.WithLabelValues().Observe(float64(len(viewEvents)))

	report := &models.AnalyticsReport{
		TopArticles:           topArticlesByViews(viewEvents, s.topArticlesLimit),
		UniqueVisitorsPerDay:  uniqueVisitorsPerDay(viewEvents),
		AvgReadTimePerArticle: avgReadTimePerArticle(viewEvents),
		Browsers:              viewsByBrowser(viewEvents),
		Devices:               viewsByDevice(viewEvents),
		TrafficByHour:         trafficByHour(viewEvents),
	}

	if err := s.joinArticleMeta(ctx, report); err != nil {
		svcErr := errInternalArticleStoreFailed(err)
		metricReportBuiltTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	logger.Debug().
		Int("events_scanned", len(viewEvents)).
		Int("top_articles", len(report.TopArticles)).
		Msg("analytics report built")

	metricReportBuiltTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return report, nil
}

// joinArticleMeta resolves titles and slugs for every article id referenced by
// the top-articles and read-time aggregations with one batched lookup. Entries
// whose article has disappeared keep nil title/slug rather than being dropped.
func (s *reportService) joinArticleMeta(ctx context.Context, report *models.AnalyticsReport) error {
	idSet := make(map[string]struct{})
	for _, row := range report.TopArticles {
		idSet[row.ArticleID] = struct{}{}
	}
	for _, row := range report.AvgReadTimePerArticle {
		idSet[row.ArticleID] = struct{}{}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	articleMetas, err := s.articleStore.GetMetaByIDs(ctx, ids)
	if err != nil {
		return err
	}

	metaByID := make(map[string]*models.ArticleMeta, len(articleMetas))
	for _, meta := range articleMetas {
		metaByID[meta.ID] = meta
	}

	for _, row := range report.TopArticles {
		if meta, ok := metaByID[row.ArticleID]; ok {
			row.Title = meta.Title
			row.Slug = meta.Slug
		}
	}
	for _, row := range report.AvgReadTimePerArticle {
		if meta, ok := metaByID[row.ArticleID]; ok {
			row.Title = meta.Title
			row.Slug = meta.Slug
		}
	}

	return nil
}
