package trackers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"article-analytics/internal/events"
	"article-analytics/internal/shared/loggers"
	"article-analytics/internal/shared/metrics"
	"article-analytics/internal/shared/ulid"
	"article-analytics/internal/streams"

	"context"

	"github.com/mileusna/useragent"
)

const (
	maxBodyBytes  = 16 * 1024
	maxIDLen      = 256
	maxBrowserLen = 256
)

const (
	deviceMobile  = "mobile"
	deviceTablet  = "tablet"
	deviceDesktop = "desktop"
	deviceBot     = "bot"
)

// TrackResult represents the result of tracking one page view.
type TrackResult struct {
	EventID string
}

//go:generate mockgen -source=tracking_service.go -destination=./mocks/tracking_service_mock.go -package=mocks
type TrackingService interface {
	// TrackView validates and normalizes one page view from a JSON body plus
	// the request User-Agent, then publishes it for asynchronous persistence.
	TrackView(ctx context.Context, userAgent string, r io.Reader) (*TrackResult, error)
}

type trackingService struct {
	pageViewProducer streams.PageViewProducer
}

func NewTrackingService(pageViewProducer streams.PageViewProducer) TrackingService {
	return &trackingService{
		pageViewProducer: pageViewProducer,
	}
}

// trackViewPayload is the wire shape of POST /views.
type trackViewPayload struct {
	ArticleID        string `json:"article_id"`
	VisitorID        string `json:"visitor_id"`
	TimeSpentSeconds *int64 `json:"time_spent_seconds"`
	StartedAt        string `json:"started_at"` // RFC3339, optional
}

func (s *trackingService) TrackView(ctx context.Context, userAgent string, r io.Reader) (*TrackResult, error) {
	logger := loggers.Ctx(ctx)

	payload, err := s.decodePayload(r)
	if err != nil {
		metricViewTrackedTotal.WithLabelValues(codeValidationFailed).Inc()
		return nil, err
	}

	startedAt, err := s.resolveStartedAt(payload.StartedAt)
	if err != nil {
		metricViewTrackedTotal.WithLabelValues(codeValidationFailed).Inc()
		return nil, err
	}

	browser, deviceType := deriveClient(userAgent)

	event := &events.PageViewEvent{
		EventID:          ulid.NewULID(),
		ArticleID:        payload.ArticleID,
		VisitorID:        payload.VisitorID,
		StartedAt:        startedAt,
		TimeSpentSeconds: payload.TimeSpentSeconds,
		Browser:          browser,
		DeviceType:       deviceType,
	}

	if err := s.pageViewProducer.Produce(ctx, event); err != nil {
		svcErr := errInternalPageViewPublisherFailed(err)
		metricViewTrackedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	logger.Debug().
		Str(loggers.FieldEventID, event.EventID).
		Str(loggers.FieldArticleID, event.ArticleID).
		Msg("page view tracked")

	metricViewTrackedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &TrackResult{EventID: event.EventID}, nil
}

func (s *trackingService) decodePayload(r io.Reader) (*trackViewPayload, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	var payload trackViewPayload
	decoder := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	if err := decoder.Decode(&payload); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}

	payload.ArticleID = strings.TrimSpace(payload.ArticleID)
	payload.VisitorID = strings.TrimSpace(payload.VisitorID)

	if payload.ArticleID == "" {
		return nil, errValidationFailed("article_id is required", nil)
	}
	if len(payload.ArticleID) > maxIDLen {
		return nil, errValidationFailed(fmt.Sprintf("article_id too long: max %d characters", maxIDLen), nil)
	}
	if payload.VisitorID == "" {
		return nil, errValidationFailed("visitor_id is required", nil)
	}
	if len(payload.VisitorID) > maxIDLen {
		return nil, errValidationFailed(fmt.Sprintf("visitor_id too long: max %d characters", maxIDLen), nil)
	}
	if payload.TimeSpentSeconds != nil && *payload.TimeSpentSeconds < 0 {
		return nil, errValidationFailed("time_spent_seconds must be >= 0", nil)
	}

	return &payload, nil
}

// resolveStartedAt parses the optional client timestamp, defaulting to now.
func (s *trackingService) resolveStartedAt(startedAt string) (time.Time, error) {
	if startedAt == "" {
		return time.Now().UTC(), nil
	}
	parsed, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return time.Time{}, errValidationFailed(fmt.Sprintf("started_at %q is not RFC3339", startedAt), err)
	}
	return parsed.UTC(), nil
}

// deriveClient extracts a browser family and a device class from the raw
// User-Agent. An unparseable UA keeps its raw string as the browser label;
// an absent UA leaves both empty, which the aggregations later surface under
// their unknown sentinels.
func deriveClient(rawUserAgent string) (browser, deviceType string) {
	rawUserAgent = strings.TrimSpace(rawUserAgent)
	if rawUserAgent == "" {
		return "", ""
	}
	if len(rawUserAgent) > maxBrowserLen {
		rawUserAgent = rawUserAgent[:maxBrowserLen]
	}

	parsed := useragent.Parse(rawUserAgent)

	browser = parsed.Name
	if browser == "" {
		browser = rawUserAgent
	}

	switch {
	case parsed.Bot:
		deviceType = deviceBot
	case parsed.Mobile:
		deviceType = deviceMobile
	case parsed.Tablet:
		deviceType = deviceTablet
	case parsed.Desktop:
		deviceType = deviceDesktop
	}

	return browser, deviceType
}
