package trackers

import (
	"context"
	"strings"
	"testing"
	"time"

	"article-analytics/internal/events"
	"article-analytics/internal/shared/svcerrors"
	streammocks "article-analytics/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	safariIPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	googlebotUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func newTrackingServiceWithMock(t *testing.T) (TrackingService, *streammocks.MockPageViewProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	producer := streammocks.NewMockPageViewProducer(ctrl)
	return NewTrackingService(producer), producer
}

func TestTrackView_Success(t *testing.T) {
	t.Parallel()

	service, producer := newTrackingServiceWithMock(t)

	var published *events.PageViewEvent
	producer.EXPECT().
		Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *events.PageViewEvent) error {
			published = event
			return nil
		})

	body := strings.NewReader(`{"article_id": "article-A", "visitor_id": "visitor-1", "time_spent_seconds": 42}`)
	result, err := service.TrackView(context.Background(), chromeDesktopUA, body)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.EventID, 26, "event id should be a ULID")
	require.NotNil(t, published)
	assert.Equal(t, result.EventID, published.EventID)
	assert.Equal(t, "article-A", published.ArticleID)
	assert.Equal(t, "visitor-1", published.VisitorID)
	require.NotNil(t, published.TimeSpentSeconds)
	assert.Equal(t, int64(42), *published.TimeSpentSeconds)
	assert.Equal(t, "Chrome", published.Browser)
	assert.Equal(t, "desktop", published.DeviceType)
	assert.WithinDuration(t, time.Now().UTC(), published.StartedAt, 5*time.Second)
}

func TestTrackView_ExplicitStartedAt(t *testing.T) {
	t.Parallel()

	service, producer := newTrackingServiceWithMock(t)

	var published *events.PageViewEvent
	producer.EXPECT().
		Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *events.PageViewEvent) error {
			published = event
			return nil
		})

	body := strings.NewReader(`{"article_id": "a", "visitor_id": "v", "started_at": "2024-01-15T10:30:00+02:00"}`)
	_, err := service.TrackView(context.Background(), chromeDesktopUA, body)
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC), published.StartedAt, "started_at is normalized to UTC")
}

func TestTrackView_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing article_id", body: `{"visitor_id": "v1"}`},
		{name: "missing visitor_id", body: `{"article_id": "a1"}`},
		{name: "blank article_id", body: `{"article_id": "   ", "visitor_id": "v1"}`},
		{name: "negative time spent", body: `{"article_id": "a1", "visitor_id": "v1", "time_spent_seconds": -5}`},
		{name: "invalid json", body: `{not json`},
		{name: "bad started_at", body: `{"article_id": "a1", "visitor_id": "v1", "started_at": "yesterday"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No Produce expectation: invalid payloads never reach the queue
			service, _ := newTrackingServiceWithMock(t)

			result, err := service.TrackView(context.Background(), chromeDesktopUA, strings.NewReader(tt.body))
			assert.Nil(t, result)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "TRK_1000", svcErr.Code)
			assert.Equal(t, 400, svcErr.HttpStatusCode)
		})
	}
}

func TestTrackView_ProducerFailure(t *testing.T) {
	t.Parallel()

	service, producer := newTrackingServiceWithMock(t)

	producer.EXPECT().
		Produce(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	body := strings.NewReader(`{"article_id": "a1", "visitor_id": "v1"}`)
	result, err := service.TrackView(context.Background(), chromeDesktopUA, body)
	assert.Nil(t, result)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TRK_9000", svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
}

func TestDeriveClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		userAgent      string
		wantBrowser    string
		wantDeviceType string
	}{
		{
			name:           "desktop chrome",
			userAgent:      chromeDesktopUA,
			wantBrowser:    "Chrome",
			wantDeviceType: "desktop",
		},
		{
			name:           "mobile safari",
			userAgent:      safariIPhoneUA,
			wantBrowser:    "Safari",
			wantDeviceType: "mobile",
		},
		{
			name:           "bot",
			userAgent:      googlebotUA,
			wantBrowser:    "Googlebot",
			wantDeviceType: "bot",
		},
		{
			name:           "empty user agent",
			userAgent:      "",
			wantBrowser:    "",
			wantDeviceType: "",
		},
		{
			name:           "unparseable keeps raw label",
			userAgent:      "my-custom-client/1.0",
			wantBrowser:    "my-custom-client/1.0",
			wantDeviceType: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			browser, deviceType := deriveClient(tt.userAgent)
			assert.Equal(t, tt.wantBrowser, browser)
			assert.Equal(t, tt.wantDeviceType, deviceType)
		})
	}
}
