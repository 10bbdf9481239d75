package streams

import (
	"context"
	"testing"
	"time"

	"article-analytics/internal/events"
	"article-analytics/internal/models"
	"article-analytics/internal/shared/loggers"
	storemocks "article-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPageViewConsumer_PersistsPublishedEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	viewEventStore := storemocks.NewMockViewEventStore(ctrl)

	timeSpent := int64(45)
	event := events.PageViewEvent{
		EventID:          "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		ArticleID:        "article-A",
		VisitorID:        "visitor-1",
		StartedAt:        time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		TimeSpentSeconds: &timeSpent,
		Browser:          "Chrome",
		DeviceType:       "desktop",
	}

	persisted := make(chan *models.ViewEvent, 1)
	viewEventStore.EXPECT().
		InsertViewEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, viewEvent *models.ViewEvent) error {
			persisted <- viewEvent
			return nil
		})

	logger, err := loggers.New("error")
	require.NoError(t, err)

	queue := NewPartitionedQueue[events.PageViewEvent]()
	consumer := NewPageViewConsumer(queue, viewEventStore, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	consumer.Start(ctx)
	defer consumer.Stop()

	producer := NewPageViewProducer(queue)
	require.NoError(t, producer.Produce(ctx, &event))

	select {
	case viewEvent := <-persisted:
		assert.Equal(t, event.EventID, viewEvent.EventID)
		assert.Equal(t, event.ArticleID, viewEvent.ArticleID)
		assert.Equal(t, event.VisitorID, viewEvent.VisitorID)
		assert.Equal(t, event.StartedAt, viewEvent.StartedAt)
		require.NotNil(t, viewEvent.TimeSpentSeconds)
		assert.Equal(t, int64(45), *viewEvent.TimeSpentSeconds)
		assert.Equal(t, "Chrome", viewEvent.Browser)
		assert.Equal(t, "desktop", viewEvent.DeviceType)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not persisted within 2s")
	}
}

func TestPageViewConsumer_StoreFailureDoesNotStopWorker(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	viewEventStore := storemocks.NewMockViewEventStore(ctrl)

	secondInsert := make(chan struct{}, 1)
	gomock.InOrder(
		viewEventStore.EXPECT().
			InsertViewEvent(gomock.Any(), gomock.Any()).
			Return(assert.AnError),
		viewEventStore.EXPECT().
			InsertViewEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.ViewEvent) error {
				secondInsert <- struct{}{}
				return nil
			}),
	)

	logger, err := loggers.New("error")
	require.NoError(t, err)

	queue := NewPartitionedQueue[events.PageViewEvent]()
	consumer := NewPageViewConsumer(queue, viewEventStore, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	consumer.Start(ctx)
	defer consumer.Stop()

	producer := NewPageViewProducer(queue)
	base := events.PageViewEvent{
		ArticleID: "article-A",
		VisitorID: "visitor-1",
		StartedAt: time.Now().UTC(),
	}
	first := base
	first.EventID = "event-1"
	second := base
	second.EventID = "event-2"

	// Same article id: both events share one partition, so they are handled in
	// order by one worker
	require.NoError(t, producer.Produce(ctx, &first))
	require.NoError(t, producer.Produce(ctx, &second))

	select {
	case <-secondInsert:
		// The worker survived the first failure
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not process the second event after a store failure")
	}
}

func TestPageViewProducer_ContextCancelled(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.PageViewEvent]()
	producer := NewPageViewProducer(queue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := producer.Produce(ctx, &events.PageViewEvent{EventID: "e1", ArticleID: "a1"})
	assert.ErrorIs(t, err, context.Canceled)
}
