package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"article-analytics/internal/events"
	"article-analytics/internal/models"
	"article-analytics/internal/shared/loggers"
	"article-analytics/internal/shared/metrics"
	"article-analytics/internal/shared/svcerrors"
	"article-analytics/internal/shared/ulid"
	"article-analytics/internal/stores"
)

//go:generate mockgen -source=page_view_consumer.go -destination=./mocks/page_view_consumer_mock.go -package=mocks
type PageViewConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type pageViewConsumer struct {
	queue          *PartitionedQueue[events.PageViewEvent]
	viewEventStore stores.ViewEventStore

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewPageViewConsumer(queue *PartitionedQueue[events.PageViewEvent], viewEventStore stores.ViewEventStore, logger loggers.Logger) PageViewConsumer {
	return &pageViewConsumer{
		queue:          queue,
		viewEventStore: viewEventStore,
		stopCh:         make(chan struct{}),
		logger:         logger,
	}
}

// Start spawns one worker goroutine per partition. Each partition is a
// single-writer lane for the article ids routed to it by the producer.
func (consumer *pageViewConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *pageViewConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *pageViewConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.PageViewEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event := <-ch:
			consumer.persistOne(ctx, partitionIndex, event)
		}
	}
}

func (consumer *pageViewConsumer) persistOne(ctx context.Context, partitionIndex int, event events.PageViewEvent) {
	// Recover so a bad event cannot take the partition worker down
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("consumer panic recovered: %v", r)

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricPageViewPersistedTotal.WithLabelValues(streamPageView, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	viewEvent := &models.ViewEvent{
		EventID:          event.EventID,
		ArticleID:        event.ArticleID,
		VisitorID:        event.VisitorID,
		StartedAt:        event.StartedAt,
		TimeSpentSeconds: event.TimeSpentSeconds,
		Browser:          event.Browser,
		DeviceType:       event.DeviceType,
	}

	if err := consumer.viewEventStore.InsertViewEvent(ctx, viewEvent); err != nil {
		loggers.Ctx(ctx).Error().
			Err(err).
			Str(loggers.FieldEventID, event.EventID).
			Str(loggers.FieldArticleID, event.ArticleID).
			Msg("failed to persist page view")

		svcErr := svcerrors.NewInternalErrorUndefined(err)
		metricPageViewPersistedTotal.WithLabelValues(streamPageView, svcErr.Code).Inc()
		return
	}

	metricPageViewPersistedTotal.WithLabelValues(streamPageView, metrics.ValueNoError).Inc()
}
