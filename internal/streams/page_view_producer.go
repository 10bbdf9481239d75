package streams

import (
	"context"

	"article-analytics/internal/events"
)

// PageViewProducer publishes tracked page views onto the partitioned queue,
// keyed by article id. All views of one article land on the same partition,
// so the consumer writes them with a single goroutine and inserts for one
// article never interleave.
//
//go:generate mockgen -source=page_view_producer.go -destination=./mocks/page_view_producer_mock.go -package=mocks
type PageViewProducer interface {
	Produce(ctx context.Context, event *events.PageViewEvent) error
}

type pageViewProducer struct {
	queue *PartitionedQueue[events.PageViewEvent]
}

func NewPageViewProducer(queue *PartitionedQueue[events.PageViewEvent]) PageViewProducer {
	return &pageViewProducer{
		queue: queue,
	}
}

func (producer *pageViewProducer) Produce(ctx context.Context, event *events.PageViewEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	producer.queue.Publish(event.ArticleID, *event)
	metricPageViewProducedTotal.WithLabelValues(streamPageView).Inc()
	return nil
}
