package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionIndex_DeterministicAndInRange(t *testing.T) {
	t.Parallel()

	keys := []string{"article-1", "article-2", "article-3", "", "a-very-long-article-identifier"}
	for _, key := range keys {
		first := partitionIndex(key, 8)
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, 8)

		// The same key always routes to the same partition
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, partitionIndex(key, 8))
		}
	}
}

func TestPartitionedQueue_PublishRoutesByKey(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[string](4, 16)
	require.Equal(t, 4, queue.PartitionCount())

	queue.Publish("article-1", "first")
	queue.Publish("article-1", "second")

	idx := partitionIndex("article-1", 4)
	assert.Equal(t, "first", <-queue.partitions[idx])
	assert.Equal(t, "second", <-queue.partitions[idx])
}
