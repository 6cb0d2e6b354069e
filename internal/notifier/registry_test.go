package notifier_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/r507/suguan-bot/internal/notifier"
)

func TestRegistry_AddIsIdempotent(t *testing.T) {
	registry := notifier.NewRegistry()

	registry.Add(1)
	registry.Add(1)
	registry.Add(1)

	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, []int64{1}, registry.Snapshot())
}

func TestRegistry_Discard(t *testing.T) {
	registry := notifier.NewRegistry()

	registry.Add(1)
	registry.Add(2)
	registry.Discard(1)

	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, []int64{2}, registry.Snapshot())
}

func TestRegistry_DiscardUnknownIsNoop(t *testing.T) {
	registry := notifier.NewRegistry()

	registry.Discard(99)

	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_SnapshotIsDetached(t *testing.T) {
	registry := notifier.NewRegistry()

	registry.Add(1)

	snapshot := registry.Snapshot()
	registry.Discard(1)

	assert.Equal(t, []int64{1}, snapshot)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_ConcurrentAdd(t *testing.T) {
	registry := notifier.NewRegistry()

	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		chatID := int64(i % 10)

		wg.Add(1)

		go func() {
			defer wg.Done()

			registry.Add(chatID)
		}()
	}

	wg.Wait()

	assert.Equal(t, 10, registry.Len())
}
