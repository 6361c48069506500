package cache_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uiwkit/pkg/cache"
)

func TestMemoComputesOnce(t *testing.T) {
	t.Parallel()

	m := cache.NewMemo[string, int](4)
	calls := 0
	compute := func() int { calls++; return 42 }

	assert.Equal(t, 42, m.Do("a", compute))
	assert.Equal(t, 42, m.Do("a", compute))
	assert.Equal(t, 1, calls)

	hits, misses := m.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestMemoEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	m := cache.NewMemo[string, string](2)
	m.Do("a", func() string { return "A" })
	m.Do("b", func() string { return "B" })
	m.Do("a", func() string { return "unused" })
	m.Do("c", func() string { return "C" })

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "A", m.Do("a", func() string { return "recomputed" }), "a was used recently")
	assert.Equal(t, "B2", m.Do("b", func() string { return "B2" }), "b was evicted")
}

func TestMemoInvalidCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cache.NewMemo[string, int](0) })
}

func TestMemoConcurrent(t *testing.T) {
	t.Parallel()

	m := cache.NewMemo[string, string](8)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := strconv.Itoa(i % 10)
			assert.Equal(t, key, m.Do(key, func() string { return key }))
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, m.Len(), 8)
}
