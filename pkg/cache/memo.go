package cache

import (
	"container/list"
	"sync"
)

type memoEntry[K comparable, V any] struct {
	key   K
	value V
}

// Memo is an LRU-bounded memoization table.
type Memo[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	recency  *list.List // front is most recently used
	hits     uint64
	misses   uint64
	mu       sync.Mutex
}

// NewMemo creates a memo holding at most capacity entries.
// The capacity must be positive, otherwise it panics.
func NewMemo[K comparable, V any](capacity int) *Memo[K, V] {
	if capacity <= 0 {
		panic("cache: memo capacity must be positive")
	}
	return &Memo[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		recency:  list.New(),
	}
}

// Do returns the remembered value for key, computing and storing it on a
// miss. compute runs under the memo lock and must not use the memo.
func (m *Memo[K, V]) Do(key K, compute func() V) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.hits++
		m.recency.MoveToFront(elem)
		return elem.Value.(*memoEntry[K, V]).value
	}

	m.misses++
	value := compute()
	m.items[key] = m.recency.PushFront(&memoEntry[K, V]{key: key, value: value})
	if m.recency.Len() > m.capacity {
		oldest := m.recency.Back()
		m.recency.Remove(oldest)
		delete(m.items, oldest.Value.(*memoEntry[K, V]).key)
	}
	return value
}

// Len returns the number of remembered entries.
func (m *Memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recency.Len()
}

// Stats reports how many lookups were answered from memory and how many computed.
func (m *Memo[K, V]) Stats() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}
