package broadcast

import (
	"context"
	"sync"
	"sync/atomic"
)

// MemoryBroadcaster is an in-process Broadcaster. All methods are safe for
// concurrent use.
type MemoryBroadcaster[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	seq         atomic.Uint64
	closed      bool
	mu          sync.RWMutex
	watchers    sync.WaitGroup // context watchers of live subscriptions
}

// NewMemoryBroadcaster creates a broadcaster whose subscribers each queue up
// to bufferSize messages. A minimum of 1 is enforced.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe registers a subscriber for all future messages. It ends when ctx
// is cancelled. Subscribing to a closed broadcaster yields a closed subscriber.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T](b.bufferSize)
	if b.closed {
		_ = sub.Close()
		return sub
	}
	b.subscribers[sub] = struct{}{}

	if ctx != nil && ctx.Done() != nil {
		b.watchers.Add(1)
		go func() {
			defer b.watchers.Done()
			select {
			case <-ctx.Done():
				b.unsubscribe(sub)
			case <-sub.done:
				b.forget(sub)
			}
		}()
	}

	return sub
}

// Broadcast delivers data to every subscriber and returns how many got it.
// Subscribers closed by their owner are dropped on the way.
func (b *MemoryBroadcaster[T]) Broadcast(data T) int {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return 0
	}

	msg := Message[T]{Seq: b.seq.Add(1), Data: data}
	delivered := 0
	var gone []*subscriber[T]
	for sub := range b.subscribers {
		if sub.send(msg) {
			delivered++
		} else {
			gone = append(gone, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range gone {
		b.forget(sub)
	}
	return delivered
}

// Subscribers returns the number of registered subscriptions.
func (b *MemoryBroadcaster[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close ends every subscription. It is safe to call more than once.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true

	subs := make([]*subscriber[T], 0, len(b.subscribers))
	for sub := range b.subscribers {
		subs = append(subs, sub)
	}
	clear(b.subscribers)
	b.mu.Unlock()

	for _, sub := range subs {
		_ = sub.Close()
	}
	b.watchers.Wait()

	return nil
}

func (b *MemoryBroadcaster[T]) unsubscribe(sub *subscriber[T]) {
	b.forget(sub)
	_ = sub.Close()
}

func (b *MemoryBroadcaster[T]) forget(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subscribers, sub)
}
