package async

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// settled hands out a global settlement order so joins can tell which
// future finished first, independent of the order they were awaited in.
var settled atomic.Uint64

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	seq    uint64
	once   sync.Once
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout. The computation
// itself keeps running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// Done returns a channel closed once the future has settled.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[U]) settle(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
		f.seq = settled.Add(1)
	})
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents goroutine leak when context is pre-canceled
		select {
		case <-ctx.Done():
			var zero U
			f.settle(zero, ctx.Err())
			return
		default:
		}

		res, err := fn(ctx, param)
		f.settle(res, err)
	}()

	return f
}

// Settle waits until every future has completed, successful or not.
// It returns all results in input order and the error of the future that
// failed first in time, or nil when none failed. Unlike a fail-fast join it
// never returns while a future is still running.
func Settle[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	var (
		firstErr error
		firstSeq uint64
	)
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && (firstErr == nil || future.seq < firstSeq) {
			firstErr = err
			firstSeq = future.seq
		}
	}

	return results, firstErr
}
