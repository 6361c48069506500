package validator

import (
	"context"

	"github.com/dmitrymomot/uiwkit/pkg/async"
)

// AsyncFunc validates a value off the event loop. Returning an error rejects
// the value; its text becomes the field error.
type AsyncFunc func(ctx context.Context, value string) error

// RunAsync runs every validator concurrently and waits for all of them to
// settle. It returns nil when all accept, otherwise an *AsyncValidationError
// wrapping the rejection that arrived first.
func RunAsync(ctx context.Context, value string, fns ...AsyncFunc) error {
	futures := make([]*async.Future[struct{}], 0, len(fns))
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		futures = append(futures, async.Async(ctx, value, func(ctx context.Context, v string) (struct{}, error) {
			return struct{}{}, fn(ctx, v)
		}))
	}

	if _, err := async.Settle(futures...); err != nil {
		return &AsyncValidationError{Err: err}
	}
	return nil
}
