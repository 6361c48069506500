package async_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uiwkit/pkg/async"
)

// TestAsyncFunctionality tests the basic functionality of the Async helper.
func TestAsyncFunctionality(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futureString := async.Async(ctx, 42, func(ctx context.Context, num int) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return fmt.Sprintf("Number: %d", num), nil
	})
	futureBool := async.Async(ctx, "test", func(ctx context.Context, s string) (bool, error) {
		return len(s) > 0, nil
	})

	resultString, errString := futureString.Await()
	resultBool, errBool := futureBool.Await()

	require.NoError(t, errString)
	require.NoError(t, errBool)
	assert.Equal(t, "Number: 42", resultString)
	assert.True(t, resultBool)
}

// TestAsyncContextCancellation tests that a pre-cancelled context completes the future early.
func TestAsyncContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	future := async.Async(ctx, 1, func(ctx context.Context, num int) (int, error) {
		called = true
		return num, nil
	})

	result, err := future.Await()
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result)
	assert.False(t, called)
}

// TestAsyncErrorPropagation tests that errors from the asynchronous function are propagated.
func TestAsyncErrorPropagation(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("an error occurred in the async function")
	future := async.Async(context.Background(), 42, func(ctx context.Context, num int) (int, error) {
		return 0, expectedErr
	})

	result, err := future.Await()
	require.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, result)
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	slow := async.Async(ctx, 0, func(ctx context.Context, _ int) (string, error) {
		time.Sleep(200 * time.Millisecond)
		return "late", nil
	})
	_, err := slow.AwaitWithTimeout(20 * time.Millisecond)
	require.ErrorIs(t, err, async.ErrTimeout)

	fast := async.Async(ctx, 0, func(ctx context.Context, _ int) (string, error) {
		return "ok", nil
	})
	res, err := fast.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ok", res)
}

func TestDone(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	future := async.Async(context.Background(), 0, func(ctx context.Context, _ int) (int, error) {
		<-release
		return 1, nil
	})

	select {
	case <-future.Done():
		t.Fatal("future completed before release")
	default:
	}

	close(release)
	<-future.Done()
	res, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 1, res)
}

func TestSettle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("all succeed", func(t *testing.T) {
		t.Parallel()

		futures := make([]*async.Future[int], 0, 3)
		for i := range 3 {
			futures = append(futures, async.Async(ctx, i, func(ctx context.Context, n int) (int, error) {
				time.Sleep(time.Duration(3-n) * 5 * time.Millisecond)
				return n * 10, nil
			}))
		}

		results, err := async.Settle(futures...)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 10, 20}, results)
	})

	t.Run("earliest failure wins and every future settles", func(t *testing.T) {
		t.Parallel()

		late := async.Async(ctx, "late", func(ctx context.Context, s string) (string, error) {
			time.Sleep(40 * time.Millisecond)
			return "", errors.New(s)
		})
		early := async.Async(ctx, "early", func(ctx context.Context, s string) (string, error) {
			time.Sleep(5 * time.Millisecond)
			return "", errors.New(s)
		})
		ok := async.Async(ctx, "ok", func(ctx context.Context, s string) (string, error) {
			time.Sleep(60 * time.Millisecond)
			return s, nil
		})

		start := time.Now()
		results, err := async.Settle(late, early, ok)
		require.Error(t, err)
		assert.Equal(t, "early", err.Error())
		assert.Equal(t, "ok", results[2])
		assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)

		select {
		case <-ok.Done():
		default:
			t.Fatal("Settle returned before all futures completed")
		}
	})

	t.Run("no futures", func(t *testing.T) {
		t.Parallel()

		results, err := async.Settle[int]()
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
