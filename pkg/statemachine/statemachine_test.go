package statemachine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uiwkit/pkg/statemachine"
)

type state string
type event string

const (
	idle     state = "idle"
	dragging state = "dragging"

	press   event = "press"
	move    event = "move"
	release event = "release"
)

func TestMachineTransitions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var moves []any
	onMove := statemachine.Action[state, event](func(_ context.Context, from, to state, _ event, data any) error {
		moves = append(moves, data)
		return nil
	})

	m := statemachine.New[state, event](idle,
		statemachine.WithTransition[state, event](idle, dragging, press),
		statemachine.WithTransition(dragging, dragging, move, statemachine.WithAction(onMove)),
		statemachine.WithTransition[state, event](dragging, idle, release),
	)

	assert.Equal(t, idle, m.Current())
	assert.False(t, m.CanFire(ctx, move, nil))

	err := m.Fire(ctx, move, 1.0)
	require.Error(t, err)
	assert.True(t, statemachine.IsNoTransitionAvailableError(err))

	require.NoError(t, m.Fire(ctx, press, nil))
	assert.True(t, m.Is(dragging))

	require.NoError(t, m.Fire(ctx, move, 10.0))
	require.NoError(t, m.Fire(ctx, move, 20.0))
	assert.Equal(t, []any{10.0, 20.0}, moves)
	assert.True(t, m.Is(dragging))

	require.NoError(t, m.Fire(ctx, release, nil))
	assert.True(t, m.Is(idle))
}

func TestMachineGuards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	enabled := true
	guard := statemachine.Guard[state, event](func(context.Context, state, event, any) bool { return enabled })

	m := statemachine.New[state, event](idle,
		statemachine.WithTransition(idle, dragging, press, statemachine.WithGuard(guard)),
	)

	enabled = false
	assert.False(t, m.CanFire(ctx, press, nil))
	err := m.Fire(ctx, press, nil)
	require.Error(t, err)
	assert.True(t, statemachine.IsTransitionRejectedError(err))
	assert.Equal(t, idle, m.Current())

	enabled = true
	require.NoError(t, m.Fire(ctx, press, nil))
	assert.Equal(t, dragging, m.Current())
}

func TestMachineFirstPassingTransitionWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reject := statemachine.Guard[state, event](func(context.Context, state, event, any) bool { return false })
	m := statemachine.New[state, event](idle,
		statemachine.WithTransition(idle, "blocked", press, statemachine.WithGuard(reject)),
		statemachine.WithTransition[state, event](idle, dragging, press),
	)

	require.NoError(t, m.Fire(ctx, press, nil))
	assert.Equal(t, dragging, m.Current())
}

func TestMachineFailingActionAborts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	fail := statemachine.Action[state, event](func(context.Context, state, state, event, any) error { return boom })

	m := statemachine.New[state, event](idle,
		statemachine.WithTransition(idle, dragging, press, statemachine.WithAction(fail)),
	)

	err := m.Fire(ctx, press, nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, idle, m.Current())
}

func TestMachineReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := statemachine.New[state, event](idle,
		statemachine.WithTransition[state, event](idle, dragging, press),
	)
	require.NoError(t, m.Fire(ctx, press, nil))
	m.Reset()
	assert.Equal(t, idle, m.Current())
}
