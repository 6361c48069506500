package slider

import (
	"context"

	"github.com/dmitrymomot/uiwkit/pkg/statemachine"
)

type gestureState string

const (
	stateIdle     gestureState = "idle"
	stateDragging gestureState = "dragging"
)

type gestureEvent string

const (
	eventPress   gestureEvent = "press"
	eventMove    gestureEvent = "move"
	eventTouch   gestureEvent = "touchmove"
	eventRelease gestureEvent = "release"
)

type (
	gestureMachine = statemachine.Machine[gestureState, gestureEvent]
	gestureOption  = statemachine.TransitionOption[gestureState, gestureEvent]
)

// newGesture wires the drag lifecycle. Guards and actions read and write
// engine fields; every Fire happens with the engine lock held.
func newGesture(e *Engine) *gestureMachine {
	enabled := statemachine.WithGuard[gestureState, gestureEvent](e.enabled)
	follow := statemachine.WithAction[gestureState, gestureEvent](e.follow)

	return statemachine.New[gestureState, gestureEvent](stateIdle,
		statemachine.WithTransition(stateIdle, stateDragging, eventPress, enabled,
			statemachine.WithAction[gestureState, gestureEvent](e.beginDrag)),
		statemachine.WithTransition[gestureState, gestureEvent](stateDragging, stateDragging, eventPress, enabled),
		statemachine.WithTransition(stateDragging, stateDragging, eventMove, enabled, follow),
		statemachine.WithTransition(stateDragging, stateDragging, eventTouch, enabled, follow),
		statemachine.WithTransition(stateIdle, stateIdle, eventTouch, enabled, follow),
		statemachine.WithTransition(stateDragging, stateIdle, eventRelease,
			statemachine.WithAction[gestureState, gestureEvent](e.endDrag)),
	)
}

func (e *Engine) enabled(context.Context, gestureState, gestureEvent, any) bool {
	return !e.opts.disabled
}

// beginDrag re-reads the layout so the handle width is the one measured
// before the host restyles the focused handle.
func (e *Engine) beginDrag(ctx context.Context, _, _ gestureState, _ gestureEvent, _ any) error {
	e.remeasure()
	e.log.DebugContext(ctx, "drag started")
	return nil
}

func (e *Engine) endDrag(ctx context.Context, _, _ gestureState, _ gestureEvent, _ any) error {
	e.log.DebugContext(ctx, "drag finished")
	return nil
}

func (e *Engine) follow(_ context.Context, _, _ gestureState, _ gestureEvent, data any) error {
	if x, ok := data.(float64); ok {
		e.followPointer(x)
	}
	return nil
}
