// Package statemachine implements a small generic finite state machine.
//
// States and events are any comparable types, typically string-based
// constants. Transitions may carry guards, which all have to pass, and
// actions, which run in order before the state changes; a failing action
// aborts the transition. Self-transitions are allowed, which is how the
// slider models pointer moves while dragging.
//
//	type state string
//	type event string
//
//	m := statemachine.New[state, event]("idle",
//	    statemachine.WithTransition[state, event]("idle", "dragging", "press"),
//	    statemachine.WithTransition[state, event]("dragging", "dragging", "move",
//	        statemachine.WithAction(onMove)),
//	    statemachine.WithTransition[state, event]("dragging", "idle", "release"),
//	)
//	err := m.Fire(ctx, "press", nil)
//
// Fire returns *ErrNoTransitionAvailable when the current state has no
// transition for the event and *ErrTransitionRejected when guards block every
// candidate. Use IsNoTransitionAvailableError / IsTransitionRejectedError to
// test for them.
//
// A Machine is safe for concurrent use. Actions run under the machine's lock
// and must not call back into the same machine.
package statemachine
