// Package slider implements a headless integer range slider.
//
// An Engine owns the value, the text shown in the paired number field, the
// handle position and the validation error. The host feeds it pointer,
// touch, keyboard, text and resize events and draws whatever State reports.
// Layout is pulled from a LayoutProvider whenever the engine needs fresh
// measurements: on construction, on Resize and when a drag starts.
//
// # Usage
//
//	eng, err := slider.New(layout,
//		slider.WithRange(geometry.Range{Min: 0, Max: 10, Step: 2}),
//		slider.WithValue(4),
//		slider.WithListener(func(n slider.Notification) {
//			fmt.Println(n.Input, n.Error)
//		}),
//	)
//	if err != nil {
//		return err
//	}
//
//	eng.KeyDown("ArrowRight") // value 6
//	eng.Render()              // listeners receive {"6", ""}
//
// # Gestures
//
// Pressing the bar or the handle starts a drag; Move is only accepted while
// dragging and returns ErrNotDragging otherwise. TouchMove needs no prior
// press. Release is a no-op when no drag is active.
//
// # Validation
//
// Render runs the built-in bounds rule (required, then too high, then too
// low) followed by the caller's validators. The first failure becomes the
// error. Render notifies listeners on every call, whether or not anything
// changed. Values typed past the range keep their text and report an error
// while the handle stays clamped to the track.
package slider
