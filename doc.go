// Package uiwkit provides headless form controls: the state, validation and
// gesture logic behind an integer range slider and a text input, with no
// rendering attached.
//
// The controls live in their own packages:
//
//   - pkg/slider: the slider engine (value, handle placement, drag, keyboard,
//     typed input and bounds validation)
//   - pkg/input: the text input controller (formatting, sync validation on
//     change, async validation rounds on blur)
//
// Both share the supporting packages under pkg/: geometry for the
// value/position mapping, validator for rules and messages, i18n for
// translated messages, bem for class names, statemachine for the drag
// gesture, async for futures, broadcast for state streams, logger and config
// for the ambient setup.
//
// The uiwctl command replays scripted event sequences against either control
// and prints every resulting state, which is handy for checking behaviour
// without a browser:
//
//	uiwctl replay session.yaml --json
//
// A script names the control, its options and the events to feed it:
//
//	control: slider
//	slider:
//	  min: 0
//	  max: 10
//	  step: 2
//	  layout: {barStart: 0, barWidth: 110, handleWidth: 10}
//	events:
//	  - {type: key, key: ArrowRight}
//	  - {type: press-bar, x: 50}
//	  - {type: release}
package uiwkit
