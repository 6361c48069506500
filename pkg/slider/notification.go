package slider

// Notification is delivered to listeners every time the engine renders.
type Notification struct {
	Input string `json:"input"`
	Error string `json:"error"`
}

// Listener receives render notifications. It runs outside the engine lock
// and may call back into the engine.
type Listener func(Notification)

// State is a snapshot of everything the host needs to draw the slider.
type State struct {
	Value     int     `json:"value"`
	Input     string  `json:"input"`
	HandlePos float64 `json:"handlePos"`
	Fill      float64 `json:"fill"`
	Error     string  `json:"error"`
	Dragging  bool    `json:"dragging"`
	Disabled  bool    `json:"disabled"`
}
