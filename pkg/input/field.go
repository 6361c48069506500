package input

import "sync"

// Field is the rendered text field the controller writes back into.
type Field interface {
	SetText(text string)
}

// FieldFunc adapts a function to Field.
type FieldFunc func(text string)

func (f FieldFunc) SetText(text string) { f(text) }

// Buffer is an in-memory Field. It is safe for concurrent use.
type Buffer struct {
	mu   sync.Mutex
	text string
}

func (b *Buffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
}

// Text returns the last text written to the buffer.
func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

type nopField struct{}

func (nopField) SetText(string) {}
