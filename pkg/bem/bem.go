// Package bem builds class names following the block__element--modifier convention.
package bem

import (
	"slices"
	"strings"
)

// Modifiers is a set of modifier names mapped to whether they are active.
type Modifiers map[string]bool

// Active returns the active modifier names in sorted order.
func (m Modifiers) Active() []string {
	out := make([]string, 0, len(m))
	for name, on := range m {
		if on && name != "" {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Class returns base followed by one base--modifier class per active modifier.
// base is either a block or a block__element string.
func Class(base string, mods ...Modifiers) string {
	var b strings.Builder
	b.WriteString(base)
	for _, set := range mods {
		for _, name := range set.Active() {
			b.WriteString(" ")
			b.WriteString(base)
			b.WriteString("--")
			b.WriteString(name)
		}
	}
	return b.String()
}

// Block is a BEM block name.
type Block string

// Class returns the block class with modifiers applied.
func (b Block) Class(mods ...Modifiers) string {
	return Class(string(b), mods...)
}

// Element returns the class for an element of the block.
func (b Block) Element(element string, mods ...Modifiers) string {
	return Class(string(b)+"__"+element, mods...)
}
