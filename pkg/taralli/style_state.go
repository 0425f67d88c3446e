package taralli

import "github.com/veandco/go-sdl2/sdl"

func validState(state VisualState) bool {
	return state == VisualStateNormal || state == VisualStateSelected
}

// lookupState reads a per-state override table with the fallback chain:
// the requested state, then Normal. Unknown states resolve as Normal.
// Returns nil when no override applies; the caller supplies the built-in
// default.
func lookupState[T any](table [numVisualStates]*T, state VisualState) *T {
	if validState(state) && table[state] != nil {
		return table[state]
	}
	return table[VisualStateNormal]
}

func copyColor(c *sdl.Color) *sdl.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
