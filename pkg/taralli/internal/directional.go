package internal

import (
	"time"

	"github.com/nikit6000/taralli/pkg/taralli/constants"
)

// Direction represents a horizontal navigation direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// HorizontalRepeat tracks held left/right buttons and handles repeat timing.
// Embed this in widget state to get consistent held-button behavior when
// stepping through tabs.
type HorizontalRepeat struct {
	held struct {
		left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewHorizontalRepeat creates a HorizontalRepeat with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewHorizontalRepeat() HorizontalRepeat {
	return HorizontalRepeat{
		repeatDelay:    300 * time.Millisecond,
		repeatInterval: 50 * time.Millisecond,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a horizontal directional button.
func (h *HorizontalRepeat) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonLeft:
		h.held.left = held
	case constants.VirtualButtonRight:
		h.held.right = held
	default:
		return false
	}
	if !held {
		h.hasRepeated = false
	}
	return true
}

// IsHeld returns true if either direction is currently held.
func (h *HorizontalRepeat) IsHeld() bool {
	return h.held.left || h.held.right
}

// HeldDirection returns the currently held direction. Left wins if both are
// held. Returns DirectionNone if neither is held.
func (h *HorizontalRepeat) HeldDirection() Direction {
	if h.held.left {
		return DirectionLeft
	}
	if h.held.right {
		return DirectionRight
	}
	return DirectionNone
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. It returns the direction that should be processed,
// or DirectionNone if no repeat should occur.
func (h *HorizontalRepeat) Update() Direction {
	if !h.IsHeld() {
		h.lastRepeatTime = time.Now()
		h.hasRepeated = false
		return DirectionNone
	}

	threshold := h.repeatInterval
	if !h.hasRepeated {
		threshold = h.repeatDelay
	}

	if time.Since(h.lastRepeatTime) >= threshold {
		h.lastRepeatTime = time.Now()
		h.hasRepeated = true
		return h.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held state and timing.
func (h *HorizontalRepeat) Reset() {
	h.held.left = false
	h.held.right = false
	h.hasRepeated = false
	h.lastRepeatTime = time.Now()
}
