// Package constants defines shared constants, types, and configuration values
// used throughout the taralli widget library.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar overrides the window width in development mode.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar overrides the window height in development mode.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// LocaleEnvVar overrides the locale used for accessibility descriptions.
const LocaleEnvVar = "TARALLI_LOCALE"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction allows taralli to work with different controller configurations.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Default metrics shared by the tab bar and floating button widgets.
const (
	// DefaultMinItemWidth is the minimum width of a tab item in pixels.
	DefaultMinItemWidth int32 = 90

	// DefaultScrollableLeadingPadding is the leading content padding applied
	// to scrollable layout styles.
	DefaultScrollableLeadingPadding int32 = 52

	// SelectionChangeAnimationDuration is the total duration of all animations
	// that run during a selection change. Fixed for the whole library so
	// callers can animate other UI in lockstep.
	SelectionChangeAnimationDuration = 300 * time.Millisecond

	// DefaultInputDelay is the debounce delay between input events.
	DefaultInputDelay = 20 * time.Millisecond
)
