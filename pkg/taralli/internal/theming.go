package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the ambient visual defaults shared by all widgets.
// The per-widget color tables layer on top of these values.
type Theme struct {
	BarColor            sdl.Color // Tab bar background color
	DividerColor        sdl.Color // Bottom divider under the tab bar
	RippleColor         sdl.Color // Touch feedback overlay color
	IndicatorColor      sdl.Color // Selection indicator stroke color
	BackgroundColor     sdl.Color // Screen background color
	FontPath            string    // Path to the primary UI font
	FontSize            int32     // Default title font size in points
	BackgroundImagePath string    // Path to the background image
}

var currentTheme = DefaultTheme()

// DefaultTheme returns the built-in theme used before SetTheme is called.
func DefaultTheme() Theme {
	return Theme{
		BarColor:        HexToColor(0xFFFFFF),
		DividerColor:    sdl.Color{R: 0, G: 0, B: 0, A: 0},
		RippleColor:     sdl.Color{R: 0, G: 0, B: 0, A: 26},
		IndicatorColor:  HexToColor(0x6200EE),
		BackgroundColor: HexToColor(0xFFFFFF),
		FontSize:        14,
	}
}

// SetTheme sets the active theme for the library.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
