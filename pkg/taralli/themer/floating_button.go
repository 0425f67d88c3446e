// Package themer applies color schemes onto widget instances as one-shot
// property copies.
//
// Deprecated: themers predate the theming-extension pattern. Use the
// widgets' own ApplyColorScheme methods instead; see
// FloatingButton.ApplyColorScheme.
package themer

import (
	"github.com/nikit6000/taralli/pkg/taralli"
)

// ApplyFloatingButtonColorScheme copies a color scheme's properties onto a
// floating button: the primary color becomes the background for both visual
// states and the on-primary color becomes the icon tint.
//
// Deprecated: Use FloatingButton.ApplyColorScheme instead.
func ApplyFloatingButtonColorScheme(scheme taralli.ColorScheme, button *taralli.FloatingButton) {
	background := scheme.PrimaryColor
	tint := scheme.OnPrimaryColor

	button.SetBackgroundColor(&background, taralli.VisualStateNormal)
	button.SetBackgroundColor(&background, taralli.VisualStateSelected)
	button.SetImageTintColor(&tint, taralli.VisualStateNormal)
	button.SetImageTintColor(&tint, taralli.VisualStateSelected)
}
