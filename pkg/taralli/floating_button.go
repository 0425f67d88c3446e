package taralli

import (
	"github.com/nikit6000/taralli/pkg/taralli/internal"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// FloatingButtonShape selects the button's diameter.
type FloatingButtonShape int

const (
	// FloatingButtonShapeDefault is the standard 56px floating button.
	FloatingButtonShapeDefault FloatingButtonShape = iota
	// FloatingButtonShapeMini is the 40px variant for dense layouts.
	FloatingButtonShapeMini
)

// FloatingButtonMode selects between a plain circle and an extended pill
// with a title next to the icon.
type FloatingButtonMode int

const (
	FloatingButtonModeNormal FloatingButtonMode = iota
	FloatingButtonModeExtended
)

const minTouchTarget int32 = 48

// FloatingButton is a circular action button floating above the rest of the
// UI. Colors follow the same per-state override tables as the tab bar, with
// the color scheme's primary pair as the built-in defaults.
//
// Enabled may be toggled from any goroutine; everything else follows the
// single UI thread rule.
type FloatingButton struct {
	Shape    FloatingButtonShape
	Mode     FloatingButtonMode
	Title    string // Shown in Extended mode
	IconPath string // SVG icon

	// Enabled, when non-nil, gates interaction and dims rendering. Worker
	// goroutines may flip it while an operation is in progress.
	Enabled *atomic.Bool

	center sdl.Point

	backgroundColors [numVisualStates]*sdl.Color
	imageTintColors  [numVisualStates]*sdl.Color
	selected         bool

	scheme ColorScheme
}

// NewFloatingButton creates a floating button with the default color scheme.
func NewFloatingButton(shape FloatingButtonShape) *FloatingButton {
	return &FloatingButton{
		Shape:  shape,
		scheme: GetDefaultColorScheme(),
	}
}

// Diameter returns the circle diameter for the button's shape.
func (f *FloatingButton) Diameter() int32 {
	if f.Shape == FloatingButtonShapeMini {
		return 40
	}
	return 56
}

// SetCenter positions the button by its center point in window coordinates.
func (f *FloatingButton) SetCenter(center sdl.Point) {
	f.center = center
}

// Frame returns the button's circle bounds in window coordinates.
func (f *FloatingButton) Frame() sdl.Rect {
	d := f.Diameter()
	return sdl.Rect{X: f.center.X - d/2, Y: f.center.Y - d/2, W: d, H: d}
}

// SetSelected toggles the selected visual state.
func (f *FloatingButton) SetSelected(selected bool) {
	f.selected = selected
}

// IsEnabled reports whether the button accepts interaction.
func (f *FloatingButton) IsEnabled() bool {
	return f.Enabled == nil || f.Enabled.Load()
}

// SetBackgroundColor sets the background for a visual state. A nil color
// removes the override. States other than Normal and Selected are ignored.
func (f *FloatingButton) SetBackgroundColor(color *sdl.Color, state VisualState) {
	if !validState(state) {
		internal.GetInternalLogger().Warn("Unsupported visual state for background", "state", int(state))
		return
	}
	f.backgroundColors[state] = copyColor(color)
}

// BackgroundColorForState returns the background for a visual state with the
// Selected→Normal→default fallback chain; the default is the scheme's
// secondary color.
func (f *FloatingButton) BackgroundColorForState(state VisualState) sdl.Color {
	if c := lookupState(f.backgroundColors, state); c != nil {
		return *c
	}
	return f.scheme.SecondaryColor
}

// SetImageTintColor sets the icon tint for a visual state. A nil color
// removes the override. States other than Normal and Selected are ignored.
func (f *FloatingButton) SetImageTintColor(color *sdl.Color, state VisualState) {
	if !validState(state) {
		internal.GetInternalLogger().Warn("Unsupported visual state for image tint", "state", int(state))
		return
	}
	f.imageTintColors[state] = copyColor(color)
}

// ImageTintColorForState returns the icon tint for a visual state with the
// same fallback chain; the default is the scheme's on-secondary color.
func (f *FloatingButton) ImageTintColorForState(state VisualState) sdl.Color {
	if c := lookupState(f.imageTintColors, state); c != nil {
		return *c
	}
	return f.scheme.OnSecondaryColor
}

// ApplyColorScheme adopts a color scheme for the button's default colors.
// Per-state overrides are kept as-is. This is the supported theming path.
func (f *FloatingButton) ApplyColorScheme(scheme ColorScheme) {
	f.scheme = scheme
}

// HitTest reports whether the point lands on the button, using a touch
// target of at least 48px regardless of shape. Disabled buttons do not hit.
func (f *FloatingButton) HitTest(p sdl.Point) bool {
	if !f.IsEnabled() {
		return false
	}

	radius := f.Diameter() / 2
	if radius < minTouchTarget/2 {
		radius = minTouchTarget / 2
	}
	dx := int64(p.X - f.center.X)
	dy := int64(p.Y - f.center.Y)
	return dx*dx+dy*dy <= int64(radius)*int64(radius)
}

// Render draws the button at its center point.
func (f *FloatingButton) Render(renderer *sdl.Renderer) {
	state := VisualStateNormal
	if f.selected {
		state = VisualStateSelected
	}

	background := f.BackgroundColorForState(state)
	if !f.IsEnabled() {
		background.A = 97 // 38% opacity, the standard disabled treatment
	}

	radius := f.Diameter() / 2

	// Soft shadow one step down-right before the face.
	internal.FillCircle(renderer, f.center.X+1, f.center.Y+2, radius,
		sdl.Color{R: 0, G: 0, B: 0, A: 40})
	internal.FillCircle(renderer, f.center.X, f.center.Y, radius, background)

	if f.IconPath != "" {
		f.renderIcon(renderer, state)
	}

	if f.Mode == FloatingButtonModeExtended && f.Title != "" {
		theme := internal.GetTheme()
		internal.DrawText(renderer, f.Title, theme.FontPath, theme.FontSize,
			f.ImageTintColorForState(state),
			sdl.Point{X: f.center.X + radius + tabIconTitleSpace, Y: f.center.Y})
	}
}

func (f *FloatingButton) renderIcon(renderer *sdl.Renderer, state VisualState) {
	window := internal.GetWindow()
	if window == nil {
		return
	}
	texture := window.IconTexture(f.IconPath, tabIconSize, tabIconSize)
	if texture == nil {
		return
	}

	tint := f.ImageTintColorForState(state)
	_ = texture.SetColorMod(tint.R, tint.G, tint.B)
	rect := sdl.Rect{X: f.center.X - tabIconSize/2, Y: f.center.Y - tabIconSize/2, W: tabIconSize, H: tabIconSize}
	_ = renderer.Copy(texture, nil, &rect)
}
