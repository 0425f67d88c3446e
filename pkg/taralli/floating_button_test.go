package taralli

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

func TestFloatingButtonGeometry(t *testing.T) {
	t.Parallel()

	t.Run("diameter follows the shape", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, int32(56), NewFloatingButton(FloatingButtonShapeDefault).Diameter())
		require.Equal(t, int32(40), NewFloatingButton(FloatingButtonShapeMini).Diameter())
	})

	t.Run("frame is centered on the anchor point", func(t *testing.T) {
		t.Parallel()
		button := NewFloatingButton(FloatingButtonShapeDefault)
		button.SetCenter(sdl.Point{X: 100, Y: 200})
		require.Equal(t, sdl.Rect{X: 72, Y: 172, W: 56, H: 56}, button.Frame())
	})
}

func TestFloatingButtonHitTest(t *testing.T) {
	t.Parallel()

	t.Run("hits within the circle and misses outside", func(t *testing.T) {
		t.Parallel()
		button := NewFloatingButton(FloatingButtonShapeDefault)
		button.SetCenter(sdl.Point{X: 100, Y: 100})

		require.True(t, button.HitTest(sdl.Point{X: 100, Y: 100}))
		require.True(t, button.HitTest(sdl.Point{X: 128, Y: 100}))
		require.False(t, button.HitTest(sdl.Point{X: 160, Y: 100}))
	})

	t.Run("mini buttons keep the minimum touch target", func(t *testing.T) {
		t.Parallel()
		button := NewFloatingButton(FloatingButtonShapeMini)
		button.SetCenter(sdl.Point{X: 100, Y: 100})

		// 22px from center is outside the 40px circle but inside the
		// 48px touch target.
		require.True(t, button.HitTest(sdl.Point{X: 122, Y: 100}))
		require.False(t, button.HitTest(sdl.Point{X: 125, Y: 100}))
	})

	t.Run("disabled buttons do not hit", func(t *testing.T) {
		t.Parallel()
		button := NewFloatingButton(FloatingButtonShapeDefault)
		button.SetCenter(sdl.Point{X: 100, Y: 100})
		button.Enabled = atomic.NewBool(false)

		require.False(t, button.HitTest(sdl.Point{X: 100, Y: 100}))
		require.False(t, button.IsEnabled())

		button.Enabled.Store(true)
		require.True(t, button.HitTest(sdl.Point{X: 100, Y: 100}))
	})
}

func TestFloatingButtonColorTables(t *testing.T) {
	t.Parallel()

	red := sdl.Color{R: 255, A: 255}

	t.Run("defaults come from the scheme's secondary pair", func(t *testing.T) {
		t.Parallel()
		button := NewFloatingButton(FloatingButtonShapeDefault)
		require.Equal(t, button.scheme.SecondaryColor, button.BackgroundColorForState(VisualStateSelected))
		require.Equal(t, button.scheme.OnSecondaryColor, button.ImageTintColorForState(VisualStateNormal))
	})

	t.Run("selected falls back to normal", func(t *testing.T) {
		t.Parallel()
		button := NewFloatingButton(FloatingButtonShapeDefault)
		button.SetBackgroundColor(&red, VisualStateNormal)
		require.Equal(t, red, button.BackgroundColorForState(VisualStateSelected))
	})

	t.Run("applying a scheme keeps explicit overrides", func(t *testing.T) {
		t.Parallel()
		button := NewFloatingButton(FloatingButtonShapeDefault)
		button.SetBackgroundColor(&red, VisualStateNormal)

		scheme := DefaultColorScheme()
		scheme.SecondaryColor = sdl.Color{G: 255, A: 255}
		button.ApplyColorScheme(scheme)

		require.Equal(t, red, button.BackgroundColorForState(VisualStateNormal))
		require.Equal(t, scheme.OnSecondaryColor, button.ImageTintColorForState(VisualStateNormal))
	})
}
