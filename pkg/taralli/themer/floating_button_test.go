package themer_test

import (
	"testing"

	"github.com/nikit6000/taralli/pkg/taralli"
	"github.com/nikit6000/taralli/pkg/taralli/themer"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestApplyFloatingButtonColorScheme(t *testing.T) {
	t.Parallel()

	scheme := taralli.DefaultColorScheme()
	scheme.PrimaryColor = sdl.Color{R: 0x12, G: 0x34, B: 0x56, A: 255}
	scheme.OnPrimaryColor = sdl.Color{R: 0xFE, G: 0xDC, B: 0xBA, A: 255}

	button := taralli.NewFloatingButton(taralli.FloatingButtonShapeDefault)
	themer.ApplyFloatingButtonColorScheme(scheme, button)

	for _, state := range []taralli.VisualState{taralli.VisualStateNormal, taralli.VisualStateSelected} {
		require.Equal(t, scheme.PrimaryColor, button.BackgroundColorForState(state))
		require.Equal(t, scheme.OnPrimaryColor, button.ImageTintColorForState(state))
	}
}
