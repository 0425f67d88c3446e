package taralli

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestResolveLayoutStyle(t *testing.T) {
	t.Parallel()

	widths := []int32{90, 90, 90} // requires 270 for any fixed style

	t.Run("is a pure function of its inputs", func(t *testing.T) {
		t.Parallel()
		first := ResolveLayoutStyle(LayoutStyleFixed, 200, widths)
		second := ResolveLayoutStyle(LayoutStyleFixed, 200, widths)
		require.Equal(t, first, second)
	})

	t.Run("fixed stays fixed when items fit", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, LayoutStyleFixed, ResolveLayoutStyle(LayoutStyleFixed, 300, widths))
	})

	t.Run("fixed degrades to scrollable when too narrow", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, LayoutStyleScrollable, ResolveLayoutStyle(LayoutStyleFixed, 200, widths))
	})

	t.Run("clustered variants degrade to their scrollable analog", func(t *testing.T) {
		t.Parallel()
		cases := map[LayoutStyle]LayoutStyle{
			LayoutStyleFixedClusteredCentered: LayoutStyleScrollableCentered,
			LayoutStyleFixedClusteredLeading:  LayoutStyleScrollable,
			LayoutStyleFixedClusteredTrailing: LayoutStyleScrollable,
		}
		for preferred, degraded := range cases {
			require.Equal(t, degraded, ResolveLayoutStyle(preferred, 200, widths),
				"preferred %v", preferred)
			require.Equal(t, preferred, ResolveLayoutStyle(preferred, 300, widths),
				"preferred %v at sufficient width", preferred)
		}
	})

	t.Run("clustered feasibility uses the widest item", func(t *testing.T) {
		t.Parallel()
		uneven := []int32{90, 150, 90}
		// Block is 3*150=450, even though the sum is only 330.
		require.Equal(t, LayoutStyleScrollableCentered,
			ResolveLayoutStyle(LayoutStyleFixedClusteredCentered, 400, uneven))
	})

	t.Run("non-fixed clustered uses the sum of widths", func(t *testing.T) {
		t.Parallel()
		uneven := []int32{90, 150, 90}
		require.Equal(t, LayoutStyleNonFixedClusteredCentered,
			ResolveLayoutStyle(LayoutStyleNonFixedClusteredCentered, 400, uneven))
		require.Equal(t, LayoutStyleScrollableCentered,
			ResolveLayoutStyle(LayoutStyleNonFixedClusteredCentered, 300, uneven))
	})

	t.Run("scrollable preferences never change", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, LayoutStyleScrollable, ResolveLayoutStyle(LayoutStyleScrollable, 10, widths))
		require.Equal(t, LayoutStyleScrollable, ResolveLayoutStyle(LayoutStyleScrollable, 10000, widths))
		require.Equal(t, LayoutStyleScrollableCentered, ResolveLayoutStyle(LayoutStyleScrollableCentered, 10000, widths))
	})

	t.Run("no items keeps the preferred style", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, LayoutStyleFixed, ResolveLayoutStyle(LayoutStyleFixed, 0, nil))
	})
}

func TestDegradationIsMonotonicAcrossWidths(t *testing.T) {
	t.Parallel()

	widths := []int32{90, 90, 90}

	transitions := 0
	previous := ResolveLayoutStyle(LayoutStyleFixed, 400, widths)
	for w := int32(399); w >= 100; w-- {
		current := ResolveLayoutStyle(LayoutStyleFixed, w, widths)
		if current != previous {
			transitions++
			require.Equal(t, LayoutStyleFixed, previous)
			require.Equal(t, LayoutStyleScrollable, current)
		}
		previous = current
	}
	require.Equal(t, 1, transitions)
	require.Equal(t, LayoutStyleScrollable, previous)
}

func TestComputeItemFrames(t *testing.T) {
	t.Parallel()

	t.Run("fixed divides the width equally", func(t *testing.T) {
		t.Parallel()
		frames := computeItemFrames(LayoutStyleFixed, 300, 48, []int32{90, 90, 90}, false)
		require.Equal(t, []sdl.Rect{
			{X: 0, Y: 0, W: 100, H: 48},
			{X: 100, Y: 0, W: 100, H: 48},
			{X: 200, Y: 0, W: 100, H: 48},
		}, frames)
	})

	t.Run("clustered variants share the widest width", func(t *testing.T) {
		t.Parallel()
		widths := []int32{80, 100, 80}

		centered := computeItemFrames(LayoutStyleFixedClusteredCentered, 500, 48, widths, false)
		require.Equal(t, int32(100), centered[0].X) // (500-300)/2
		require.Equal(t, int32(100), centered[0].W)
		require.Equal(t, int32(200), centered[1].X)

		leading := computeItemFrames(LayoutStyleFixedClusteredLeading, 500, 48, widths, false)
		require.Equal(t, int32(0), leading[0].X)

		trailing := computeItemFrames(LayoutStyleFixedClusteredTrailing, 500, 48, widths, false)
		require.Equal(t, int32(200), trailing[0].X)
		require.Equal(t, int32(400), trailing[2].X)
	})

	t.Run("non-fixed clustered centers items at their own widths", func(t *testing.T) {
		t.Parallel()
		frames := computeItemFrames(LayoutStyleNonFixedClusteredCentered, 500, 48, []int32{80, 100, 80}, false)
		require.Equal(t, int32(120), frames[0].X) // (500-260)/2
		require.Equal(t, int32(80), frames[0].W)
		require.Equal(t, int32(200), frames[1].X)
		require.Equal(t, int32(100), frames[1].W)
	})

	t.Run("scrollable lays items out from the leading edge", func(t *testing.T) {
		t.Parallel()
		frames := computeItemFrames(LayoutStyleScrollable, 200, 48, []int32{80, 100, 80}, false)
		require.Equal(t, int32(0), frames[0].X)
		require.Equal(t, int32(80), frames[1].X)
		require.Equal(t, int32(180), frames[2].X)
	})

	t.Run("mirrored layout reverses the order", func(t *testing.T) {
		t.Parallel()
		frames := computeItemFrames(LayoutStyleFixed, 300, 48, []int32{90, 90, 90}, true)
		require.Equal(t, int32(200), frames[0].X)
		require.Equal(t, int32(0), frames[2].X)

		scroll := computeItemFrames(LayoutStyleScrollable, 200, 48, []int32{80, 100, 80}, true)
		// Content extent is 260; the first item hugs the trailing edge.
		require.Equal(t, int32(180), scroll[0].X)
		require.Equal(t, int32(0), scroll[2].X)
	})
}

func TestCenteredContentOffset(t *testing.T) {
	t.Parallel()

	frame := sdl.Rect{X: 400, W: 100, H: 48}

	t.Run("centers the frame midpoint", func(t *testing.T) {
		t.Parallel()
		// Midpoint 450, viewport 200 -> offset 350, content is wide enough.
		require.Equal(t, int32(350), centeredContentOffset(frame, 200, 1000))
	})

	t.Run("clamps to the scroll range", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, int32(300), centeredContentOffset(frame, 200, 500))
		require.Equal(t, int32(0), centeredContentOffset(sdl.Rect{X: 10, W: 40}, 200, 500))
		require.Equal(t, int32(0), centeredContentOffset(frame, 600, 500))
	})
}
