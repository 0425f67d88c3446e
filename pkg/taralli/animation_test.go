package taralli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTimingFunctionEval(t *testing.T) {
	t.Parallel()

	tf := selectionTimingFunction

	t.Run("pins the endpoints", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0.0, tf.Eval(0))
		require.Equal(t, 1.0, tf.Eval(1))
		require.Equal(t, 0.0, tf.Eval(-0.5))
		require.Equal(t, 1.0, tf.Eval(2))
	})

	t.Run("is monotonically non-decreasing", func(t *testing.T) {
		t.Parallel()
		previous := 0.0
		for i := 1; i <= 100; i++ {
			v := tf.Eval(float64(i) / 100)
			require.GreaterOrEqual(t, v, previous, "at t=%d/100", i)
			previous = v
		}
	})

	t.Run("eases in and out", func(t *testing.T) {
		t.Parallel()
		// The standard curve starts slower than linear and ends faster.
		require.Less(t, tf.Eval(0.1), 0.1)
		require.Greater(t, tf.Eval(0.9), 0.9)
	})
}

func TestSelectionAnimationSampling(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	anim := &selectionAnimation{
		start: start,
		from:  sdl.Rect{X: 0, Y: 0, W: 100, H: 48},
		to:    sdl.Rect{X: 300, Y: 0, W: 200, H: 48},
	}

	require.Equal(t, anim.from, anim.frameAt(start, selectionTimingFunction))
	require.Equal(t, anim.to, anim.frameAt(start.Add(time.Second), selectionTimingFunction))
	require.False(t, anim.done(start.Add(299*time.Millisecond)))
	require.True(t, anim.done(start.Add(300*time.Millisecond)))

	mid := anim.frameAt(start.Add(150*time.Millisecond), selectionTimingFunction)
	require.Greater(t, mid.X, anim.from.X)
	require.Less(t, mid.X, anim.to.X)
	require.Greater(t, mid.W, anim.from.W)
	require.Less(t, mid.W, anim.to.W)
}

func TestOffsetAnimationSampling(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	anim := &offsetAnimation{start: start, from: 0, to: 200}

	require.Equal(t, int32(0), anim.valueAt(start, selectionTimingFunction))
	require.Equal(t, int32(200), anim.valueAt(start.Add(time.Second), selectionTimingFunction))

	mid := anim.valueAt(start.Add(150*time.Millisecond), selectionTimingFunction)
	require.Greater(t, mid, int32(0))
	require.Less(t, mid, int32(200))
}
