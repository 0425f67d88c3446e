package internal

import (
	"testing"
	"time"

	"github.com/nikit6000/taralli/pkg/taralli/constants"
	"github.com/stretchr/testify/require"
)

func TestHorizontalRepeatHeldState(t *testing.T) {
	t.Parallel()

	repeat := NewHorizontalRepeat()
	require.False(t, repeat.IsHeld())
	require.Equal(t, DirectionNone, repeat.HeldDirection())

	require.True(t, repeat.SetHeld(constants.VirtualButtonRight, true))
	require.True(t, repeat.IsHeld())
	require.Equal(t, DirectionRight, repeat.HeldDirection())

	// Left wins when both are held.
	require.True(t, repeat.SetHeld(constants.VirtualButtonLeft, true))
	require.Equal(t, DirectionLeft, repeat.HeldDirection())

	require.True(t, repeat.SetHeld(constants.VirtualButtonLeft, false))
	require.Equal(t, DirectionRight, repeat.HeldDirection())

	// Non-directional buttons are not claimed.
	require.False(t, repeat.SetHeld(constants.VirtualButtonA, true))

	repeat.Reset()
	require.False(t, repeat.IsHeld())
}

func TestHorizontalRepeatTiming(t *testing.T) {
	t.Parallel()

	repeat := NewHorizontalRepeat()
	repeat.SetHeld(constants.VirtualButtonRight, true)

	// Before the initial delay nothing fires.
	require.Equal(t, DirectionNone, repeat.Update())

	// Rewind the clock past the initial delay, then past the interval.
	repeat.lastRepeatTime = time.Now().Add(-400 * time.Millisecond)
	require.Equal(t, DirectionRight, repeat.Update())

	require.Equal(t, DirectionNone, repeat.Update())
	repeat.lastRepeatTime = time.Now().Add(-60 * time.Millisecond)
	require.Equal(t, DirectionRight, repeat.Update())

	// Releasing resets to the long delay.
	repeat.SetHeld(constants.VirtualButtonRight, false)
	require.Equal(t, DirectionNone, repeat.Update())
	require.False(t, repeat.hasRepeated)
}
