package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApproximateTextWidth(t *testing.T) {
	t.Parallel()

	require.Equal(t, int32(0), ApproximateTextWidth("", 20))

	// Narrow runes count as 0.55em each.
	require.Equal(t, int32(3*20*55/100), ApproximateTextWidth("abc", 20))

	// Wide runes count as a full em.
	require.Equal(t, int32(2*20), ApproximateTextWidth("日本", 20))

	// Mixed text sums both buckets.
	require.Equal(t, int32(20+2*20*55/100), ApproximateTextWidth("あab", 20))
}
