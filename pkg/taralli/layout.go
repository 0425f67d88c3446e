package taralli

import "github.com/veandco/go-sdl2/sdl"

// LayoutStyle describes how tab items are sized and positioned within the bar.
type LayoutStyle int

const (
	// LayoutStyleFixed divides the bar width equally between the items.
	LayoutStyleFixed LayoutStyle = iota

	// LayoutStyleScrollable sizes each item to its content and lays items out
	// from the leading edge; content may overflow and scroll.
	LayoutStyleScrollable

	// LayoutStyleFixedClusteredCentered gives every item the width of the
	// widest item and centers the block within the bar.
	LayoutStyleFixedClusteredCentered

	// LayoutStyleFixedClusteredLeading gives every item the width of the
	// widest item and aligns the block with the leading edge.
	LayoutStyleFixedClusteredLeading

	// LayoutStyleFixedClusteredTrailing gives every item the width of the
	// widest item and aligns the block with the trailing edge.
	LayoutStyleFixedClusteredTrailing

	// LayoutStyleScrollableCentered behaves like Scrollable but keeps the
	// selected item centered in the viewport when the scroll range permits.
	LayoutStyleScrollableCentered

	// LayoutStyleNonFixedClusteredCentered sizes each item to its content and
	// centers the block within the bar.
	LayoutStyleNonFixedClusteredCentered
)

const numLayoutStyles = 7

func (s LayoutStyle) String() string {
	switch s {
	case LayoutStyleFixed:
		return "fixed"
	case LayoutStyleScrollable:
		return "scrollable"
	case LayoutStyleFixedClusteredCentered:
		return "fixedClusteredCentered"
	case LayoutStyleFixedClusteredLeading:
		return "fixedClusteredLeading"
	case LayoutStyleFixedClusteredTrailing:
		return "fixedClusteredTrailing"
	case LayoutStyleScrollableCentered:
		return "scrollableCentered"
	case LayoutStyleNonFixedClusteredCentered:
		return "nonFixedClusteredCentered"
	default:
		return "unknown"
	}
}

// IsScrollable reports whether the style permits content overflowing the bar.
func (s LayoutStyle) IsScrollable() bool {
	return s == LayoutStyleScrollable || s == LayoutStyleScrollableCentered
}

// degradeTable maps each non-scrollable style to the scrollable style used
// when the preferred style cannot be rendered at the current width. The exact
// pairing follows the product documentation rather than anything derivable;
// centered styles keep their centering behavior, edge-aligned styles fall
// back to plain scrolling.
var degradeTable = [numLayoutStyles]LayoutStyle{
	LayoutStyleFixed:                     LayoutStyleScrollable,
	LayoutStyleScrollable:                LayoutStyleScrollable,
	LayoutStyleFixedClusteredCentered:    LayoutStyleScrollableCentered,
	LayoutStyleFixedClusteredLeading:     LayoutStyleScrollable,
	LayoutStyleFixedClusteredTrailing:    LayoutStyleScrollable,
	LayoutStyleScrollableCentered:        LayoutStyleScrollableCentered,
	LayoutStyleNonFixedClusteredCentered: LayoutStyleScrollableCentered,
}

// ResolveLayoutStyle returns the layout style that is actually renderable for
// the preferred style given the available width and the per-item widths
// (content width including insets, floored at the bar's minimum item width).
//
// This is a pure function of its inputs: scrollable preferences are always
// renderable and are returned unchanged, fixed-family preferences degrade to
// their scrollable analog when the items cannot fit. Degradation is one-way
// per call site only in the sense that a scrollable preference never upgrades;
// callers re-resolve on every width or content change.
func ResolveLayoutStyle(preferred LayoutStyle, availableWidth int32, itemWidths []int32) LayoutStyle {
	if preferred < 0 || preferred >= numLayoutStyles {
		preferred = LayoutStyleFixed
	}
	if preferred.IsScrollable() {
		return preferred
	}
	if len(itemWidths) == 0 {
		return preferred
	}

	var required int32
	switch preferred {
	case LayoutStyleNonFixedClusteredCentered:
		required = sumWidths(itemWidths)
	default:
		// Fixed and fixed-clustered styles both need every item at the
		// widest item's width.
		required = int32(len(itemWidths)) * maxWidth(itemWidths)
	}

	if required > availableWidth {
		return degradeTable[preferred]
	}
	return preferred
}

// computeItemFrames lays out the items for an already-resolved style and
// returns one frame per item. Frames for scrollable styles are in content
// coordinates starting at zero; the caller applies content padding and scroll
// offset. Frames for fixed styles span the available width directly.
func computeItemFrames(style LayoutStyle, availableWidth, barHeight int32, itemWidths []int32, mirrored bool) []sdl.Rect {
	if len(itemWidths) == 0 {
		return nil
	}

	frames := make([]sdl.Rect, len(itemWidths))
	count := int32(len(itemWidths))

	switch style {
	case LayoutStyleFixed:
		width := availableWidth / count
		if widest := maxWidth(itemWidths); width < widest {
			// Only reachable when a caller forces an infeasible style;
			// items keep their minimum renderable width.
			width = widest
		}
		for i := range frames {
			frames[i] = sdl.Rect{X: int32(i) * width, Y: 0, W: width, H: barHeight}
		}

	case LayoutStyleFixedClusteredCentered, LayoutStyleFixedClusteredLeading, LayoutStyleFixedClusteredTrailing:
		width := maxWidth(itemWidths)
		block := count * width
		var start int32
		switch style {
		case LayoutStyleFixedClusteredCentered:
			start = (availableWidth - block) / 2
		case LayoutStyleFixedClusteredTrailing:
			start = availableWidth - block
		}
		if start < 0 {
			start = 0
		}
		for i := range frames {
			frames[i] = sdl.Rect{X: start + int32(i)*width, Y: 0, W: width, H: barHeight}
		}

	case LayoutStyleNonFixedClusteredCentered:
		start := (availableWidth - sumWidths(itemWidths)) / 2
		if start < 0 {
			start = 0
		}
		x := start
		for i, w := range itemWidths {
			frames[i] = sdl.Rect{X: x, Y: 0, W: w, H: barHeight}
			x += w
		}

	default: // Scrollable, ScrollableCentered
		var x int32
		for i, w := range itemWidths {
			frames[i] = sdl.Rect{X: x, Y: 0, W: w, H: barHeight}
			x += w
		}
	}

	if mirrored {
		extent := availableWidth
		if style.IsScrollable() {
			extent = sumWidths(itemWidths)
		}
		for i := range frames {
			frames[i].X = extent - frames[i].X - frames[i].W
		}
	}

	return frames
}

// centeredContentOffset returns the scroll offset that places the frame's
// midpoint at the viewport's midpoint, clamped to the valid scroll range.
func centeredContentOffset(frame sdl.Rect, viewportWidth, contentWidth int32) int32 {
	offset := frame.X + frame.W/2 - viewportWidth/2
	return clampContentOffset(offset, viewportWidth, contentWidth)
}

// clampContentOffset limits offset to [0, contentWidth-viewportWidth].
func clampContentOffset(offset, viewportWidth, contentWidth int32) int32 {
	maxOffset := contentWidth - viewportWidth
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func maxWidth(widths []int32) int32 {
	var m int32
	for _, w := range widths {
		if w > m {
			m = w
		}
	}
	return m
}

func sumWidths(widths []int32) int32 {
	var s int32
	for _, w := range widths {
		s += w
	}
	return s
}
