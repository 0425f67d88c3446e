package taralli

// EdgeInsets defines spacing on all four sides of an element.
// Leading and Trailing are flipped when the bar uses mirrored layout.
type EdgeInsets struct {
	Top      int32
	Leading  int32
	Bottom   int32
	Trailing int32
}

// UniformEdgeInsets creates an EdgeInsets with the same value on all sides.
func UniformEdgeInsets(value int32) EdgeInsets {
	return EdgeInsets{
		Top:      value,
		Leading:  value,
		Bottom:   value,
		Trailing: value,
	}
}

// Horizontal returns the combined leading and trailing insets.
func (e EdgeInsets) Horizontal() int32 {
	return e.Leading + e.Trailing
}

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() int32 {
	return e.Top + e.Bottom
}
