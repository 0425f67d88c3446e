package taralli

import "github.com/veandco/go-sdl2/sdl"

// TabItem represents a single entry in a TabBar.
//
// Items are matched by pointer identity, not by value: two items with equal
// fields are still distinct tabs, and selection tracks the pointer the caller
// passed in. Items carry no layout state; the bar computes geometry from the
// item sequence on demand.
type TabItem struct {
	Title              string      // Display text for the tab
	IconPath           string      // Path to an SVG icon, empty for text-only tabs
	BadgeValue         string      // Badge text, empty hides the badge
	BadgeColor         *sdl.Color  // Badge background, nil uses the error color
	AccessibilityLabel string      // Spoken label, falls back to Title when empty
	Metadata           interface{} // Application-specific data attached to the item
}

// NewTabItem creates a text-only tab item.
func NewTabItem(title string) *TabItem {
	return &TabItem{Title: title}
}

// accessibilityText is the base label used for accessibility descriptions.
func (t *TabItem) accessibilityText() string {
	if t.AccessibilityLabel != "" {
		return t.AccessibilityLabel
	}
	return t.Title
}

// hasIcon reports whether the item renders an icon.
func (t *TabItem) hasIcon() bool {
	return t.IconPath != ""
}
