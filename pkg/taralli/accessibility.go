package taralli

import (
	"github.com/nikit6000/taralli/pkg/taralli/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// AccessibilityElement is the platform accessibility representation of a tab
// item: a localized spoken description plus the frame of the view that
// renders the item.
type AccessibilityElement struct {
	Item        *TabItem
	Description string   // Localized, e.g. "Home, tab 1 of 3"
	Frame       sdl.Rect // Bar-local frame of the item's view
	Selected    bool
}

// AccessibilityElementForItem returns the accessibility element associated
// with item, or nil when the item is not in the bar. Absence is expected
// during live mutation and is not an error.
func (b *TabBar) AccessibilityElementForItem(item *TabItem) *AccessibilityElement {
	idx := b.indexOfItem(item)
	if idx < 0 {
		return nil
	}

	label := item.accessibilityText()
	if item.BadgeValue != "" {
		label = internal.BadgeDescription(label, item.BadgeValue)
	}

	return &AccessibilityElement{
		Item:        item,
		Description: internal.TabDescription(label, idx+1, len(b.items)),
		Frame:       b.viewportFrame(b.layoutFrames()[idx]),
		Selected:    item == b.selectedItem,
	}
}

// AccessibilityElements returns one element per item, in display order.
func (b *TabBar) AccessibilityElements() []*AccessibilityElement {
	elements := make([]*AccessibilityElement, 0, len(b.items))
	for _, item := range b.items {
		elements = append(elements, b.AccessibilityElementForItem(item))
	}
	return elements
}
