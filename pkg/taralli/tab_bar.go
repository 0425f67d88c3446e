package taralli

import (
	"time"

	"github.com/nikit6000/taralli/pkg/taralli/constants"
	"github.com/nikit6000/taralli/pkg/taralli/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// VisualState keys the per-state style override tables.
// Only Normal and Selected are supported; lookups for any other value fall
// back to Normal.
type VisualState int

const (
	VisualStateNormal VisualState = iota
	VisualStateSelected
)

const numVisualStates = 2

// FontRef identifies a font face and size without holding an open font
// handle. The zero value means "use the theme font".
type FontRef struct {
	Path string
	Size int32
}

func (f FontRef) isZero() bool {
	return f == FontRef{}
}

// TabBarDelegate receives selection callbacks driven by user input.
// Programmatic selection via SetSelectedItem does not consult the delegate,
// matching the usual platform convention. Callbacks run synchronously on the
// UI thread.
type TabBarDelegate interface {
	// ShouldSelectItem can veto a user-driven selection change.
	ShouldSelectItem(bar *TabBar, item *TabItem) bool
	// DidSelectItem is invoked after a user-driven selection change lands.
	DidSelectItem(bar *TabBar, item *TabItem)
}

// CoordinateSpace converts rectangles out of the tab bar's own coordinate
// space, e.g. into window or screen coordinates.
type CoordinateSpace interface {
	ConvertRect(r sdl.Rect) sdl.Rect
}

// OffsetSpace is a CoordinateSpace that applies a fixed translation.
type OffsetSpace struct {
	DX, DY int32
}

func (s OffsetSpace) ConvertRect(r sdl.Rect) sdl.Rect {
	r.X += s.DX
	r.Y += s.DY
	return r
}

// Item rendering metrics.
const (
	tabIconSize        int32 = 24
	tabIconTitleSpace  int32 = 8
	tabIndicatorHeight int32 = 3
	tabBadgeHeight     int32 = 16
	defaultBarHeight   int32 = 48
)

// TabBar is a horizontal bar of tab items with a single selection.
//
// The bar owns the item sequence and the selection, resolves an effective
// layout style from the preferred style and the current bounds, and computes
// per-item geometry on demand. All methods must be called from the UI thread.
//
// Selecting an item that is not in the current sequence returns
// ErrItemNotInBar and leaves the bar's state untouched. Geometry queries for
// absent items return zero values rather than errors; an item disappearing
// between a mutation and a query is routine during live UI updates.
type TabBar struct {
	// OnSchemeChanged, when non-nil, is invoked synchronously after
	// ApplyColorScheme. Owned by the bar; cleared when the bar is released.
	OnSchemeChanged func(bar *TabBar)

	items        []*TabItem
	selectedItem *TabItem

	preferredStyle    LayoutStyle
	minItemWidth      int32
	itemContentInsets *EdgeInsets // nil = per-item defaults by content kind
	contentPadding    [numLayoutStyles]EdgeInsets
	mirrored          bool

	imageTintColors [numVisualStates]*sdl.Color
	titleColors     [numVisualStates]*sdl.Color
	titleFonts      [numVisualStates]*FontRef

	scheme   ColorScheme
	delegate TabBarDelegate

	bounds        sdl.Rect
	contentOffset int32

	anim       *selectionAnimation
	offsetAnim *offsetAnimation
	repeat     internal.HorizontalRepeat

	measureText func(text string, font FontRef) int32
	now         func() time.Time
}

// NewTabBar creates an empty tab bar with the default color scheme, a Fixed
// preferred layout style, and the standard per-style content padding.
func NewTabBar() *TabBar {
	b := &TabBar{
		preferredStyle: LayoutStyleFixed,
		minItemWidth:   constants.DefaultMinItemWidth,
		scheme:         GetDefaultColorScheme(),
		bounds:         sdl.Rect{W: 0, H: defaultBarHeight},
		repeat:         internal.NewHorizontalRepeat(),
		measureText: func(text string, font FontRef) int32 {
			return internal.MeasureText(text, font.Path, font.Size)
		},
		now: time.Now,
	}

	// Scrollable styles get extra leading padding so the first tab does not
	// hug the screen edge.
	scrollablePadding := EdgeInsets{Leading: constants.DefaultScrollableLeadingPadding}
	b.contentPadding[LayoutStyleScrollable] = scrollablePadding
	b.contentPadding[LayoutStyleScrollableCentered] = scrollablePadding

	return b
}

// SetDelegate sets the delegate consulted for user-driven selection changes.
func (b *TabBar) SetDelegate(delegate TabBarDelegate) {
	b.delegate = delegate
}

// Items returns a copy of the current item sequence.
func (b *TabBar) Items() []*TabItem {
	return append([]*TabItem(nil), b.items...)
}

// SetItems replaces the item sequence. Order is preserved and duplicates are
// permitted. If the currently selected item is not present in the new
// sequence the selection is cleared.
func (b *TabBar) SetItems(items []*TabItem) {
	b.items = append([]*TabItem(nil), items...)

	if b.selectedItem != nil && b.indexOfItem(b.selectedItem) < 0 {
		b.selectedItem = nil
		b.anim = nil
	}

	b.contentOffset = clampContentOffset(b.contentOffset, b.bounds.W, b.contentWidth())
	b.recenterSelected(false)
}

// SelectedItem returns the currently selected item, or nil.
func (b *TabBar) SelectedItem() *TabItem {
	return b.selectedItem
}

// SetSelectedItem selects item, or clears the selection when item is nil.
//
// The item must be present in the current sequence; otherwise
// ErrItemNotInBar is returned and the selection is unchanged. When animated,
// the transition runs over SelectionChangeAnimationDuration using
// SelectionChangeAnimationTimingFunction. A call made while a previous
// animated change is still in flight starts the new transition from the
// current interpolated geometry.
func (b *TabBar) SetSelectedItem(item *TabItem, animated bool) error {
	if item == nil {
		b.selectedItem = nil
		b.anim = nil
		return nil
	}

	if b.indexOfItem(item) < 0 {
		internal.GetInternalLogger().Warn("Selected item is not in the tab bar's items",
			"title", item.Title)
		return ErrItemNotInBar
	}

	if item == b.selectedItem {
		b.recenterSelected(animated)
		return nil
	}

	now := b.now()
	from := b.indicatorFrameAt(now)
	b.selectedItem = item
	to := b.layoutFrameForItem(item)

	if animated {
		b.anim = &selectionAnimation{start: now, from: from, to: to}
	} else {
		b.anim = nil
	}

	b.recenterSelected(animated)
	return nil
}

// PreferredLayoutStyle returns the caller's preferred layout style.
func (b *TabBar) PreferredLayoutStyle() LayoutStyle {
	return b.preferredStyle
}

// SetPreferredLayoutStyle sets the preferred layout style. The effective
// style is re-resolved on the next query.
func (b *TabBar) SetPreferredLayoutStyle(style LayoutStyle) {
	b.preferredStyle = style
	b.recenterSelected(false)
}

// EffectiveLayoutStyle returns the layout style actually rendered for the
// current preferred style, bounds, and items. It is recomputed on every call,
// never cached.
func (b *TabBar) EffectiveLayoutStyle() LayoutStyle {
	available := b.bounds.W - b.contentPadding[b.normalizedPreferred()].Horizontal()
	if available < 0 {
		available = 0
	}
	return ResolveLayoutStyle(b.preferredStyle, available, b.itemWidths())
}

// Bounds returns the bar's frame in window coordinates.
func (b *TabBar) Bounds() sdl.Rect {
	return b.bounds
}

// SetBounds sets the bar's frame. Layout is re-resolved on the next query and
// the selected item is re-centered for centered scrollable styles.
func (b *TabBar) SetBounds(bounds sdl.Rect) {
	b.bounds = bounds
	b.contentOffset = clampContentOffset(b.contentOffset, b.bounds.W, b.contentWidth())
	b.recenterSelected(false)
}

// MirroredLayout reports whether items are laid out right-to-left.
func (b *TabBar) MirroredLayout() bool {
	return b.mirrored
}

// SetMirroredLayout switches between left-to-right and right-to-left item
// ordering. Leading and trailing insets flip accordingly.
func (b *TabBar) SetMirroredLayout(mirrored bool) {
	b.mirrored = mirrored
}

// MinItemWidth returns the minimum width for each item. Defaults to 90.
func (b *TabBar) MinItemWidth() int32 {
	return b.minItemWidth
}

// SetMinItemWidth sets the minimum width for each item.
func (b *TabBar) SetMinItemWidth(width int32) {
	b.minItemWidth = width
}

// ItemContentInsets returns the insets applied around each item's content.
// When not overridden the default depends on the item: {8,16,8,16} for
// text-only items and {12,16,12,16} for items with an icon.
func (b *TabBar) ItemContentInsets(item *TabItem) EdgeInsets {
	if b.itemContentInsets != nil {
		return *b.itemContentInsets
	}
	if item != nil && item.hasIcon() {
		return EdgeInsets{Top: 12, Leading: 16, Bottom: 12, Trailing: 16}
	}
	return EdgeInsets{Top: 8, Leading: 16, Bottom: 8, Trailing: 16}
}

// SetItemContentInsets overrides the content insets for all items.
func (b *TabBar) SetItemContentInsets(insets EdgeInsets) {
	b.itemContentInsets = &insets
}

// SetImageTintColor sets the icon tint for a visual state. A nil color
// removes the override. States other than Normal and Selected are ignored.
func (b *TabBar) SetImageTintColor(color *sdl.Color, state VisualState) {
	if !validState(state) {
		internal.GetInternalLogger().Warn("Unsupported visual state for image tint", "state", int(state))
		return
	}
	b.imageTintColors[state] = copyColor(color)
}

// ImageTintColorForState returns the icon tint for a visual state, applying
// the Selected→Normal→default fallback chain at call time.
func (b *TabBar) ImageTintColorForState(state VisualState) sdl.Color {
	if c := lookupState(b.imageTintColors, state); c != nil {
		return *c
	}
	return b.scheme.OnSurfaceColor
}

// SetTitleColor sets the title color for a visual state. A nil color removes
// the override. States other than Normal and Selected are ignored.
func (b *TabBar) SetTitleColor(color *sdl.Color, state VisualState) {
	if !validState(state) {
		internal.GetInternalLogger().Warn("Unsupported visual state for title color", "state", int(state))
		return
	}
	b.titleColors[state] = copyColor(color)
}

// TitleColorForState returns the title color for a visual state, applying
// the Selected→Normal→default fallback chain at call time. Changing the
// Normal override later retroactively affects states without their own.
func (b *TabBar) TitleColorForState(state VisualState) sdl.Color {
	if c := lookupState(b.titleColors, state); c != nil {
		return *c
	}
	return b.scheme.OnSurfaceColor
}

// SetTitleFont sets the title font for a visual state. A nil font removes
// the override. States other than Normal and Selected are ignored.
func (b *TabBar) SetTitleFont(font *FontRef, state VisualState) {
	if !validState(state) {
		internal.GetInternalLogger().Warn("Unsupported visual state for title font", "state", int(state))
		return
	}
	if font == nil {
		b.titleFonts[state] = nil
		return
	}
	f := *font
	b.titleFonts[state] = &f
}

// TitleFontForState returns the title font for a visual state with the same
// fallback chain as the color tables; the built-in default is the theme font.
func (b *TabBar) TitleFontForState(state VisualState) FontRef {
	if f := lookupState(b.titleFonts, state); f != nil {
		return *f
	}
	theme := internal.GetTheme()
	return FontRef{Path: theme.FontPath, Size: theme.FontSize}
}

// SetContentPadding sets the content padding used when the given layout style
// is in effect. Each style's padding is stored independently.
func (b *TabBar) SetContentPadding(padding EdgeInsets, style LayoutStyle) {
	if style < 0 || style >= numLayoutStyles {
		internal.GetInternalLogger().Warn("Unknown layout style for content padding", "style", int(style))
		return
	}
	b.contentPadding[style] = padding
}

// ContentPaddingForLayoutStyle returns the content padding stored for a
// layout style, whether or not that style is currently in effect.
func (b *TabBar) ContentPaddingForLayoutStyle(style LayoutStyle) EdgeInsets {
	if style < 0 || style >= numLayoutStyles {
		return EdgeInsets{}
	}
	return b.contentPadding[style]
}

// SelectionChangeAnimationDuration is the total duration of all animations
// that run during a selection change. Fixed for the library; use it to run
// caller-side animations in lockstep.
func (b *TabBar) SelectionChangeAnimationDuration() time.Duration {
	return constants.SelectionChangeAnimationDuration
}

// SelectionChangeAnimationTimingFunction is the easing curve used for
// animated selection changes. Fixed for the library.
func (b *TabBar) SelectionChangeAnimationTimingFunction() TimingFunction {
	return selectionTimingFunction
}

// ApplyColorScheme adopts a color scheme for the bar's default colors and
// invokes OnSchemeChanged. Per-state overrides are kept as-is.
func (b *TabBar) ApplyColorScheme(scheme ColorScheme) {
	b.scheme = scheme
	if b.OnSchemeChanged != nil {
		b.OnSchemeChanged(b)
	}
}

// RectForItem returns the frame of the view representing item, converted by
// space when non-nil. Returns the zero rectangle when the item is not in the
// bar; absence is an expected outcome during live mutation, not an error.
func (b *TabBar) RectForItem(item *TabItem, space CoordinateSpace) sdl.Rect {
	idx := b.indexOfItem(item)
	if idx < 0 {
		return sdl.Rect{}
	}

	rect := b.viewportFrame(b.layoutFrames()[idx])
	if space != nil {
		rect = space.ConvertRect(rect)
	}
	return rect
}

// ScrollToItem scrolls so that item is centered within the bar, clamped to
// the content extent. No-op when the item is absent or the effective style
// does not scroll.
func (b *TabBar) ScrollToItem(item *TabItem, animated bool) {
	idx := b.indexOfItem(item)
	if idx < 0 {
		return
	}
	if !b.EffectiveLayoutStyle().IsScrollable() {
		return
	}

	frame := b.layoutFrames()[idx]
	b.setContentOffset(centeredContentOffset(frame, b.bounds.W, b.contentWidth()), animated)
}

// ContentOffset returns the bar's settled horizontal scroll offset.
func (b *TabBar) ContentOffset() int32 {
	return b.contentOffset
}

// HandleInput processes a virtual button press or release. Left/Right step
// the selection through the items; held buttons repeat via Update. Returns
// true when the button was consumed.
func (b *TabBar) HandleInput(button constants.VirtualButton, pressed bool) bool {
	if !b.repeat.SetHeld(button, pressed) {
		return false
	}
	if !pressed {
		return true
	}

	switch button {
	case constants.VirtualButtonLeft:
		b.stepSelection(internal.DirectionLeft)
	case constants.VirtualButtonRight:
		b.stepSelection(internal.DirectionRight)
	}
	return true
}

// Update advances held-button repeats and retires finished animations.
// Call once per frame.
func (b *TabBar) Update() {
	if dir := b.repeat.Update(); dir != internal.DirectionNone {
		b.stepSelection(dir)
	}

	now := b.now()
	if b.anim != nil && b.anim.done(now) {
		b.anim = nil
	}
	if b.offsetAnim != nil && b.offsetAnim.done(now) {
		b.offsetAnim = nil
	}
}

// stepSelection moves the user-driven selection one item left or right,
// consulting the delegate.
func (b *TabBar) stepSelection(dir internal.Direction) {
	if len(b.items) == 0 {
		return
	}

	step := 1
	if dir == internal.DirectionLeft {
		step = -1
	}
	if b.mirrored {
		step = -step
	}

	idx := b.indexOfItem(b.selectedItem)
	next := idx + step
	if idx < 0 {
		next = 0
	}
	if next < 0 || next >= len(b.items) {
		return
	}

	item := b.items[next]
	if b.delegate != nil && !b.delegate.ShouldSelectItem(b, item) {
		return
	}
	if err := b.SetSelectedItem(item, true); err != nil {
		return
	}
	if b.delegate != nil {
		b.delegate.DidSelectItem(b, item)
	}
}

func (b *TabBar) indexOfItem(item *TabItem) int {
	if item == nil {
		return -1
	}
	for i, candidate := range b.items {
		if candidate == item {
			return i
		}
	}
	return -1
}

func (b *TabBar) normalizedPreferred() LayoutStyle {
	if b.preferredStyle < 0 || b.preferredStyle >= numLayoutStyles {
		return LayoutStyleFixed
	}
	return b.preferredStyle
}

// itemWidths returns each item's layout width: measured content width plus
// content insets, floored at the bar's minimum item width.
func (b *TabBar) itemWidths() []int32 {
	if len(b.items) == 0 {
		return nil
	}

	font := b.TitleFontForState(VisualStateNormal)
	widths := make([]int32, len(b.items))
	for i, item := range b.items {
		content := b.measureText(item.Title, font)
		if item.hasIcon() {
			content += tabIconSize
			if item.Title != "" {
				content += tabIconTitleSpace
			}
		}
		w := content + b.ItemContentInsets(item).Horizontal()
		if w < b.minItemWidth {
			w = b.minItemWidth
		}
		widths[i] = w
	}
	return widths
}

// layoutFrames returns one frame per item in layout coordinates: content
// coordinates (including leading padding) for scrollable styles, bar-local
// coordinates for fixed styles.
func (b *TabBar) layoutFrames() []sdl.Rect {
	style := b.EffectiveLayoutStyle()
	padding := b.contentPadding[style]
	widths := b.itemWidths()

	available := b.bounds.W - padding.Horizontal()
	if available < 0 {
		available = 0
	}

	frames := computeItemFrames(style, available, b.bounds.H-padding.Vertical(), widths, b.mirrored)
	for i := range frames {
		frames[i].X += padding.Leading
		frames[i].Y += padding.Top
	}
	return frames
}

// layoutFrameForItem returns the item's layout frame, or the zero rect.
func (b *TabBar) layoutFrameForItem(item *TabItem) sdl.Rect {
	idx := b.indexOfItem(item)
	if idx < 0 {
		return sdl.Rect{}
	}
	return b.layoutFrames()[idx]
}

// viewportFrame maps a layout frame into bar-local coordinates by applying
// the settled scroll offset for scrollable styles.
func (b *TabBar) viewportFrame(frame sdl.Rect) sdl.Rect {
	if b.EffectiveLayoutStyle().IsScrollable() {
		frame.X -= b.contentOffset
	}
	return frame
}

// contentWidth returns the scrollable content extent for the effective
// style, or the bar width when the style does not scroll.
func (b *TabBar) contentWidth() int32 {
	style := b.EffectiveLayoutStyle()
	if !style.IsScrollable() {
		return b.bounds.W
	}
	return b.contentPadding[style].Horizontal() + sumWidths(b.itemWidths())
}

// recenterSelected moves the viewport so the selected item is centered, for
// the centered scrollable style only.
func (b *TabBar) recenterSelected(animated bool) {
	if b.selectedItem == nil {
		return
	}
	if b.EffectiveLayoutStyle() != LayoutStyleScrollableCentered {
		return
	}

	frame := b.layoutFrameForItem(b.selectedItem)
	b.setContentOffset(centeredContentOffset(frame, b.bounds.W, b.contentWidth()), animated)
}

func (b *TabBar) setContentOffset(target int32, animated bool) {
	if target == b.contentOffset {
		return
	}
	if animated {
		now := b.now()
		b.offsetAnim = &offsetAnimation{start: now, from: b.renderOffsetAt(now), to: target}
	} else {
		b.offsetAnim = nil
	}
	b.contentOffset = target
}

// renderOffsetAt samples the scroll offset at now, mid-animation if one is
// in flight.
func (b *TabBar) renderOffsetAt(now time.Time) int32 {
	if b.offsetAnim != nil && !b.offsetAnim.done(now) {
		return b.offsetAnim.valueAt(now, selectionTimingFunction)
	}
	return b.contentOffset
}

// indicatorFrameAt samples the selection indicator's layout frame at now,
// mid-animation if one is in flight. Zero rect when nothing is selected.
func (b *TabBar) indicatorFrameAt(now time.Time) sdl.Rect {
	if b.anim != nil && !b.anim.done(now) {
		return b.anim.frameAt(now, selectionTimingFunction)
	}
	if b.selectedItem == nil {
		return sdl.Rect{}
	}
	return b.layoutFrameForItem(b.selectedItem)
}
