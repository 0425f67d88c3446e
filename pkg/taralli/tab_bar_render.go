package taralli

import (
	"github.com/nikit6000/taralli/pkg/taralli/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Render draws the bar into its bounds. Animated selection changes and scroll
// transitions are sampled at the current time; call Update once per frame to
// retire finished animations and process held input.
func (b *TabBar) Render(renderer *sdl.Renderer) {
	theme := internal.GetTheme()
	now := b.now()

	internal.SetDrawColor(renderer, theme.BarColor)
	_ = renderer.FillRect(&b.bounds)

	var offset int32
	if b.EffectiveLayoutStyle().IsScrollable() {
		offset = b.renderOffsetAt(now)
	}

	frames := b.layoutFrames()
	for i, item := range b.items {
		frame := frames[i]
		frame.X += b.bounds.X - offset
		frame.Y += b.bounds.Y
		if frame.X+frame.W < b.bounds.X || frame.X > b.bounds.X+b.bounds.W {
			continue
		}
		b.renderItem(renderer, item, frame)
	}

	if ind := b.indicatorFrameAt(now); ind.W > 0 {
		ind.X += b.bounds.X - offset
		bar := sdl.Rect{
			X: ind.X,
			Y: b.bounds.Y + b.bounds.H - tabIndicatorHeight,
			W: ind.W,
			H: tabIndicatorHeight,
		}
		internal.SetDrawColor(renderer, b.scheme.PrimaryColor)
		_ = renderer.FillRect(&bar)
	}

	if theme.DividerColor.A > 0 {
		divider := sdl.Rect{X: b.bounds.X, Y: b.bounds.Y + b.bounds.H - 1, W: b.bounds.W, H: 1}
		internal.SetDrawColor(renderer, theme.DividerColor)
		_ = renderer.FillRect(&divider)
	}
}

func (b *TabBar) renderItem(renderer *sdl.Renderer, item *TabItem, frame sdl.Rect) {
	state := VisualStateNormal
	if item == b.selectedItem {
		state = VisualStateSelected
	}

	font := b.TitleFontForState(state)
	titleColor := b.TitleColorForState(state)
	centerX := frame.X + frame.W/2

	var iconRect sdl.Rect
	if item.hasIcon() {
		iconRect = sdl.Rect{X: centerX - tabIconSize/2, Y: frame.Y + b.ItemContentInsets(item).Top, W: tabIconSize, H: tabIconSize}
		b.renderIcon(renderer, item, iconRect, state)
	}

	if item.Title != "" {
		titleY := frame.Y + frame.H/2
		if item.hasIcon() {
			titleY = iconRect.Y + iconRect.H + tabIconTitleSpace
		}
		internal.DrawText(renderer, item.Title, font.Path, font.Size, titleColor,
			sdl.Point{X: centerX, Y: titleY})
	}

	if item.BadgeValue != "" {
		b.renderBadge(renderer, item, frame, iconRect)
	}
}

func (b *TabBar) renderIcon(renderer *sdl.Renderer, item *TabItem, rect sdl.Rect, state VisualState) {
	window := internal.GetWindow()
	if window == nil {
		return
	}
	texture := window.IconTexture(item.IconPath, rect.W, rect.H)
	if texture == nil {
		return
	}

	tint := b.ImageTintColorForState(state)
	_ = texture.SetColorMod(tint.R, tint.G, tint.B)
	_ = renderer.Copy(texture, nil, &rect)
}

func (b *TabBar) renderBadge(renderer *sdl.Renderer, item *TabItem, frame, iconRect sdl.Rect) {
	color := b.scheme.ErrorColor
	if item.BadgeColor != nil {
		color = *item.BadgeColor
	}

	// Anchor at the icon's top-trailing corner when there is an icon,
	// otherwise at the frame's top-trailing corner.
	anchorX := frame.X + frame.W - tabBadgeHeight
	anchorY := frame.Y + 4
	if iconRect.W > 0 {
		anchorX = iconRect.X + iconRect.W - tabBadgeHeight/2
		anchorY = iconRect.Y - tabBadgeHeight/4
	}

	badge := sdl.Rect{X: anchorX, Y: anchorY, W: tabBadgeHeight, H: tabBadgeHeight}
	internal.SetDrawColor(renderer, color)
	_ = renderer.FillRect(&badge)

	font := b.TitleFontForState(VisualStateNormal)
	internal.DrawText(renderer, item.BadgeValue, font.Path, tabBadgeHeight-6, b.scheme.OnPrimaryColor,
		sdl.Point{X: badge.X + badge.W/2, Y: badge.Y + badge.H/2})
}
