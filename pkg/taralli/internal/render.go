package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// SetDrawColor applies an sdl.Color to the renderer's draw color.
func SetDrawColor(renderer *sdl.Renderer, c sdl.Color) {
	_ = renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// DrawText renders text centered on the given point. The texture is created
// and destroyed per call; widgets cache whole-frame output elsewhere when it
// matters. No-op when the font cannot be opened or the text is empty.
func DrawText(renderer *sdl.Renderer, text, fontPath string, size int32, color sdl.Color, center sdl.Point) {
	if text == "" || fontPath == "" {
		return
	}

	font, err := GetFont(fontPath, size)
	if err != nil {
		GetInternalLogger().Warn("Failed to open font for text", "path", fontPath, "error", err)
		return
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	dst := sdl.Rect{
		X: center.X - surface.W/2,
		Y: center.Y - surface.H/2,
		W: surface.W,
		H: surface.H,
	}
	_ = renderer.Copy(texture, nil, &dst)
}

// FillCircle draws a filled circle as a stack of horizontal spans.
func FillCircle(renderer *sdl.Renderer, cx, cy, radius int32, color sdl.Color) {
	SetDrawColor(renderer, color)
	for dy := -radius; dy <= radius; dy++ {
		dx := int32(0)
		for dx*dx+dy*dy <= radius*radius {
			dx++
		}
		dx--
		_ = renderer.DrawLine(cx-dx, cy+dy, cx+dx, cy+dy)
	}
}
