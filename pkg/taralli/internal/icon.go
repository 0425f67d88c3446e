package internal

import (
	"fmt"
	"image"
	"os"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders the SVG file at path into an RGBA image of the given
// pixel size.
func RasterizeSVG(path string, w, h int32) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon %s: %w", path, err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse icon %s: %w", path, err)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	scanner := rasterx.NewScannerGV(int(w), int(h), rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(int(w), int(h), scanner)
	icon.Draw(dasher, 1.0)

	return rgba, nil
}

// IconTexture returns a texture for the icon, rasterizing and caching it on
// first use. Returns nil when the icon cannot be loaded; callers render
// text-only in that case.
func (w *Window) IconTexture(path string, width, height int32) *sdl.Texture {
	key := IconKey(path, width, height)
	if t := w.IconCache.Get(key); t != nil {
		return t
	}

	rgba, err := RasterizeSVG(path, width, height)
	if err != nil {
		GetInternalLogger().Warn("Failed to rasterize icon", "path", path, "error", err)
		return nil
	}

	texture, err := textureFromRGBA(w.Renderer, rgba)
	if err != nil {
		GetInternalLogger().Warn("Failed to upload icon texture", "path", path, "error", err)
		return nil
	}

	w.IconCache.Set(key, texture)
	return texture
}

func textureFromRGBA(renderer *sdl.Renderer, rgba *image.RGBA) (*sdl.Texture, error) {
	bounds := rgba.Bounds()
	w, h := int32(bounds.Dx()), int32(bounds.Dy())

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]), w, h, 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	if err := texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		return nil, err
	}
	return texture, nil
}
