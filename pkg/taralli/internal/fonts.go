package internal

import (
	"fmt"
	"unicode"

	"github.com/veandco/go-sdl2/ttf"
)

type fontKey struct {
	path string
	size int32
}

var openFonts = map[fontKey]*ttf.Font{}

func initFonts() {
	theme := GetTheme()
	if theme.FontPath == "" {
		return
	}
	// Warm the default size so first render doesn't hit the disk.
	if _, err := GetFont(theme.FontPath, theme.FontSize); err != nil {
		GetInternalLogger().Warn("Failed to preload theme font", "path", theme.FontPath, "error", err)
	}
}

// GetFont returns an open font for the given path and size, opening and
// caching it on first use. Requires ttf.Init to have been called.
func GetFont(path string, size int32) (*ttf.Font, error) {
	key := fontKey{path: path, size: size}
	if f, ok := openFonts[key]; ok {
		return f, nil
	}

	f, err := ttf.OpenFont(path, int(size))
	if err != nil {
		return nil, fmt.Errorf("open font %s@%d: %w", path, size, err)
	}
	openFonts[key] = f
	return f, nil
}

// MeasureText returns the pixel width of text rendered with the font at path
// and size. Falls back to ApproximateTextWidth when the font cannot be opened.
func MeasureText(text, path string, size int32) int32 {
	if path != "" {
		if f, err := GetFont(path, size); err == nil {
			if w, _, err := f.SizeUTF8(text); err == nil {
				return int32(w)
			}
		}
	}
	return ApproximateTextWidth(text, size)
}

// ApproximateTextWidth estimates text width without an open font. Wide
// (CJK and fullwidth) runes count as a full em, everything else as ~0.55em.
// Used when layout is computed before SDL_ttf is available.
func ApproximateTextWidth(text string, size int32) int32 {
	var wide, narrow int32
	for _, r := range text {
		if unicode.In(r, unicode.Han, unicode.Hangul, unicode.Hiragana, unicode.Katakana) {
			wide++
		} else {
			narrow++
		}
	}
	return wide*size + narrow*size*55/100
}

func closeFonts() {
	for key, f := range openFonts {
		f.Close()
		delete(openFonts, key)
	}
}
