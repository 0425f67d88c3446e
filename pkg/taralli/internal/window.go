package internal

import (
	"os"
	"strconv"

	"github.com/nikit6000/taralli/pkg/taralli/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer with additional state for the
// widget library.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	IconCache         *TextureCache
}

func initWindow(title string, displayBackground bool, winOpts WindowOptions) *Window {
	displayIndex := 0
	displayMode, err := sdl.GetCurrentDisplayMode(displayIndex)
	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, displayBackground, winOpts)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool, winOpts WindowOptions) *Window {
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		winOpts.Borderless = false

		x, y = int32(50), int32(50)
		width = devDimension(constants.WindowWidthEnvVar, 1024)
		height = devDimension(constants.WindowHeightEnvVar, 768)
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			panic(err)
		}
	}

	w := &Window{
		Window:            sdlWindow,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		IconCache:         NewTextureCache(),
	}

	if displayBackground {
		w.loadBackground()
	}

	return w
}

func devDimension(envVar string, fallback int32) int32 {
	v := os.Getenv(envVar)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		GetInternalLogger().Warn("Invalid window dimension; using default", "var", envVar, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	texture, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Failed to load background image", "path", path, "error", err)
		return
	}
	w.Background = texture
}

// Size returns the current window dimensions.
func (w *Window) Size() (int32, int32) {
	return w.Window.GetSize()
}

func (w *Window) closeWindow() {
	if w == nil {
		return
	}
	if w.IconCache != nil {
		w.IconCache.Destroy()
	}
	if w.Background != nil {
		w.Background.Destroy()
	}
	if w.Renderer != nil {
		w.Renderer.Destroy()
	}
	if w.Window != nil {
		w.Window.Destroy()
	}
}
