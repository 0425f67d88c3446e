package internal

import (
	"os"

	"github.com/nikit6000/taralli/pkg/taralli/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

func Init(title string, showBackground bool, winOpts WindowOptions) {
	if err := sdl.Init(sdl.INIT_VIDEO | img.INIT_PNG | img.INIT_JPG |
		sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	window = initWindow(title, showBackground, winOpts)

	initFonts()
}

// GetWindow returns the active window wrapper. Nil before Init.
func GetWindow() *Window {
	return window
}

func SDLCleanup() {
	window.closeWindow()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
