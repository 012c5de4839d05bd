package internal

import (
	"os"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

func Init(title string, showBackground bool, winOpts WindowOptions, hbc HardwareButtonConfig) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO |
		img.INIT_PNG | img.INIT_JPG |
		sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	InitInputProcessor()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	window = initWindow(title, showBackground, winOpts)

	initFonts(DefaultFontSizes)

	if hbc.DevicePath != "" {
		window.HardwareButton = hbc
		window.initHardwareButtonHandling(hbc)
	}
}

func SDLCleanup() {
	window.closeWindow()
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
