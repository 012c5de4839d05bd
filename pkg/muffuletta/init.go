// Package muffuletta provides a UI toolkit for building step-driven checkout
// flows on embedded Linux kiosk terminals, particularly self-service units
// running the Chiosco platform.
//
// The package handles SDL initialization, input processing, theming, and
// provides the StepFlow widget: a guarded multi-step navigation surface with
// interceptors, step markers, and per-step content panels.
package muffuletta

import (
	"log/slog"
	"os"
	"time"

	"github.com/dpavese/muffuletta/pkg/muffuletta/constants"
	"github.com/dpavese/muffuletta/pkg/muffuletta/internal"
	"github.com/dpavese/muffuletta/pkg/muffuletta/platform/chiosco"
	"github.com/holoplot/go-evdev"
)

// DefaultChioscoFontPath is where Chiosco terminals install the UI font.
const DefaultChioscoFontPath = "/opt/chiosco/fonts/Chiosco.ttf"

// BackButtonOptions configures the kiosk's physical back button, which is
// wired to an input device rather than the touch controller.
type BackButtonOptions struct {
	DevicePath   string        // Input device path (e.g. /dev/input/event1)
	ButtonCode   uint16        // Key code; defaults to KEY_BACK when zero
	CoolDownTime time.Duration // Minimum time between accepted presses
}

// Options configures the muffuletta UI toolkit initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color overriding the theme
	ThemeFile            string                 // Path to a Chiosco theme TOML file
	FontPath             string                 // UI font path; defaults to the Chiosco system font
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	BackButton           BackButtonOptions      // Physical back button; ignored when DevicePath is empty
}

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before any other muffuletta functions.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	fontPath := options.FontPath
	if fontPath == "" {
		fontPath = DefaultChioscoFontPath
	}

	if options.ThemeFile != "" {
		theme, err := chiosco.LoadThemeFile(options.ThemeFile, fontPath)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load theme file, using defaults",
				"path", options.ThemeFile, "error", err)
			theme = chiosco.InitChioscoTheme(fontPath)
		}
		internal.SetTheme(theme)
	} else {
		internal.SetTheme(chiosco.InitChioscoTheme(fontPath))
	}

	if options.PrimaryThemeColorHex != 0 {
		theme := internal.GetTheme()
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	hbc := internal.HardwareButtonConfig{}
	if options.BackButton.DevicePath != "" {
		code := evdev.EvCode(options.BackButton.ButtonCode)
		if code == 0 {
			code = evdev.KEY_BACK
		}
		hbc = internal.HardwareButtonConfig{
			ButtonCode:   code,
			DevicePath:   options.BackButton.DevicePath,
			CoolDownTime: options.BackButton.CoolDownTime,
			OnPress:      internal.SignalHardwareBack,
		}
	}

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, hbc)
}

// Close releases all SDL resources and shuts down the UI toolkit.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
