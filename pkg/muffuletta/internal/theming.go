package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the UI toolkit. Colors are typically
// loaded from a kiosk platform's theme file.
type Theme struct {
	AccentColor          sdl.Color // Active marker background, control pills
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on the active marker
	VisitedColor         sdl.Color // Visited marker background
	DisabledColor        sdl.Color // Disabled marker background and text
	HintColor            sdl.Color // Help text, footer captions
	BackgroundColor      sdl.Color // Screen background color
	PanelColor           sdl.Color // Step panel background
	FontPath             string    // Path to the primary UI font
	IconFontPath         string    // Path to the icon glyph font (optional)
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the toolkit.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
