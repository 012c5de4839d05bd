package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes holds point sizes for the font set, at the 1280px reference width.
type FontSizes struct {
	Small      int
	Medium     int
	Large      int
	ExtraLarge int
	Icon       int
}

var DefaultFontSizes = FontSizes{
	Small:      24,
	Medium:     28,
	Large:      36,
	ExtraLarge: 44,
	Icon:       28,
}

// FontHolder carries the loaded font set. Fonts are loaded from the active
// theme's font paths during Init.
type FontHolder struct {
	SmallFont      *ttf.Font
	MediumFont     *ttf.Font
	LargeFont      *ttf.Font
	ExtraLargeFont *ttf.Font
	IconFont       *ttf.Font
}

var Fonts FontHolder

func initFonts(sizes FontSizes) {
	theme := GetTheme()
	if theme.FontPath == "" {
		GetInternalLogger().Error("No font path set in theme; text rendering disabled")
		return
	}

	open := func(size int) *ttf.Font {
		font, err := ttf.OpenFont(theme.FontPath, size)
		if err != nil {
			GetInternalLogger().Error("Failed to open font", "path", theme.FontPath, "size", size, "error", err)
			return nil
		}
		return font
	}

	Fonts.SmallFont = open(sizes.Small)
	Fonts.MediumFont = open(sizes.Medium)
	Fonts.LargeFont = open(sizes.Large)
	Fonts.ExtraLargeFont = open(sizes.ExtraLarge)

	if theme.IconFontPath != "" {
		iconFont, err := ttf.OpenFont(theme.IconFontPath, sizes.Icon)
		if err != nil {
			GetInternalLogger().Warn("Failed to open icon font", "path", theme.IconFontPath, "error", err)
		} else {
			Fonts.IconFont = iconFont
		}
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{
		Fonts.SmallFont, Fonts.MediumFont, Fonts.LargeFont, Fonts.ExtraLargeFont, Fonts.IconFont,
	} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontHolder{}
}
