// Package chiosco provides theming support for the Chiosco kiosk platform,
// the self-service checkout terminals muffuletta was built for.
package chiosco

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dpavese/muffuletta/pkg/muffuletta/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// InitChioscoTheme creates a theme with Chiosco's default colors and the
// specified font.
func InitChioscoTheme(fontPath string) internal.Theme {
	return internal.Theme{
		AccentColor:          internal.HexToColor(0x00695C),
		TextColor:            internal.HexToColor(0x212121),
		HighlightedTextColor: internal.HexToColor(0xFFFFFF),
		VisitedColor:         internal.HexToColor(0x26A69A),
		DisabledColor:        internal.HexToColor(0xBDBDBD),
		HintColor:            internal.HexToColor(0x616161),
		BackgroundColor:      internal.HexToColor(0xFAFAFA),
		PanelColor:           internal.HexToColor(0xFFFFFF),
		FontPath:             fontPath,
	}
}

// themeFile is the on-disk TOML shape of a Chiosco theme. Colors are
// 0xRRGGBB integers; missing keys keep the default theme's value.
type themeFile struct {
	AccentColor          *uint32 `toml:"accent_color"`
	TextColor            *uint32 `toml:"text_color"`
	HighlightedTextColor *uint32 `toml:"highlighted_text_color"`
	VisitedColor         *uint32 `toml:"visited_color"`
	DisabledColor        *uint32 `toml:"disabled_color"`
	HintColor            *uint32 `toml:"hint_color"`
	BackgroundColor      *uint32 `toml:"background_color"`
	PanelColor           *uint32 `toml:"panel_color"`
	FontPath             string  `toml:"font_path"`
	IconFontPath         string  `toml:"icon_font_path"`
	BackgroundImagePath  string  `toml:"background_image_path"`
}

// LoadThemeFile reads a Chiosco theme TOML file and overlays it on the
// default theme. The default font path is used when the file omits one.
func LoadThemeFile(path string, defaultFontPath string) (internal.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return internal.Theme{}, fmt.Errorf("read theme file: %w", err)
	}

	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return internal.Theme{}, fmt.Errorf("parse theme file %s: %w", path, err)
	}

	theme := InitChioscoTheme(defaultFontPath)
	overlayColor(&theme.AccentColor, tf.AccentColor)
	overlayColor(&theme.TextColor, tf.TextColor)
	overlayColor(&theme.HighlightedTextColor, tf.HighlightedTextColor)
	overlayColor(&theme.VisitedColor, tf.VisitedColor)
	overlayColor(&theme.DisabledColor, tf.DisabledColor)
	overlayColor(&theme.HintColor, tf.HintColor)
	overlayColor(&theme.BackgroundColor, tf.BackgroundColor)
	overlayColor(&theme.PanelColor, tf.PanelColor)
	if tf.FontPath != "" {
		theme.FontPath = tf.FontPath
	}
	if tf.IconFontPath != "" {
		theme.IconFontPath = tf.IconFontPath
	}
	if tf.BackgroundImagePath != "" {
		theme.BackgroundImagePath = tf.BackgroundImagePath
	}
	return theme, nil
}

func overlayColor(dst *sdl.Color, hex *uint32) {
	if hex != nil {
		*dst = internal.HexToColor(*hex)
	}
}
