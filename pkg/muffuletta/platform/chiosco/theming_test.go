package chiosco

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitChioscoTheme(t *testing.T) {
	theme := InitChioscoTheme("/opt/chiosco/fonts/Chiosco.ttf")

	if theme.FontPath != "/opt/chiosco/fonts/Chiosco.ttf" {
		t.Errorf("FontPath = %q", theme.FontPath)
	}
	if theme.AccentColor.A != 255 {
		t.Error("accent color should be opaque")
	}
	if theme.AccentColor == theme.DisabledColor {
		t.Error("accent and disabled colors should differ")
	}
}

func TestLoadThemeFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	content := "accent_color = 0xFF0000\nfont_path = \"/custom/font.ttf\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadThemeFile(path, "/default/font.ttf")
	if err != nil {
		t.Fatalf("LoadThemeFile() error = %v", err)
	}

	if theme.AccentColor.R != 0xFF || theme.AccentColor.G != 0 || theme.AccentColor.B != 0 {
		t.Errorf("AccentColor = %+v, want red", theme.AccentColor)
	}
	if theme.FontPath != "/custom/font.ttf" {
		t.Errorf("FontPath = %q, want override", theme.FontPath)
	}

	// Keys absent from the file keep the default theme's values.
	defaults := InitChioscoTheme("/default/font.ttf")
	if theme.TextColor != defaults.TextColor {
		t.Errorf("TextColor = %+v, want default %+v", theme.TextColor, defaults.TextColor)
	}
}

func TestLoadThemeFileMissing(t *testing.T) {
	if _, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.toml"), "/f.ttf"); err == nil {
		t.Fatal("expected error for missing theme file")
	}
}
