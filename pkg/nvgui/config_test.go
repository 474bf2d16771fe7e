package nvgui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/neoview/neoview/pkg/nvgrid"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Font.Family != GetDefaultFont() {
		t.Errorf("font family = %q", cfg.Font.Family)
	}
	if cfg.Font.Size != DefaultFontSize {
		t.Errorf("font size = %v", cfg.Font.Size)
	}
	if cfg.Cursor.Blink != "slow" {
		t.Errorf("cursor blink = %q", cfg.Cursor.Blink)
	}
}

func TestLoadConfigParsesToml(t *testing.T) {
	path := writeConfig(t, `
[font]
family = "Fira Code"
size = 16.5

[colors]
foreground = "#abcdef"
background = "#101010"

[cursor]
blink = "none"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Font.Family != "Fira Code" || cfg.Font.Size != 16.5 {
		t.Errorf("font = %+v", cfg.Font)
	}
	if cfg.Colors.Foreground != "#abcdef" {
		t.Errorf("foreground = %q", cfg.Colors.Foreground)
	}
	if cfg.Cursor.Blink != "none" {
		t.Errorf("blink = %q", cfg.Cursor.Blink)
	}
}

func TestLoadConfigFillsPartialFile(t *testing.T) {
	path := writeConfig(t, `
[colors]
background = "#000000"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Font.Family != GetDefaultFont() || cfg.Font.Size != DefaultFontSize {
		t.Errorf("unset font fields should fall back to defaults, got %+v", cfg.Font)
	}
}

func TestLoadConfigRejectsMalformedToml(t *testing.T) {
	path := writeConfig(t, "[font\nfamily =")
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed toml should be an error")
	}
}

func TestSchemePerFieldFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors.Foreground = "#ff0000"
	cfg.Colors.Background = "not a color"

	scheme := cfg.Scheme()
	def := nvgrid.DefaultColorScheme()

	if scheme.Foreground != (nvgrid.Color{R: 255}) {
		t.Errorf("foreground = %+v", scheme.Foreground)
	}
	if scheme.Background != def.Background {
		t.Error("malformed background should keep the default")
	}
	if scheme.Cursor != def.Cursor {
		t.Error("unset cursor should keep the default")
	}
}

func TestSchemePaletteOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors.Palette = []string{"#111111", "bogus", "#333333"}

	scheme := cfg.Scheme()
	def := nvgrid.DefaultColorScheme()

	if scheme.Palette[0] != (nvgrid.Color{R: 0x11, G: 0x11, B: 0x11}) {
		t.Errorf("palette[0] = %+v", scheme.Palette[0])
	}
	if scheme.Palette[1] != def.Palette[1] {
		t.Error("malformed palette entry should keep the default")
	}
	if scheme.Palette[3] != def.Palette[3] {
		t.Error("entries past the override list should keep the default")
	}
}
