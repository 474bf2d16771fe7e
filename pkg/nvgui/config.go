// Package nvgui provides shared configuration for neoview front-ends:
// the TOML config file, platform font defaults, and a config watcher
// that re-applies changes while the GUI is running.
package nvgui

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/neoview/neoview/pkg/nvgrid"
)

// Default font settings
const DefaultFontSize = 14.0

// Config is the on-disk configuration of the front-end.
type Config struct {
	Font   FontConfig   `toml:"font"`
	Colors ColorsConfig `toml:"colors"`
	Cursor CursorConfig `toml:"cursor"`
}

// FontConfig selects the grid font.
type FontConfig struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
}

// ColorsConfig holds the scheme colors as hex strings.
type ColorsConfig struct {
	Foreground string   `toml:"foreground"`
	Background string   `toml:"background"`
	Cursor     string   `toml:"cursor"`
	Palette    []string `toml:"palette"`
}

// CursorConfig controls cursor blinking.
type CursorConfig struct {
	// Blink is "none", "slow" or "fast".
	Blink string `toml:"blink"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Font: FontConfig{
			Family: GetDefaultFont(),
			Size:   DefaultFontSize,
		},
		Cursor: CursorConfig{Blink: "slow"},
	}
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "neoview", "config.toml")
}

// LoadConfig reads a TOML config file, filling unset fields from the
// defaults. A missing file is not an error; a malformed file is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Font.Family == "" {
		cfg.Font.Family = GetDefaultFont()
	}
	if cfg.Font.Size <= 0 {
		cfg.Font.Size = DefaultFontSize
	}
	return cfg, nil
}

// Scheme resolves the configured colors into a color scheme, falling
// back to the default scheme per field for unset or malformed values.
func (c *Config) Scheme() nvgrid.ColorScheme {
	scheme := nvgrid.DefaultColorScheme()
	if col, ok := nvgrid.ParseHexColor(c.Colors.Foreground); ok {
		scheme.Foreground = col
	}
	if col, ok := nvgrid.ParseHexColor(c.Colors.Background); ok {
		scheme.Background = col
	}
	if col, ok := nvgrid.ParseHexColor(c.Colors.Cursor); ok {
		scheme.Cursor = col
	}
	for i, hex := range c.Colors.Palette {
		if i >= len(scheme.Palette) {
			break
		}
		if col, ok := nvgrid.ParseHexColor(hex); ok {
			scheme.Palette[i] = col
		}
	}
	return scheme
}

// GetDefaultFont returns the best monospace font for the current platform.
// Includes cross-platform fallbacks so config files can be shared between OS.
func GetDefaultFont() string {
	switch runtime.GOOS {
	case "darwin":
		return "Menlo"
	case "windows":
		return "Consolas"
	default:
		return "Monospace"
	}
}
