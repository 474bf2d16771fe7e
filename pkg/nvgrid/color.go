// Package nvgrid provides the presentation core of an editor front-end:
// a character grid fed by incremental redraw events, a styled-run itemizer,
// a glyph-shaping pipeline with per-run caching, and a compositor that
// paints one frame into a toolkit-supplied drawing surface.
//
// This package contains:
//   - Color types and the color resolution model
//   - Cell, Line and styled-run representation
//   - The grid model (UiModel) mutated by redraw events
//   - Itemization and the shape/render two-phase pipeline
//   - The event adapter and inbound event queue
//
// Toolkit-specific packages (nvgrid-gtk) provide the widget and drawing
// surface implementations that use this core package.
package nvgrid

// Color represents an RGB color
type Color struct {
	R, G, B uint8
	Default bool // Use the scheme's default fg/bg color instead of RGB values
}

// Predefined colors
var (
	DefaultForeground = Color{R: 212, G: 212, B: 212, Default: true}
	DefaultBackground = Color{R: 30, G: 30, B: 30, Default: true}
)

// SplitRGB decomposes a packed 24-bit RGB color (as delivered by
// highlight events) into its three 8-bit channels.
func SplitRGB(packed uint32) Color {
	return Color{
		R: uint8((packed >> 16) & 0xff),
		G: uint8((packed >> 8) & 0xff),
		B: uint8(packed & 0xff),
	}
}

// Normalized returns the color channels scaled into [0,1], the range
// drawing surfaces consume.
func (c Color) Normalized() (r, g, b float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0
}

// ToHex returns the color as a hex string like "#RRGGBB"
func (c Color) ToHex() string {
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

func hexByte(b uint8) string {
	const hex = "0123456789ABCDEF"
	return string([]byte{hex[b>>4], hex[b&0x0F]})
}

// ParseHexColor parses a hex color string in "#RRGGBB" or "#RGB" format
func ParseHexColor(s string) (Color, bool) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, false
	}
	s = s[1:]
	var r, g, b uint8
	switch len(s) {
	case 3:
		r = parseHexNibble(s[0]) * 17
		g = parseHexNibble(s[1]) * 17
		b = parseHexNibble(s[2]) * 17
	case 6:
		r = parseHexNibble(s[0])<<4 | parseHexNibble(s[1])
		g = parseHexNibble(s[2])<<4 | parseHexNibble(s[3])
		b = parseHexNibble(s[4])<<4 | parseHexNibble(s[5])
	default:
		return Color{}, false
	}
	return Color{R: r, G: g, B: b}, true
}

func parseHexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ColorScheme defines the default colors used by the front-end
type ColorScheme struct {
	Foreground Color
	Background Color
	Cursor     Color
	Palette    []Color
}

// DefaultColorScheme returns a dark color scheme similar to VS Code
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Foreground: Color{R: 212, G: 212, B: 212},
		Background: Color{R: 30, G: 30, B: 30},
		Cursor:     Color{R: 255, G: 255, B: 255},
		Palette:    ansiColors(),
	}
}

// ansiColors returns the standard 16-color palette used for indexed colors.
func ansiColors() []Color {
	return []Color{
		{R: 0, G: 0, B: 0},       // 0: Black
		{R: 170, G: 0, B: 0},     // 1: Red
		{R: 0, G: 170, B: 0},     // 2: Green
		{R: 170, G: 85, B: 0},    // 3: Yellow/Brown
		{R: 0, G: 0, B: 170},     // 4: Blue
		{R: 170, G: 0, B: 170},   // 5: Magenta
		{R: 0, G: 170, B: 170},   // 6: Cyan
		{R: 170, G: 170, B: 170}, // 7: White/Silver
		{R: 85, G: 85, B: 85},    // 8: Bright Black
		{R: 255, G: 85, B: 85},   // 9: Bright Red
		{R: 85, G: 255, B: 85},   // 10: Bright Green
		{R: 255, G: 255, B: 85},  // 11: Bright Yellow
		{R: 85, G: 85, B: 255},   // 12: Bright Blue
		{R: 255, G: 85, B: 255},  // 13: Bright Magenta
		{R: 85, G: 255, B: 255},  // 14: Bright Cyan
		{R: 255, G: 255, B: 255}, // 15: Bright White
	}
}

// ColorModel resolves the logical colors of cells against the active
// scheme. Resolution is a pure function of the cell, the scheme and the
// interaction mode; it never mutates stored attributes.
type ColorModel struct {
	BgColor     Color
	FgColor     Color
	CursorColor Color
	Palette     []Color
}

// NewColorModel creates a color model from a scheme.
func NewColorModel(scheme ColorScheme) *ColorModel {
	return &ColorModel{
		BgColor:     scheme.Background,
		FgColor:     scheme.Foreground,
		CursorColor: scheme.Cursor,
		Palette:     scheme.Palette,
	}
}

// resolve returns the effective (fg, bg) pair for a cell, applying
// scheme defaults and the reverse-video swap at resolution time.
func (m *ColorModel) resolve(cell *Cell) (fg, bg Color) {
	fg = cell.Attrs.Foreground
	bg = cell.Attrs.Background
	if fg.Default {
		fg = m.FgColor
	}
	if bg.Default {
		bg = m.BgColor
	}
	if cell.Attrs.Reverse {
		fg, bg = bg, fg
	}
	return fg, bg
}

// CellColors resolves both colors of a cell. The returned background is
// nil when the cell paints with the frame's default background, so the
// compositor can skip the redundant fill.
func (m *ColorModel) CellColors(cell *Cell) (bg *Color, fg Color) {
	rfg, rbg := m.resolve(cell)
	if rbg == m.BgColor {
		return nil, rfg
	}
	return &rbg, rfg
}

// CellBg resolves only the background of a cell, used for columns not
// covered by any shaped run. nil means the default background suffices.
func (m *ColorModel) CellBg(cell *Cell) *Color {
	_, rbg := m.resolve(cell)
	if rbg == m.BgColor {
		return nil
	}
	return &rbg
}

// ActualCellBg returns the background color rendered under the cursor
// glyph, independent of whether the cell's own background resolves to
// the frame default. Cursor rendering inverts against this color.
func (m *ColorModel) ActualCellBg(cell *Cell) Color {
	_, rbg := m.resolve(cell)
	return rbg
}

// PaletteColor returns the palette entry for an indexed color, falling
// back to the default foreground for out-of-range indices.
func (m *ColorModel) PaletteColor(idx int) Color {
	if idx < 0 || idx >= len(m.Palette) {
		return m.FgColor
	}
	return m.Palette[idx]
}
