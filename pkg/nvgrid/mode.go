package nvgrid

// Mode is the editor interaction mode, as reported by mode-change
// events. It feeds cursor shape and color resolution only; cell
// attributes are independent of mode.
type Mode int

// Interaction modes.
const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
)

// ParseMode maps a protocol mode name to a Mode. Unknown names fall
// back to normal mode per the best-effort event contract.
func ParseMode(name string) Mode {
	switch name {
	case "insert":
		return ModeInsert
	case "visual":
		return ModeVisual
	default:
		return ModeNormal
	}
}

// CursorShape selects how the cursor overlay is painted.
type CursorShape int

// Cursor shapes.
const (
	CursorBlock CursorShape = iota
	CursorUnderline
	CursorBar
)

// Cursor tracks the display state of the cursor overlay: blink phase
// and widget focus. The position always comes live from the grid model.
type Cursor struct {
	// BlinkOn is the current blink phase; the toolkit timer toggles it.
	BlinkOn bool

	// Focused selects solid versus outline rendering for block cursors.
	Focused bool
}

// NewCursor returns a visible, focused cursor.
func NewCursor() *Cursor {
	return &Cursor{BlinkOn: true, Focused: true}
}

// Shape returns the cursor shape for the given mode: a bar while
// inserting, a block otherwise.
func (c *Cursor) Shape(mode Mode) CursorShape {
	if mode == ModeInsert {
		return CursorBar
	}
	return CursorBlock
}

// Draw paints the cursor overlay at the given cell origin. cellBg is
// the actual background under the cursor, used to keep the inverted
// block legible. Drawn after the cell's own content so the cursor is
// always topmost.
func (c *Cursor) Draw(s Surface, m *ColorModel, metrics CellMetrics, mode Mode, x, y float64, cellBg Color) {
	if !c.BlinkOn {
		return
	}

	cw := metrics.CharWidth
	lh := metrics.LineHeight

	switch c.Shape(mode) {
	case CursorBlock:
		if !c.Focused {
			s.SetSourceRGB(m.CursorColor.Normalized())
			s.StrokeRect(x+0.5, y+0.5, cw-1, lh-1)
			return
		}
		// Solid block. If the cursor color would vanish against the
		// actual cell background, invert that background instead.
		block := m.CursorColor
		if block == cellBg {
			block = Color{R: 255 - cellBg.R, G: 255 - cellBg.G, B: 255 - cellBg.B}
		}
		s.SetSourceRGB(block.Normalized())
		s.FillRect(x, y, cw, lh)

	case CursorUnderline:
		s.SetSourceRGB(m.CursorColor.Normalized())
		s.FillRect(x, y+lh-lh/4, cw, lh/4)

	case CursorBar:
		thickness := 2.0
		if !c.Focused {
			thickness = 1.0
		}
		s.SetSourceRGB(m.CursorColor.Normalized())
		s.FillRect(x, y, thickness, lh)
	}
}
