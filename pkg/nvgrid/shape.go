package nvgrid

// CellMetrics holds the fixed per-cell pixel dimensions derived once
// from the active font. The grid is monospace: every cell advances by
// exactly CharWidth horizontally and LineHeight vertically.
type CellMetrics struct {
	CharWidth  float64
	LineHeight float64
	Ascent     float64
}

// Glyph is one positioned glyph within a shaped run. Offsets are
// relative to the glyph's pen position, advances move the pen.
type Glyph struct {
	ID       uint32
	Cluster  int
	XAdvance float64
	XOffset  float64
	YOffset  float64
}

// GlyphRun is the shaped output for one styled run: the glyph sequence
// plus the total advance. Runs are immutable once attached to a line.
type GlyphRun struct {
	Glyphs []Glyph

	// Text is the source text the run was shaped from, retained so
	// surfaces without glyph-level drawing can fall back to text paint.
	Text string

	// Width is the total pen advance of the run in pixels.
	Width float64
}

// Shaper converts a styled run's text span into a positioned glyph
// sequence. Shape is total: malformed or empty spans produce an empty
// glyph run, never an error. It must also be deterministic so shaped
// runs can be cached against (text, attrs) identity.
type Shaper interface {
	// Shape shapes the item's span of the given flattened line text.
	Shape(text []rune, item Item) *GlyphRun

	// Metrics returns the fixed cell metrics of the active font.
	Metrics() CellMetrics
}

// FixedShaper is a trivial monospace shaper that assigns every rune its
// codepoint as glyph id and one cell of advance. It backs tests and
// headless use, where a real font stack is unavailable.
type FixedShaper struct {
	Cell CellMetrics
}

// NewFixedShaper returns a FixedShaper with the given cell box.
func NewFixedShaper(charWidth, lineHeight, ascent float64) *FixedShaper {
	return &FixedShaper{Cell: CellMetrics{CharWidth: charWidth, LineHeight: lineHeight, Ascent: ascent}}
}

// Shape implements Shaper.
func (f *FixedShaper) Shape(text []rune, item Item) *GlyphRun {
	if item.Length <= 0 || item.Offset < 0 || item.Offset+item.Length > len(text) {
		return &GlyphRun{}
	}
	span := text[item.Offset : item.Offset+item.Length]
	run := &GlyphRun{
		Glyphs: make([]Glyph, len(span)),
		Text:   string(span),
	}
	for i, r := range span {
		adv := float64(CellWidth(r)) * f.Cell.CharWidth
		run.Glyphs[i] = Glyph{ID: uint32(r), Cluster: item.Offset + i, XAdvance: adv}
		run.Width += adv
	}
	return run
}

// Metrics implements Shaper.
func (f *FixedShaper) Metrics() CellMetrics {
	return f.Cell
}
