package nvgrid

import (
	"github.com/mattn/go-runewidth"
)

// Attrs is the closed set of display attributes a cell can carry.
// Unknown highlight fields never reach this struct; the event adapter
// drops them during decoding.
type Attrs struct {
	Foreground Color
	Background Color
	Reverse    bool
	Bold       bool
	Italic     bool
}

// DefaultAttrs returns the attribute set used for cells written without
// an explicit highlight.
func DefaultAttrs() Attrs {
	return Attrs{
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

// Cell represents a single character cell in the grid
type Cell struct {
	// Ch is the display character. 0 marks the continuation column of a
	// wide glyph.
	Ch    rune
	Attrs Attrs

	// dirty is set on every write and cleared by the shaping stage once
	// the owning run has been reshaped.
	dirty bool
}

// EmptyCell returns a blank cell with default attributes
func EmptyCell() Cell {
	return Cell{
		Ch:    ' ',
		Attrs: DefaultAttrs(),
	}
}

// IsContinuation returns true for the trailing column of a wide glyph.
func (c *Cell) IsContinuation() bool {
	return c.Ch == 0
}

// isBlank reports whether the cell contributes nothing to shaping: a
// space (or continuation filler) with default attributes. Blank cells
// stay outside every styled run and render as plain background.
func (c *Cell) isBlank() bool {
	if c.Ch != ' ' && c.Ch != 0 {
		return false
	}
	return c.Attrs == DefaultAttrs()
}

// Dirty reports whether the cell changed since the last shaping pass.
func (c *Cell) Dirty() bool {
	return c.dirty
}

// CellWidth returns how many columns a rune occupies. Control runes
// collapse to zero so writes cannot smear them across the grid.
func CellWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// Run is a maximal span of columns sharing one attribute set, the unit
// of text shaping. Runs are derived data: the itemizer recomputes them
// whenever the owning line is dirty, and the shaping stage attaches the
// glyph sequence. A run whose text and attributes survive a reshape
// keeps its previously shaped glyphs.
type Run struct {
	// StartCol and Cols locate the run within the line.
	StartCol int
	Cols     int

	// Offset and Length locate the run's text within the line's
	// flattened rune sequence.
	Offset int
	Length int

	// Attrs is the attribute set shared by every cell of the run.
	Attrs Attrs

	// Text is the run's source text, kept so an unchanged run can be
	// recognized across reshapes.
	Text string

	// Glyphs is nil until the shaping stage resolves the run.
	Glyphs *GlyphRun
}

// Line is one row of the grid: a fixed-length cell slice, the line
// dirty flag, and the run arena with its per-column index. The index
// maps each column to the arena entry covering it, or -1 for columns
// outside every run. Invalidation clears index entries rather than
// mutating runs in place.
type Line struct {
	cells     []Cell
	dirtyLine bool

	runs      []Run
	itemIndex []int
}

func newLine(cols int) *Line {
	l := &Line{
		cells:     make([]Cell, cols),
		dirtyLine: true,
		itemIndex: make([]int, cols),
	}
	for i := range l.cells {
		l.cells[i] = EmptyCell()
		l.cells[i].dirty = true
		l.itemIndex[i] = -1
	}
	return l
}

// Len returns the column count of the line.
func (l *Line) Len() int {
	return len(l.cells)
}

// Cell returns the cell at the given column.
func (l *Line) Cell(col int) *Cell {
	return &l.cells[col]
}

// Dirty reports whether any cell of the line changed since the last
// shaping pass.
func (l *Line) Dirty() bool {
	return l.dirtyLine
}

// RunAt returns the run covering the given column, or nil.
func (l *Line) RunAt(col int) *Run {
	idx := l.itemIndex[col]
	if idx < 0 {
		return nil
	}
	return &l.runs[idx]
}

// RunStartsAt reports whether a shaped run begins at the given column.
func (l *Line) RunStartsAt(col int) bool {
	r := l.RunAt(col)
	return r != nil && r.StartCol == col
}

// Runs returns the line's run arena. Valid only for columns whose cells
// are not dirty.
func (l *Line) Runs() []Run {
	return l.runs
}

// setCell writes a cell and raises both dirty levels. A dirty cell
// always implies a dirty line.
func (l *Line) setCell(col int, ch rune, attrs Attrs) {
	l.cells[col] = Cell{Ch: ch, Attrs: attrs, dirty: true}
	l.dirtyLine = true
}

// clear resets every cell to blank/default and marks the line dirty.
func (l *Line) clear() {
	for i := range l.cells {
		l.cells[i] = EmptyCell()
		l.cells[i].dirty = true
		l.itemIndex[i] = -1
	}
	l.runs = l.runs[:0]
	l.dirtyLine = true
}

// StyledLine is the flattened representation of one line handed to the
// itemizer: the concatenated text plus the source column of every rune.
// Continuation columns of wide glyphs contribute no rune.
type StyledLine struct {
	Text []rune

	// ColOfRune maps each rune of Text back to its grid column.
	ColOfRune []int

	// RuneOfCol maps each column to its rune index in Text, or -1 for
	// continuation columns and columns outside every run.
	RuneOfCol []int
}

// NewStyledLine flattens a line into text plus column mappings. Blank
// unstyled cells are excluded: they belong to no run and render as
// plain background.
func NewStyledLine(l *Line) *StyledLine {
	s := &StyledLine{
		Text:      make([]rune, 0, len(l.cells)),
		ColOfRune: make([]int, 0, len(l.cells)),
		RuneOfCol: make([]int, len(l.cells)),
	}
	for col := range l.cells {
		cell := &l.cells[col]
		s.RuneOfCol[col] = -1
		if cell.isBlank() || cell.IsContinuation() {
			continue
		}
		s.RuneOfCol[col] = len(s.Text)
		s.Text = append(s.Text, cell.Ch)
		s.ColOfRune = append(s.ColOfRune, col)
	}
	return s
}
