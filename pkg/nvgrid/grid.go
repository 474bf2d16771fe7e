package nvgrid

// UiModel is the 2-D cell buffer the redraw events mutate and the
// render pipeline reads. It is owned by a single UI goroutine; the
// model itself carries no locking. A resize replaces the whole model,
// so references must always be reacquired through the event adapter.
type UiModel struct {
	rows int
	cols int

	lines []*Line

	// Display cursor, drawn by the render pipeline from live position.
	curRow int
	curCol int

	// Write cursor, advanced by Put. Distinct from the display cursor
	// even though cursor-goto events move both.
	writeRow int
	writeCol int
}

// NewUiModel creates a blank grid of the given dimensions with every
// line dirty and the cursor at the origin. Zero or negative dimensions
// are a caller contract violation; the model clamps them to 1x1 rather
// than corrupting itself.
func NewUiModel(rows, cols int) *UiModel {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	m := &UiModel{
		rows:  rows,
		cols:  cols,
		lines: make([]*Line, rows),
	}
	for i := range m.lines {
		m.lines[i] = newLine(cols)
	}
	return m
}

// Rows returns the grid's row count.
func (m *UiModel) Rows() int {
	return m.rows
}

// Cols returns the grid's column count.
func (m *UiModel) Cols() int {
	return m.cols
}

// Line returns the line at the given row.
func (m *UiModel) Line(row int) *Line {
	return m.lines[row]
}

// Lines returns all lines, top to bottom.
func (m *UiModel) Lines() []*Line {
	return m.lines
}

// Cursor returns the display cursor position.
func (m *UiModel) Cursor() (row, col int) {
	return m.curRow, m.curCol
}

// SetCursor moves both the display cursor and the write cursor. The
// display cursor is not baked into cell state, so no dirty marking
// happens here. Out-of-bounds coordinates are clamped; the protocol
// contract says they never occur, but silent corruption is worse than
// clamping.
func (m *UiModel) SetCursor(row, col int) {
	if row < 0 {
		row = 0
	}
	if row >= m.rows {
		row = m.rows - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= m.cols {
		col = m.cols - 1
	}
	m.curRow = row
	m.curCol = col
	m.writeRow = row
	m.writeCol = col
}

// Put writes text at the write cursor using the given attributes (or
// defaults when attrs is nil), advancing the write position and marking
// every touched line dirty. Writing past the column bound truncates
// silently; there is no wraparound. Wide runes occupy two columns, the
// second filled with a continuation cell.
func (m *UiModel) Put(text string, attrs *Attrs) {
	a := DefaultAttrs()
	if attrs != nil {
		a = *attrs
	}
	line := m.lines[m.writeRow]
	for _, r := range text {
		w := CellWidth(r)
		if w == 0 {
			continue
		}
		if m.writeCol+w > m.cols {
			break
		}
		line.setCell(m.writeCol, r, a)
		if w == 2 {
			line.setCell(m.writeCol+1, 0, a)
		}
		m.writeCol += w
	}
}

// Clear resets every cell to blank/default attributes and marks every
// line dirty.
func (m *UiModel) Clear() {
	for _, l := range m.lines {
		l.clear()
	}
}

// AllClean reports whether no line remains dirty. Exposed for the
// pipeline's dirty-convergence checks.
func (m *UiModel) AllClean() bool {
	for _, l := range m.lines {
		if l.dirtyLine {
			return false
		}
		for i := range l.cells {
			if l.cells[i].dirty {
				return false
			}
		}
	}
	return true
}
