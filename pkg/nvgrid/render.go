package nvgrid

// Surface is the drawing target the compositor paints into. It is the
// only thing the core needs from the hosting toolkit's drawing context;
// the GTK package adapts a cairo context to it. Coordinates are pixels,
// colors are normalized [0,1] channels, cairo style: a source color is
// set and subsequent fills and glyph draws consume it.
type Surface interface {
	SetSourceRGB(r, g, b float64)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)

	// DrawGlyphRun paints a shaped run at the given pen position, with
	// y on the baseline. The attribute set selects the font variant.
	DrawGlyphRun(run *GlyphRun, attrs Attrs, x, y float64)
}

// Renderer composites frames from the grid model. A frame is two
// strictly ordered phases: ShapeDirty resolves dirty lines into shaped
// runs (the only model mutation), then Render paints backgrounds, glyph
// runs and the cursor overlay without touching the model.
type Renderer struct {
	Colors *ColorModel
	Shaper Shaper
	Cursor *Cursor
}

// NewRenderer creates a renderer over the given color model and shaper.
func NewRenderer(colors *ColorModel, shaper Shaper) *Renderer {
	return &Renderer{
		Colors: colors,
		Shaper: shaper,
		Cursor: NewCursor(),
	}
}

// ShapeDirty brings every dirty line back in sync with its run arena:
// re-itemize, merge (preserving shaped glyphs of unchanged runs), shape
// the runs that lost their glyphs, then clear all dirty bits. After the
// pass no cell or line is dirty and every styled column has a valid run
// entry. Fully static lines are skipped outright.
func (r *Renderer) ShapeDirty(m *UiModel) {
	for _, line := range m.Lines() {
		if !line.dirtyLine {
			continue
		}

		styled := NewStyledLine(line)
		items := Itemize(line, styled)
		line.merge(styled, items)

		for i := range line.runs {
			run := &line.runs[i]
			if run.Glyphs == nil {
				run.Glyphs = r.Shaper.Shape(styled.Text, Item{
					StartCol: run.StartCol,
					Cols:     run.Cols,
					Offset:   run.Offset,
					Length:   run.Length,
					Attrs:    run.Attrs,
				})
			}
		}

		for i := range line.cells {
			line.cells[i].dirty = false
		}
		line.dirtyLine = false
	}
}

// Render paints one frame. The default background is painted once as a
// full-surface clear; per-cell work only adds foreground content and
// backgrounds that differ from the default. The paint phase never
// mutates the model, so ShapeDirty must have run first.
func (r *Renderer) Render(s Surface, m *UiModel, mode Mode) {
	metrics := r.Shaper.Metrics()
	cw := metrics.CharWidth
	lh := metrics.LineHeight
	ascent := metrics.Ascent

	s.SetSourceRGB(r.Colors.BgColor.Normalized())
	s.FillRect(0, 0, float64(m.Cols())*cw, float64(m.Rows())*lh)

	cursorRow, cursorCol := m.Cursor()

	lineY := 0.0
	for row, line := range m.Lines() {
		lineX := 0.0

		for col := 0; col < line.Len(); col++ {
			cell := line.Cell(col)

			if run := line.RunAt(col); run != nil && run.StartCol == col {
				bg, fg := r.Colors.CellColors(cell)

				if bg != nil {
					s.SetSourceRGB(bg.Normalized())
					s.FillRect(lineX, lineY, cw*float64(run.Cols), lh)
				}

				if run.Glyphs != nil && len(run.Glyphs.Glyphs) > 0 {
					s.SetSourceRGB(fg.Normalized())
					s.DrawGlyphRun(run.Glyphs, run.Attrs, lineX, lineY+ascent)
				}
			} else if run == nil {
				// Column outside every run: plain background only.
				if bg := r.Colors.CellBg(cell); bg != nil {
					s.SetSourceRGB(bg.Normalized())
					s.FillRect(lineX, lineY, cw, lh)
				}
			}

			if row == cursorRow && col == cursorCol {
				r.Cursor.Draw(s, r.Colors, metrics, mode, lineX, lineY, r.Colors.ActualCellBg(cell))
			}

			lineX += cw
		}
		lineY += lh
	}
}
