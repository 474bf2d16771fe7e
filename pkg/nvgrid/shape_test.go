package nvgrid

import "testing"

// countingShaper wraps FixedShaper and counts Shape calls, so tests can
// observe how much shaping work a pass actually performed.
type countingShaper struct {
	FixedShaper
	calls int
}

func newCountingShaper() *countingShaper {
	return &countingShaper{FixedShaper: FixedShaper{Cell: CellMetrics{CharWidth: 10, LineHeight: 20, Ascent: 16}}}
}

func (c *countingShaper) Shape(text []rune, item Item) *GlyphRun {
	c.calls++
	return c.FixedShaper.Shape(text, item)
}

func TestShapeDirtyConverges(t *testing.T) {
	m := NewUiModel(3, 10)
	r := NewRenderer(NewColorModel(DefaultColorScheme()), newCountingShaper())
	m.Put("hello", nil)

	r.ShapeDirty(m)

	if !m.AllClean() {
		t.Error("grid should be fully clean after a shape pass")
	}
	for row := 0; row < m.Rows(); row++ {
		line := m.Line(row)
		for col := 0; col < line.Len(); col++ {
			if line.Cell(col).Dirty() {
				t.Errorf("cell (%d,%d) still dirty after shape pass", row, col)
			}
		}
	}
}

func TestShapeDirtySkipsCleanLines(t *testing.T) {
	m := NewUiModel(3, 10)
	shaper := newCountingShaper()
	r := NewRenderer(NewColorModel(DefaultColorScheme()), shaper)
	m.Put("hello", nil)
	r.ShapeDirty(m)

	shaper.calls = 0
	r.ShapeDirty(m)

	if shaper.calls != 0 {
		t.Errorf("second pass over a static grid shaped %d runs, expected 0", shaper.calls)
	}
}

func TestShapeDirtyAttachesGlyphs(t *testing.T) {
	m := NewUiModel(1, 10)
	r := NewRenderer(NewColorModel(DefaultColorScheme()), newCountingShaper())
	m.Put("ab", nil)
	r.ShapeDirty(m)

	line := m.Line(0)
	run := line.RunAt(0)
	if run == nil {
		t.Fatal("no run covering column 0")
	}
	if run.Glyphs == nil || len(run.Glyphs.Glyphs) != 2 {
		t.Fatal("run should carry two shaped glyphs")
	}
	if run.Glyphs.Glyphs[0].ID != 'a' || run.Glyphs.Glyphs[1].ID != 'b' {
		t.Error("glyph ids do not match the source runes")
	}
	if run.Glyphs.Width != 20 {
		t.Errorf("run width = %v, expected 20 (two cells at 10px)", run.Glyphs.Width)
	}
}

func TestUnchangedRunKeepsShapedGlyphs(t *testing.T) {
	m := NewUiModel(1, 10)
	shaper := newCountingShaper()
	r := NewRenderer(NewColorModel(DefaultColorScheme()), shaper)

	bold := DefaultAttrs()
	bold.Bold = true
	m.Put("ab", &bold)
	m.Put("cd", nil)
	r.ShapeDirty(m)

	line := m.Line(0)
	keptGlyphs := line.RunAt(0).Glyphs
	if keptGlyphs == nil {
		t.Fatal("first run should be shaped")
	}

	// Overwrite one cell of the second run only.
	m.SetCursor(0, 2)
	m.Put("C", nil)
	shaper.calls = 0
	r.ShapeDirty(m)

	if line.RunAt(0).Glyphs != keptGlyphs {
		t.Error("unchanged run lost its shaped glyphs across the reshape")
	}
	if shaper.calls != 1 {
		t.Errorf("single-run edit shaped %d runs, expected 1", shaper.calls)
	}
	if got := line.RunAt(2).Glyphs.Glyphs[0].ID; got != 'C' {
		t.Errorf("changed run shaped glyph %q, expected 'C'", rune(got))
	}
}

func TestAttrChangeInvalidatesShapedGlyphs(t *testing.T) {
	m := NewUiModel(1, 10)
	shaper := newCountingShaper()
	r := NewRenderer(NewColorModel(DefaultColorScheme()), shaper)
	m.Put("ab", nil)
	r.ShapeDirty(m)
	old := m.Line(0).RunAt(0).Glyphs

	bold := DefaultAttrs()
	bold.Bold = true
	m.SetCursor(0, 0)
	m.Put("ab", &bold)
	r.ShapeDirty(m)

	if m.Line(0).RunAt(0).Glyphs == old {
		t.Error("attribute change should force a reshape of the run")
	}
}

func TestFixedShaperIsTotalOnBadSpans(t *testing.T) {
	s := NewFixedShaper(10, 20, 16)
	for _, item := range []Item{
		{Offset: -1, Length: 2},
		{Offset: 0, Length: 5},
		{Offset: 0, Length: 0},
	} {
		run := s.Shape([]rune("ab"), item)
		if run == nil {
			t.Fatal("Shape must never return nil")
		}
		if len(run.Glyphs) != 0 {
			t.Errorf("bad span (%d,%d) produced %d glyphs", item.Offset, item.Length, len(run.Glyphs))
		}
	}
}

func TestFixedShaperWideRuneAdvance(t *testing.T) {
	s := NewFixedShaper(10, 20, 16)
	run := s.Shape([]rune("世"), Item{Offset: 0, Length: 1})
	if run.Width != 20 {
		t.Errorf("wide rune advance = %v, expected two cells (20)", run.Width)
	}
}
