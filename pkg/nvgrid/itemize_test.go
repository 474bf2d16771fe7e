package nvgrid

import "testing"

func boldAttrs() Attrs {
	a := DefaultAttrs()
	a.Bold = true
	return a
}

func TestItemizeMergesAdjacentSameAttrs(t *testing.T) {
	m := NewUiModel(1, 10)
	m.Put("abc", nil)

	line := m.Line(0)
	styled := NewStyledLine(line)
	items := Itemize(line, styled)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].StartCol != 0 || items[0].Cols != 3 {
		t.Errorf("item spans cols %d..%d, expected 0..3", items[0].StartCol, items[0].StartCol+items[0].Cols)
	}
	if items[0].Offset != 0 || items[0].Length != 3 {
		t.Errorf("item text span (%d,%d), expected (0,3)", items[0].Offset, items[0].Length)
	}
}

func TestItemizeSplitsOnAttributeChange(t *testing.T) {
	m := NewUiModel(1, 10)
	bold := boldAttrs()
	m.Put("ab", nil)
	m.Put("cd", &bold)

	line := m.Line(0)
	styled := NewStyledLine(line)
	items := Itemize(line, styled)

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Attrs.Bold || !items[1].Attrs.Bold {
		t.Error("attribute split is wrong way around")
	}
	if items[1].StartCol != 2 || items[1].Cols != 2 {
		t.Errorf("second item at col %d len %d, expected col 2 len 2", items[1].StartCol, items[1].Cols)
	}
}

func TestItemizeLeavesBlankCellsUncovered(t *testing.T) {
	m := NewUiModel(1, 10)
	m.SetCursor(0, 1)
	m.Put("a", nil)
	m.SetCursor(0, 5)
	m.Put("b", nil)

	line := m.Line(0)
	styled := NewStyledLine(line)
	items := Itemize(line, styled)

	if len(items) != 2 {
		t.Fatalf("expected 2 items across the gap, got %d", len(items))
	}
	if items[0].StartCol != 1 || items[1].StartCol != 5 {
		t.Errorf("items at cols %d and %d, expected 1 and 5", items[0].StartCol, items[1].StartCol)
	}
}

func TestItemizeIncludesStyledSpaces(t *testing.T) {
	m := NewUiModel(1, 10)
	bold := boldAttrs()
	m.Put("a b", &bold)

	line := m.Line(0)
	styled := NewStyledLine(line)
	items := Itemize(line, styled)

	if len(items) != 1 {
		t.Fatalf("styled space should not split the run, got %d items", len(items))
	}
	if items[0].Cols != 3 || items[0].Length != 3 {
		t.Errorf("run covers %d cols / %d runes, expected 3/3", items[0].Cols, items[0].Length)
	}
}

func TestItemizeExtendsRunOverContinuationCells(t *testing.T) {
	m := NewUiModel(1, 10)
	bold := boldAttrs()
	m.Put("世a", &bold)

	line := m.Line(0)
	styled := NewStyledLine(line)
	items := Itemize(line, styled)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Cols != 3 {
		t.Errorf("run covers %d cols, expected 3 (wide glyph + continuation + ascii)", items[0].Cols)
	}
	if items[0].Length != 2 {
		t.Errorf("run has %d runes, expected 2", items[0].Length)
	}
}

// Run partition invariant: contiguous, non-overlapping, covering
// exactly the styled columns.
func TestRunPartitionInvariant(t *testing.T) {
	m := NewUiModel(1, 12)
	bold := boldAttrs()
	m.Put("ab", nil)
	m.Put("cd", &bold)
	m.SetCursor(0, 7)
	m.Put("ef", nil)

	r := NewRenderer(NewColorModel(DefaultColorScheme()), NewFixedShaper(10, 20, 16))
	r.ShapeDirty(m)

	line := m.Line(0)
	covered := make([]bool, line.Len())
	for _, run := range line.Runs() {
		for c := run.StartCol; c < run.StartCol+run.Cols; c++ {
			if covered[c] {
				t.Errorf("column %d covered by two runs", c)
			}
			covered[c] = true
		}
	}
	for col := 0; col < line.Len(); col++ {
		cell := line.Cell(col)
		wantCovered := !cell.isBlank()
		if covered[col] != wantCovered {
			t.Errorf("column %d: covered=%v, expected %v", col, covered[col], wantCovered)
		}
		if run := line.RunAt(col); (run != nil) != covered[col] {
			t.Errorf("column %d: index and coverage disagree", col)
		}
	}
}
