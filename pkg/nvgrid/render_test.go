package nvgrid

import "testing"

// paintOp records one Surface call for inspection.
type paintOp struct {
	kind    string // "fill", "stroke", "glyphs"
	x, y    float64
	w, h    float64
	r, g, b float64
	run     *GlyphRun
	attrs   Attrs
}

// recordingSurface captures the paint stream instead of drawing.
type recordingSurface struct {
	r, g, b float64
	ops     []paintOp
}

func (s *recordingSurface) SetSourceRGB(r, g, b float64) {
	s.r, s.g, s.b = r, g, b
}

func (s *recordingSurface) FillRect(x, y, w, h float64) {
	s.ops = append(s.ops, paintOp{kind: "fill", x: x, y: y, w: w, h: h, r: s.r, g: s.g, b: s.b})
}

func (s *recordingSurface) StrokeRect(x, y, w, h float64) {
	s.ops = append(s.ops, paintOp{kind: "stroke", x: x, y: y, w: w, h: h, r: s.r, g: s.g, b: s.b})
}

func (s *recordingSurface) DrawGlyphRun(run *GlyphRun, attrs Attrs, x, y float64) {
	s.ops = append(s.ops, paintOp{kind: "glyphs", x: x, y: y, run: run, attrs: attrs, r: s.r, g: s.g, b: s.b})
}

func (s *recordingSurface) opsOfKind(kind string) []paintOp {
	var out []paintOp
	for _, op := range s.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func testRenderer() *Renderer {
	return NewRenderer(NewColorModel(DefaultColorScheme()), NewFixedShaper(10, 20, 16))
}

func TestRenderStartsWithFullSurfaceClear(t *testing.T) {
	m := NewUiModel(3, 4)
	r := testRenderer()
	r.ShapeDirty(m)

	s := &recordingSurface{}
	r.Render(s, m, ModeNormal)

	if len(s.ops) == 0 || s.ops[0].kind != "fill" {
		t.Fatal("first paint op should be the background clear")
	}
	clear := s.ops[0]
	if clear.x != 0 || clear.y != 0 || clear.w != 40 || clear.h != 60 {
		t.Errorf("clear rect = (%v,%v,%v,%v), expected (0,0,40,60)", clear.x, clear.y, clear.w, clear.h)
	}
	br, bg, bb := r.Colors.BgColor.Normalized()
	if clear.r != br || clear.g != bg || clear.b != bb {
		t.Error("clear should use the default background color")
	}
}

func TestRenderSkipsDefaultBackgroundCells(t *testing.T) {
	m := NewUiModel(3, 4)
	r := testRenderer()
	r.Cursor.BlinkOn = false
	r.ShapeDirty(m)

	s := &recordingSurface{}
	r.Render(s, m, ModeNormal)

	if got := len(s.opsOfKind("fill")); got != 1 {
		t.Errorf("blank grid painted %d fills, expected only the clear", got)
	}
}

func TestRenderFillsRunBackgroundAsOneRect(t *testing.T) {
	m := NewUiModel(1, 8)
	r := testRenderer()
	r.Cursor.BlinkOn = false

	attrs := DefaultAttrs()
	attrs.Background = Color{R: 200, G: 0, B: 0}
	m.Put("abc", &attrs)
	r.ShapeDirty(m)

	s := &recordingSurface{}
	r.Render(s, m, ModeNormal)

	fills := s.opsOfKind("fill")
	if len(fills) != 2 {
		t.Fatalf("expected clear plus one run background, got %d fills", len(fills))
	}
	runBg := fills[1]
	if runBg.x != 0 || runBg.w != 30 || runBg.h != 20 {
		t.Errorf("run background rect = (%v,%v,%v,%v), expected x=0 w=30 h=20",
			runBg.x, runBg.y, runBg.w, runBg.h)
	}
}

func TestRenderDrawsGlyphsAtBaseline(t *testing.T) {
	m := NewUiModel(2, 8)
	r := testRenderer()
	r.Cursor.BlinkOn = false

	m.SetCursor(1, 3)
	m.Put("hi", nil)
	r.ShapeDirty(m)

	s := &recordingSurface{}
	r.Render(s, m, ModeNormal)

	glyphs := s.opsOfKind("glyphs")
	if len(glyphs) != 1 {
		t.Fatalf("expected one glyph run, got %d", len(glyphs))
	}
	op := glyphs[0]
	if op.x != 30 {
		t.Errorf("glyph run x = %v, expected 30 (col 3 at 10px)", op.x)
	}
	if op.y != 36 {
		t.Errorf("glyph run y = %v, expected 36 (row 1 line top 20 + ascent 16)", op.y)
	}
	if op.run.Text != "hi" {
		t.Errorf("glyph run text = %q", op.run.Text)
	}
}

func TestRenderPaintsCursorLastAndOnce(t *testing.T) {
	m := NewUiModel(3, 4)
	r := testRenderer()

	m.SetCursor(1, 2)
	m.Put("Q", nil)
	r.ShapeDirty(m)

	s := &recordingSurface{}
	r.Render(s, m, ModeNormal)

	cr, cg, cb := r.Colors.CursorColor.Normalized()
	var cursorOps []int
	for i, op := range s.ops {
		if op.kind == "fill" && op.r == cr && op.g == cg && op.b == cb {
			cursorOps = append(cursorOps, i)
		}
	}
	if len(cursorOps) != 1 {
		t.Fatalf("cursor painted %d times, expected once", len(cursorOps))
	}
	cursor := s.ops[cursorOps[0]]
	if cursor.x != 20 || cursor.y != 20 || cursor.w != 10 || cursor.h != 20 {
		t.Errorf("cursor rect = (%v,%v,%v,%v), expected (20,20,10,20)",
			cursor.x, cursor.y, cursor.w, cursor.h)
	}

	// The cursor cell's glyph must be painted before the overlay.
	for i, op := range s.ops {
		if op.kind == "glyphs" && op.x == 20 && i > cursorOps[0] {
			t.Error("cell content painted over the cursor")
		}
	}
}

func TestRenderBarCursorInInsertMode(t *testing.T) {
	m := NewUiModel(1, 4)
	r := testRenderer()
	r.ShapeDirty(m)

	s := &recordingSurface{}
	r.Render(s, m, ModeInsert)

	cr, cg, cb := r.Colors.CursorColor.Normalized()
	found := false
	for _, op := range s.ops {
		if op.kind == "fill" && op.r == cr && op.g == cg && op.b == cb {
			found = true
			if op.w != 2 || op.h != 20 {
				t.Errorf("bar cursor rect %vx%v, expected 2x20", op.w, op.h)
			}
		}
	}
	if !found {
		t.Error("no bar cursor painted in insert mode")
	}
}

func TestRenderUnfocusedCursorIsOutline(t *testing.T) {
	m := NewUiModel(1, 4)
	r := testRenderer()
	r.Cursor.Focused = false
	r.ShapeDirty(m)

	s := &recordingSurface{}
	r.Render(s, m, ModeNormal)

	if got := len(s.opsOfKind("stroke")); got != 1 {
		t.Errorf("unfocused block cursor painted %d strokes, expected 1", got)
	}
}

func TestRenderSuppressedDuringBlinkOff(t *testing.T) {
	m := NewUiModel(1, 4)
	r := testRenderer()
	r.Cursor.BlinkOn = false
	r.ShapeDirty(m)

	s := &recordingSurface{}
	r.Render(s, m, ModeNormal)

	cr, cg, cb := r.Colors.CursorColor.Normalized()
	for _, op := range s.ops {
		if op.r == cr && op.g == cg && op.b == cb {
			t.Fatal("cursor painted while blink phase is off")
		}
	}
}

func TestRenderReverseCellBackground(t *testing.T) {
	m := NewUiModel(1, 4)
	r := testRenderer()
	r.Cursor.BlinkOn = false

	attrs := DefaultAttrs()
	attrs.Reverse = true
	m.Put("x", &attrs)
	r.ShapeDirty(m)

	s := &recordingSurface{}
	r.Render(s, m, ModeNormal)

	fills := s.opsOfKind("fill")
	if len(fills) != 2 {
		t.Fatalf("expected clear plus reversed cell background, got %d fills", len(fills))
	}
	fr, fg, fb := r.Colors.FgColor.Normalized()
	cellBg := fills[1]
	if cellBg.r != fr || cellBg.g != fg || cellBg.b != fb {
		t.Error("reversed cell should paint the default foreground as background")
	}
}
