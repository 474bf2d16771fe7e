// Package nvshape implements the nvgrid Shaper on top of
// go-text/typesetting's HarfBuzz port. Faces are supplied by the
// caller; this package performs no font discovery or asset loading.
package nvshape

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/neoview/neoview/pkg/nvgrid"
)

// Faces bundles the font variants a grid can ask for. Missing variants
// fall back to Regular.
type Faces struct {
	Regular    *font.Face
	Bold       *font.Face
	Italic     *font.Face
	BoldItalic *font.Face
}

// ParseFace parses an OpenType/TrueType font from raw bytes.
func ParseFace(data []byte) (*font.Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return face, nil
}

// Shaper shapes styled runs with HarfBuzz and exposes monospace cell
// metrics derived once from the regular face.
type Shaper struct {
	faces   Faces
	size    fixed.Int26_6
	hb      shaping.HarfbuzzShaper
	metrics nvgrid.CellMetrics
}

// New creates a shaper for the given faces at the given pixel size.
// Cell metrics come from shaping a reference glyph with the regular
// face, on the fixed-width assumption that every cell shares them.
func New(faces Faces, sizePx float64) (*Shaper, error) {
	if faces.Regular == nil {
		return nil, fmt.Errorf("shaper requires a regular face")
	}
	s := &Shaper{
		faces: faces,
		size:  fixed.Int26_6(sizePx * 64),
	}

	ref := s.shapeInput([]rune{'M'}, 0, 1, faces.Regular)
	charWidth := fixedToFloat(ref.Advance)
	ascent := fixedToFloat(ref.LineBounds.Ascent)
	descent := -fixedToFloat(ref.LineBounds.Descent)
	gap := fixedToFloat(ref.LineBounds.Gap)
	if charWidth <= 0 {
		return nil, fmt.Errorf("face reports non-positive advance for reference glyph")
	}

	s.metrics = nvgrid.CellMetrics{
		CharWidth:  charWidth,
		LineHeight: ascent + descent + gap,
		Ascent:     ascent,
	}
	return s, nil
}

// Metrics implements nvgrid.Shaper.
func (s *Shaper) Metrics() nvgrid.CellMetrics {
	return s.metrics
}

// Shape implements nvgrid.Shaper. It is total: out-of-range or empty
// spans shape to an empty run.
func (s *Shaper) Shape(text []rune, item nvgrid.Item) *nvgrid.GlyphRun {
	if item.Length <= 0 || item.Offset < 0 || item.Offset+item.Length > len(text) {
		return &nvgrid.GlyphRun{}
	}

	face := s.faceFor(item.Attrs)
	out := s.shapeInput(text, item.Offset, item.Offset+item.Length, face)

	run := &nvgrid.GlyphRun{
		Glyphs: make([]nvgrid.Glyph, len(out.Glyphs)),
		Text:   string(text[item.Offset : item.Offset+item.Length]),
		Width:  fixedToFloat(out.Advance),
	}
	for i, g := range out.Glyphs {
		run.Glyphs[i] = nvgrid.Glyph{
			ID:       uint32(g.GlyphID),
			Cluster:  g.ClusterIndex,
			XAdvance: fixedToFloat(g.XAdvance),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
		}
	}
	return run
}

func (s *Shaper) shapeInput(text []rune, start, end int, face *font.Face) shaping.Output {
	script := language.Latin
	if start < end {
		script = language.LookupScript(text[start])
	}
	return s.hb.Shape(shaping.Input{
		Text:      text,
		RunStart:  start,
		RunEnd:    end,
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      s.size,
		Script:    script,
		Language:  language.NewLanguage("en"),
	})
}

// faceFor selects the font variant for an attribute set.
func (s *Shaper) faceFor(attrs nvgrid.Attrs) *font.Face {
	switch {
	case attrs.Bold && attrs.Italic && s.faces.BoldItalic != nil:
		return s.faces.BoldItalic
	case attrs.Bold && s.faces.Bold != nil:
		return s.faces.Bold
	case attrs.Italic && s.faces.Italic != nil:
		return s.faces.Italic
	default:
		return s.faces.Regular
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
