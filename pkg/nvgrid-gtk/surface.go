// Package nvgridgtk hosts the nvgrid core inside a GTK3 drawing area:
// a cairo implementation of the drawing surface, the widget glue that
// schedules repaints, and key forwarding to the editor process.
package nvgridgtk

import (
	"github.com/gotk3/gotk3/cairo"

	"github.com/neoview/neoview/pkg/nvgrid"
)

// cairoSurface adapts a cairo drawing context to nvgrid.Surface for
// the duration of one draw signal.
type cairoSurface struct {
	cr         *cairo.Context
	fontFamily string
	fontSize   float64
}

func newCairoSurface(cr *cairo.Context, fontFamily string, fontSize float64) *cairoSurface {
	return &cairoSurface{cr: cr, fontFamily: fontFamily, fontSize: fontSize}
}

func (s *cairoSurface) SetSourceRGB(r, g, b float64) {
	s.cr.SetSourceRGB(r, g, b)
}

func (s *cairoSurface) FillRect(x, y, w, h float64) {
	s.cr.Rectangle(x, y, w, h)
	s.cr.Fill()
}

func (s *cairoSurface) StrokeRect(x, y, w, h float64) {
	s.cr.SetLineWidth(1.0)
	s.cr.Rectangle(x, y, w, h)
	s.cr.Stroke()
}

// DrawGlyphRun paints a shaped run. The cairo toy text API has no
// glyph-id entry point in gotk3, so the run's source text is drawn with
// the font variant the run was shaped for; the pen position and run
// width still come from the shaped output.
func (s *cairoSurface) DrawGlyphRun(run *nvgrid.GlyphRun, attrs nvgrid.Attrs, x, y float64) {
	slant := cairo.FONT_SLANT_NORMAL
	if attrs.Italic {
		slant = cairo.FONT_SLANT_ITALIC
	}
	weight := cairo.FONT_WEIGHT_NORMAL
	if attrs.Bold {
		weight = cairo.FONT_WEIGHT_BOLD
	}
	s.cr.SelectFontFace(s.fontFamily, slant, weight)
	s.cr.SetFontSize(s.fontSize)
	s.cr.MoveTo(x, y)
	s.cr.ShowText(run.Text)
}
