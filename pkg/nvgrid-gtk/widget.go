package nvgridgtk

import (
	"fmt"

	"github.com/gotk3/gotk3/cairo"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/neoview/neoview/pkg/nvgrid"
)

// Options configures widget creation.
type Options struct {
	Rows       int            // Initial grid height (default: 24)
	Cols       int            // Initial grid width (default: 80)
	FontFamily string         // Font family for the cairo fallback paint (default: "Monospace")
	FontSize   float64        // Font size in pixels (default: 14)
	Shaper     nvgrid.Shaper  // Shaping backend (default: approximate fixed metrics)
	Scheme     nvgrid.ColorScheme
	Logger     *nvgrid.Logger

	// BlinkInterval is the cursor blink period in milliseconds; 0 keeps
	// the cursor solid.
	BlinkInterval uint
}

// Widget hosts the grid core in a GTK drawing area. All methods must be
// called from the GTK main thread; the only cross-thread entry point is
// the redraw request, which marshals through glib's idle queue.
type Widget struct {
	drawingArea *gtk.DrawingArea

	adapter  *nvgrid.Adapter
	renderer *nvgrid.Renderer
	editor   nvgrid.Editor
	log      *nvgrid.Logger

	fontFamily string
	fontSize   float64

	blinkTimerID glib.SourceHandle
}

// ApproxShaper returns a fixed shaper with a rough approximation of
// monospace metrics for a pixel size, used when no real font stack is
// wired up.
func ApproxShaper(fontSize float64) nvgrid.Shaper {
	charWidth := fontSize * 6 / 10
	lineHeight := fontSize * 12 / 10
	if charWidth < 1 {
		charWidth = 10
	}
	if lineHeight < 1 {
		lineHeight = 20
	}
	return nvgrid.NewFixedShaper(charWidth, lineHeight, fontSize)
}

// NewWidget creates the grid widget and wires the redraw request into
// GTK's idle queue.
func NewWidget(opts Options, editor nvgrid.Editor) (*Widget, error) {
	if opts.Rows < 1 {
		opts.Rows = 24
	}
	if opts.Cols < 1 {
		opts.Cols = 80
	}
	if opts.FontFamily == "" {
		opts.FontFamily = "Monospace"
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 14
	}
	if opts.Shaper == nil {
		opts.Shaper = ApproxShaper(opts.FontSize)
	}
	if opts.Logger == nil {
		opts.Logger = nvgrid.NewLogger(false)
	}
	if opts.Scheme.Palette == nil {
		opts.Scheme = nvgrid.DefaultColorScheme()
	}

	w := &Widget{
		adapter:    nvgrid.NewAdapter(opts.Rows, opts.Cols, opts.Logger),
		renderer:   nvgrid.NewRenderer(nvgrid.NewColorModel(opts.Scheme), opts.Shaper),
		editor:     editor,
		log:        opts.Logger,
		fontFamily: opts.FontFamily,
		fontSize:   opts.FontSize,
	}

	da, err := gtk.DrawingAreaNew()
	if err != nil {
		return nil, fmt.Errorf("create drawing area: %w", err)
	}
	w.drawingArea = da

	da.AddEvents(int(gdk.KEY_PRESS_MASK | gdk.FOCUS_CHANGE_MASK))
	da.SetCanFocus(true)

	da.Connect("draw", w.onDraw)
	da.Connect("key-press-event", w.onKeyPress)
	da.Connect("configure-event", w.onConfigure)
	da.Connect("focus-in-event", w.onFocusIn)
	da.Connect("focus-out-event", w.onFocusOut)

	// The grid is fully up to date before a flush raises this signal;
	// the idle hop only moves the paint onto GTK's queue.
	w.adapter.SetRedrawRequester(func() {
		glib.IdleAdd(func() {
			w.drawingArea.QueueDraw()
		})
	})

	metrics := opts.Shaper.Metrics()
	da.SetSizeRequest(int(float64(opts.Cols)*metrics.CharWidth), int(float64(opts.Rows)*metrics.LineHeight))

	// Blink timer toggles the cursor phase; a zero interval keeps the
	// cursor solid.
	if opts.BlinkInterval > 0 {
		w.blinkTimerID = glib.TimeoutAdd(opts.BlinkInterval, func() bool {
			w.renderer.Cursor.BlinkOn = !w.renderer.Cursor.BlinkOn
			w.drawingArea.QueueDraw()
			return true
		})
	}

	return w, nil
}

// DrawingArea returns the underlying GTK widget for packing.
func (w *Widget) DrawingArea() *gtk.DrawingArea {
	return w.drawingArea
}

// Adapter returns the event adapter feeding the grid.
func (w *Widget) Adapter() *nvgrid.Adapter {
	return w.adapter
}

// Renderer exposes the frame pipeline, mainly for applying config
// changes (colors, shaper) at runtime.
func (w *Widget) Renderer() *nvgrid.Renderer {
	return w.renderer
}

// SetEditor installs the editor-process collaborator key input and
// file commands are forwarded to.
func (w *Widget) SetEditor(editor nvgrid.Editor) {
	w.editor = editor
}

// OpenFile asks the editor process to edit the given file.
func (w *Widget) OpenFile(path string) {
	if w.editor == nil {
		return
	}
	if err := w.editor.Input(":e " + path + "\n"); err != nil {
		w.log.ErrorCat(nvgrid.CatInput, "open %s: %v", path, err)
	}
}

// SaveFile asks the editor process to write the current buffer.
func (w *Widget) SaveFile() {
	if w.editor == nil {
		return
	}
	if err := w.editor.Input(":w\n"); err != nil {
		w.log.ErrorCat(nvgrid.CatInput, "save: %v", err)
	}
}

// Feed queues redraw events and drains them immediately. Must be called
// on the GTK main thread; event producers on other goroutines hop over
// via glib.IdleAdd.
func (w *Widget) Feed(events ...nvgrid.Event) {
	for _, ev := range events {
		w.adapter.Post(ev)
	}
	w.adapter.Drain()
}

// SetScheme swaps the color scheme and repaints everything.
func (w *Widget) SetScheme(scheme nvgrid.ColorScheme) {
	w.renderer.Colors = nvgrid.NewColorModel(scheme)
	w.adapter.Model().Clear()
	w.drawingArea.QueueDraw()
}

func (w *Widget) onDraw(da *gtk.DrawingArea, cr *cairo.Context) bool {
	model := w.adapter.Model()
	w.renderer.ShapeDirty(model)
	surface := newCairoSurface(cr, w.fontFamily, w.fontSize)
	w.renderer.Render(surface, model, w.adapter.Mode())
	return true
}

func (w *Widget) onConfigure(da *gtk.DrawingArea, ev *gdk.Event) bool {
	metrics := w.renderer.Shaper.Metrics()
	alloc := da.GetAllocation()
	cols := int(float64(alloc.GetWidth()) / metrics.CharWidth)
	rows := int(float64(alloc.GetHeight()) / metrics.LineHeight)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	model := w.adapter.Model()
	if cols != model.Cols() || rows != model.Rows() {
		w.Feed(nvgrid.ResizeGrid{Rows: rows, Cols: cols})
		w.drawingArea.QueueDraw()
	}
	return false
}

func (w *Widget) onFocusIn(da *gtk.DrawingArea, ev *gdk.Event) bool {
	w.renderer.Cursor.Focused = true
	w.renderer.Cursor.BlinkOn = true
	w.drawingArea.QueueDraw()
	return false
}

func (w *Widget) onFocusOut(da *gtk.DrawingArea, ev *gdk.Event) bool {
	w.renderer.Cursor.Focused = false
	w.drawingArea.QueueDraw()
	return false
}

func (w *Widget) onKeyPress(da *gtk.DrawingArea, ev *gdk.Event) bool {
	if w.editor == nil {
		return false
	}
	key := gdk.EventKeyNewFromEvent(ev)
	name := keyName(key.KeyVal())
	if name == "" {
		return false
	}
	// Send failures are surfaced to the user; grid state is untouched.
	_ = w.adapter.ForwardKey(w.editor, name)
	return true
}
