package nvgrid

import "fmt"

// Editor is the outward collaborator: the external editor process the
// front-end forwards input to. Transport and RPC framing live behind
// this interface; a failed send is fatal to that one interaction and
// surfaced to the user, never to grid state.
type Editor interface {
	Input(keys string) error
}

// HighlightUpdate is the fixed-shape decoding of a highlight-set event.
// Absent fields leave the prior defaults untouched.
type HighlightUpdate struct {
	Foreground *Color
	Background *Color
	Reverse    bool
	Bold       bool
	Italic     bool
}

// Attrs resolves the update into a concrete attribute set over the
// defaults.
func (h HighlightUpdate) Attrs() Attrs {
	a := DefaultAttrs()
	if h.Foreground != nil {
		a.Foreground = *h.Foreground
	}
	if h.Background != nil {
		a.Background = *h.Background
	}
	a.Reverse = h.Reverse
	a.Bold = h.Bold
	a.Italic = h.Italic
	return a
}

// DecodeHighlight translates a raw protocol attribute map into a
// HighlightUpdate. Decoding is best-effort per field: unrecognized keys
// and malformed values are skipped, never failing the whole update.
func DecodeHighlight(raw map[string]interface{}, log *Logger) HighlightUpdate {
	var h HighlightUpdate
	for key, val := range raw {
		switch key {
		case "foreground":
			if c, ok := decodePackedColor(val); ok {
				h.Foreground = &c
			} else if log != nil {
				log.DebugCat(CatEvent, "ignoring malformed foreground value %v", val)
			}
		case "background":
			if c, ok := decodePackedColor(val); ok {
				h.Background = &c
			} else if log != nil {
				log.DebugCat(CatEvent, "ignoring malformed background value %v", val)
			}
		case "reverse":
			h.Reverse = true
		case "bold":
			h.Bold = true
		case "italic":
			h.Italic = true
		default:
			if log != nil {
				log.DebugCat(CatEvent, "ignoring unrecognized highlight key %q", key)
			}
		}
	}
	return h
}

func decodePackedColor(val interface{}) (Color, bool) {
	switch v := val.(type) {
	case uint64:
		return SplitRGB(uint32(v)), true
	case int64:
		if v < 0 {
			return Color{}, false
		}
		return SplitRGB(uint32(v)), true
	case int:
		if v < 0 {
			return Color{}, false
		}
		return SplitRGB(uint32(v)), true
	case uint32:
		return SplitRGB(v), true
	default:
		return Color{}, false
	}
}

// Event is one incremental screen-update notification from the editor
// process, already decoded into its typed form.
type Event interface {
	isEvent()
}

// CursorGoto moves the cursor to (Row, Col).
type CursorGoto struct {
	Row int
	Col int
}

// PutText writes text at the write cursor using the pending attributes.
type PutText struct {
	Text string
}

// ClearScreen blanks the whole grid.
type ClearScreen struct{}

// ResizeGrid replaces the grid wholesale with a blank one.
type ResizeGrid struct {
	Rows int
	Cols int
}

// HighlightSet updates the pending attribute set for subsequent puts.
type HighlightSet struct {
	Update HighlightUpdate
}

// ModeChange switches the interaction mode.
type ModeChange struct {
	Mode Mode
}

// Flush requests a repaint of the current state.
type Flush struct{}

func (CursorGoto) isEvent()   {}
func (PutText) isEvent()      {}
func (ClearScreen) isEvent()  {}
func (ResizeGrid) isEvent()   {}
func (HighlightSet) isEvent() {}
func (ModeChange) isEvent()   {}
func (Flush) isEvent()        {}

// Adapter owns the grid model and is its only writer besides the
// shaping stage. Events are queued as they arrive and drained once per
// frame before painting, so input timing never interleaves with paint
// timing. The adapter must only be touched from the UI goroutine.
type Adapter struct {
	model   *UiModel
	pending *Attrs
	mode    Mode
	queue   []Event
	log     *Logger

	// requestRedraw asks the hosting toolkit to schedule a paint. The
	// model is always fully up to date when it fires.
	requestRedraw func()
}

// NewAdapter creates an adapter over a fresh grid of the given size.
func NewAdapter(rows, cols int, log *Logger) *Adapter {
	if log == nil {
		log = NewLogger(false)
	}
	return &Adapter{
		model: NewUiModel(rows, cols),
		log:   log,
	}
}

// SetRedrawRequester installs the toolkit callback that schedules a
// repaint.
func (a *Adapter) SetRedrawRequester(fn func()) {
	a.requestRedraw = fn
}

// Model returns the current grid model. The reference is invalidated by
// the next resize event.
func (a *Adapter) Model() *UiModel {
	return a.model
}

// Mode returns the current interaction mode.
func (a *Adapter) Mode() Mode {
	return a.mode
}

// Post queues an event for the next drain.
func (a *Adapter) Post(ev Event) {
	a.queue = append(a.queue, ev)
}

// Drain applies every queued event in order. Called once per frame,
// before the shape phase.
func (a *Adapter) Drain() {
	queue := a.queue
	a.queue = a.queue[:0]
	for _, ev := range queue {
		a.Apply(ev)
	}
}

// Apply performs one event's mutation immediately.
func (a *Adapter) Apply(ev Event) {
	switch e := ev.(type) {
	case CursorGoto:
		if e.Row < 0 || e.Row >= a.model.Rows() || e.Col < 0 || e.Col >= a.model.Cols() {
			a.log.WarnCat(CatEvent, "cursor goto out of bounds: (%d,%d) on %dx%d grid",
				e.Row, e.Col, a.model.Rows(), a.model.Cols())
		}
		a.model.SetCursor(e.Row, e.Col)
	case PutText:
		a.model.Put(e.Text, a.pending)
	case ClearScreen:
		a.model.Clear()
	case ResizeGrid:
		// Resize is a reset, not a reflow: the prior model is discarded.
		a.model = NewUiModel(e.Rows, e.Cols)
	case HighlightSet:
		attrs := e.Update.Attrs()
		a.pending = &attrs
	case ModeChange:
		a.mode = e.Mode
	case Flush:
		if a.requestRedraw != nil {
			a.requestRedraw()
		}
	default:
		a.log.DebugCat(CatEvent, "ignoring unknown event %T", ev)
	}
}

// ForwardKey normalizes and forwards one key symbol to the editor
// process. Numeric-keypad key names are stripped of their keypad prefix
// so a keypad key reports as its base digit or operator name. A send
// failure is surfaced and reported back; the grid is untouched.
func (a *Adapter) ForwardKey(editor Editor, keyName string) error {
	input := NormalizeKeyName(keyName)
	if err := editor.Input(input); err != nil {
		a.log.ErrorCat(CatInput, "sending input %q to editor failed: %v", input, err)
		return fmt.Errorf("send input %q: %w", input, err)
	}
	return nil
}

// NormalizeKeyName strips the numeric-keypad prefix from a key symbol
// name, so KP_7 forwards as 7 and KP_Add as Add.
func NormalizeKeyName(name string) string {
	const kp = "KP_"
	if len(name) > len(kp) && name[:len(kp)] == kp {
		return name[len(kp):]
	}
	return name
}
