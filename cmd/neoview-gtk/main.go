// neoview-gtk hosts the grid core in a GTK3 window: a small tool bar,
// the drawing-area widget, config loading with live reload, and a demo
// event feed standing in for the editor-process transport.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/sqweek/dialog"

	"github.com/neoview/neoview/pkg/nvgrid"
	nvgridgtk "github.com/neoview/neoview/pkg/nvgrid-gtk"
	"github.com/neoview/neoview/pkg/nvgui"
	"github.com/neoview/neoview/pkg/nvshape"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	configPath := flag.String("config", nvgui.DefaultConfigPath(), "config file path")
	fontFile := flag.String("font-file", "", "font file for real glyph shaping (optional)")
	flag.Parse()

	log := nvgrid.NewLogger(*debug)
	if *debug {
		log.EnableAllCategories()
	}

	cfg, err := nvgui.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("loading config: %v", err)
		os.Exit(1)
	}

	gtk.Init(nil)

	shaper, err := buildShaper(cfg, *fontFile)
	if err != nil {
		log.Warn("font shaping unavailable, using approximate metrics: %v", err)
		shaper = nvgridgtk.ApproxShaper(cfg.Font.Size)
	}

	widget, err := nvgridgtk.NewWidget(nvgridgtk.Options{
		Rows:       24,
		Cols:       80,
		FontFamily: cfg.Font.Family,
		FontSize:   cfg.Font.Size,
		Shaper:     shaper,
		Scheme:     cfg.Scheme(),
		Logger:     log,

		BlinkInterval: blinkInterval(cfg.Cursor.Blink),
	}, nil)
	if err != nil {
		log.Fatal("creating grid widget: %v", err)
		os.Exit(1)
	}
	// The demo editor echoes forwarded keys back into the grid, taking
	// the place of the real editor-process transport.
	widget.SetEditor(&demoEditor{widget: widget})

	window, err := buildWindow(widget, log)
	if err != nil {
		log.Fatal("creating window: %v", err)
		os.Exit(1)
	}

	// Re-apply colors and font size when the config file changes.
	if *configPath != "" {
		watcher, werr := nvgui.WatchConfig(*configPath, log, func(fresh *nvgui.Config) {
			glib.IdleAdd(func() {
				widget.SetScheme(fresh.Scheme())
			})
		})
		if werr != nil {
			log.WarnCat(nvgrid.CatConfig, "config watching disabled: %v", werr)
		} else {
			defer watcher.Close()
		}
	}

	window.ShowAll()
	widget.DrawingArea().GrabFocus()
	feedWelcome(widget)
	gtk.Main()
}

// buildShaper wires the HarfBuzz shaper when a font file is supplied.
// Asset discovery stays out of the core: the file path comes from the
// command line.
func buildShaper(cfg *nvgui.Config, fontFile string) (nvgrid.Shaper, error) {
	if fontFile == "" {
		return nil, fmt.Errorf("no font file given")
	}
	data, err := os.ReadFile(fontFile)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	face, err := nvshape.ParseFace(data)
	if err != nil {
		return nil, err
	}
	return nvshape.New(nvshape.Faces{Regular: face}, cfg.Font.Size)
}

// blinkInterval maps the config blink setting to a timer period in
// milliseconds. Zero disables blinking.
func blinkInterval(blink string) uint {
	switch blink {
	case "none":
		return 0
	case "fast":
		return 250
	default: // "slow"
		return 530
	}
}

func buildWindow(widget *nvgridgtk.Widget, log *nvgrid.Logger) (*gtk.Window, error) {
	window, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, err
	}
	window.SetTitle("neoview")
	window.Connect("destroy", func() {
		gtk.MainQuit()
	})

	grid, err := gtk.GridNew()
	if err != nil {
		return nil, err
	}

	buttonBar, err := gtk.ButtonBoxNew(gtk.ORIENTATION_HORIZONTAL)
	if err != nil {
		return nil, err
	}
	buttonBar.SetHExpand(true)
	buttonBar.SetLayout(gtk.BUTTONBOX_START)

	openBtn, err := toolButton("document-open")
	if err != nil {
		return nil, err
	}
	openBtn.Connect("clicked", func() {
		path, derr := dialog.File().Title("Open file").Load()
		if derr != nil {
			return // cancelled
		}
		widget.OpenFile(path)
	})
	buttonBar.Add(openBtn)

	saveBtn, err := toolButton("document-save")
	if err != nil {
		return nil, err
	}
	saveBtn.Connect("clicked", func() {
		widget.SaveFile()
	})
	buttonBar.Add(saveBtn)

	exitBtn, err := toolButton("application-exit")
	if err != nil {
		return nil, err
	}
	exitBtn.Connect("clicked", func() {
		gtk.MainQuit()
	})
	buttonBar.Add(exitBtn)

	grid.Attach(buttonBar, 0, 0, 1, 1)

	da := widget.DrawingArea()
	da.SetHExpand(true)
	da.SetVExpand(true)
	grid.Attach(da, 0, 1, 1, 1)

	window.Add(grid)
	return window, nil
}

func toolButton(iconName string) (*gtk.ToolButton, error) {
	image, err := gtk.ImageNewFromIconName(iconName, gtk.ICON_SIZE_LARGE_TOOLBAR)
	if err != nil {
		return nil, err
	}
	return gtk.ToolButtonNew(image, "")
}

// feedWelcome paints a banner through the normal event path so a fresh
// window is not an empty void.
func feedWelcome(w *nvgridgtk.Widget) {
	title := nvgrid.HighlightUpdate{Bold: true}
	w.Feed(
		nvgrid.ClearScreen{},
		nvgrid.HighlightSet{Update: title},
		nvgrid.CursorGoto{Row: 1, Col: 2},
		nvgrid.PutText{Text: "neoview"},
		nvgrid.HighlightSet{},
		nvgrid.CursorGoto{Row: 3, Col: 2},
		nvgrid.PutText{Text: "waiting for editor events..."},
		nvgrid.CursorGoto{Row: 5, Col: 2},
		nvgrid.Flush{},
	)
}

// demoEditor echoes forwarded key input back into the grid, standing in
// for the external editor process during development.
type demoEditor struct {
	widget *nvgridgtk.Widget
}

func (d *demoEditor) Input(keys string) error {
	text := keys
	switch keys {
	case "Return", "Enter":
		model := d.widget.Adapter().Model()
		row, _ := model.Cursor()
		if row+1 < model.Rows() {
			d.widget.Feed(nvgrid.CursorGoto{Row: row + 1, Col: 2}, nvgrid.Flush{})
		}
		return nil
	case "BackSpace", "Escape", "Tab":
		return nil
	}
	if len([]rune(text)) > 1 {
		return nil
	}
	d.widget.Feed(nvgrid.PutText{Text: text}, nvgrid.Flush{})
	return nil
}
