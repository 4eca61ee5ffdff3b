package editor

import (
	"log"

	"github.com/lixenwraith/hecto/constants"
	"github.com/lixenwraith/hecto/core"
	"github.com/lixenwraith/hecto/document"
	"github.com/lixenwraith/hecto/input"
	"github.com/lixenwraith/hecto/terminal"
)

// Screen is the device capability the editor draws through.
// *terminal.Terminal implements it.
type Screen interface {
	Size() core.Size
	ClearScreen()
	ClearCurrentLine()
	MoveCursorTo(pos core.Position)
	HideCursor()
	ShowCursor()
	SetForeground(c terminal.RGB)
	SetBackground(c terminal.RGB)
	ResetColors()
	WriteString(s string)
	ReadKey() (terminal.Event, error)
	Flush() error
}

// Editor owns cursor and viewport state over one read-only document.
// Not safe for concurrent use; Run is the only loop.
type Editor struct {
	screen Screen
	doc    *document.Document
	keys   *input.KeyTable
	cfg    Config

	cursor   core.Position // document space
	offset   core.Position // top-left of the viewport, document space
	quitting bool
	message  statusMessage
}

// New creates an editor over doc; a nil doc is treated as empty
func New(screen Screen, doc *document.Document, cfg Config) *Editor {
	if doc == nil {
		doc = document.FromLines(nil)
	}
	if cfg.Now == nil {
		cfg.Now = DefaultConfig().Now
	}

	e := &Editor{
		screen: screen,
		doc:    doc,
		keys:   input.DefaultKeyTable(cfg.QuitKey),
		cfg:    cfg,
	}
	if cfg.InitialMessage != "" {
		e.SetMessage(cfg.InitialMessage)
	}
	return e
}

// Run renders and processes keys until the quit key or a device error.
// On error the screen is cleared and the error returned; the caller restores the terminal.
func (e *Editor) Run() error {
	size := e.screen.Size()
	log.Printf("editor: start %dx%d, %d lines", size.Width, size.Height, e.doc.LineCount())

	for {
		if err := e.refreshScreen(); err != nil {
			return e.die(err)
		}
		if e.quitting {
			log.Printf("editor: quit at %d,%d", e.cursor.X, e.cursor.Y)
			return nil
		}

		ev, err := e.screen.ReadKey()
		if err != nil {
			return e.die(err)
		}
		e.processKey(ev)
	}
}

// processKey interprets one key event and rescrolls
func (e *Editor) processKey(ev terminal.Event) {
	intent := e.keys.Classify(ev)
	log.Printf("editor: key %s -> %s", ev, intent)

	switch intent.Type {
	case input.IntentQuit:
		e.quitting = true
	case input.IntentMotion:
		e.moveCursor(intent.Motion)
	}
	e.scroll()
}

// die clears the screen after a fatal device error
func (e *Editor) die(err error) error {
	log.Printf("editor: fatal: %+v", err)
	e.screen.ClearScreen()
	e.screen.MoveCursorTo(core.Position{})
	_ = e.screen.Flush()
	return err
}

// SetMessage replaces the message bar text and restarts its display window
func (e *Editor) SetMessage(text string) {
	e.message = statusMessage{text: text, setAt: e.cfg.Now()}
}

// Cursor returns the cursor position in document space
func (e *Editor) Cursor() core.Position {
	return e.cursor
}

// Offset returns the viewport origin in document space
func (e *Editor) Offset() core.Position {
	return e.offset
}

// Quitting reports whether the quit key has been received
func (e *Editor) Quitting() bool {
	return e.quitting
}

// viewport returns the text area size: full width, height minus the bars
func (e *Editor) viewport() core.Size {
	s := e.screen.Size()
	return core.Size{
		Width:  max(s.Width, 0),
		Height: max(s.Height-constants.BarRows, 0),
	}
}
