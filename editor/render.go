package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hecto/constants"
	"github.com/lixenwraith/hecto/core"
	"github.com/lixenwraith/hecto/document"
)

// refreshScreen draws one frame and flushes it.
// The quitting frame replaces everything with the farewell line.
func (e *Editor) refreshScreen() error {
	s := e.screen
	s.HideCursor()
	s.MoveCursorTo(core.Position{})

	if e.quitting {
		s.ClearScreen()
		s.WriteString(constants.GoodbyeText)
	} else {
		e.drawRows()
		e.drawBars()
		s.MoveCursorTo(e.cursor.Sub(e.offset))
	}

	s.ShowCursor()
	return s.Flush()
}

// drawRows draws every text area row: document content, the banner, or the empty marker
func (e *Editor) drawRows() {
	vp := e.viewport()
	bannerRow := vp.Height / 3

	for r := 0; r < vp.Height; r++ {
		e.screen.ClearCurrentLine()
		if row, ok := e.doc.RowAt(e.offset.Y + r); ok {
			e.drawRow(row, vp.Width)
		} else if e.doc.IsEmpty() && r == bannerRow && e.cfg.Banner != nil {
			e.screen.WriteString(e.cfg.Banner(vp.Width))
		} else {
			e.screen.WriteString(constants.EmptyRowMarker)
		}
		e.screen.WriteString("\r\n")
	}
}

func (e *Editor) drawRow(row document.Row, width int) {
	start := e.offset.X
	e.screen.WriteString(row.Render(start, start+width))
}

// drawBars draws the bars that fit below the text area.
// A device shorter than both bars gets the status line only, with no line feed that would scroll it.
func (e *Editor) drawBars() {
	switch h := e.screen.Size().Height; {
	case h >= constants.BarRows:
		e.drawStatusBar()
		e.screen.WriteString("\r\n")
		e.drawMessageBar()
	case h > 0:
		e.drawStatusBar()
	}
}

// drawStatusBar draws the colored file/position line
func (e *Editor) drawStatusBar() {
	s := e.screen
	s.SetBackground(e.cfg.StatusBg)
	s.SetForeground(e.cfg.StatusFg)
	s.WriteString(e.statusLine(s.Size().Width))
	s.ResetColors()
}

// statusLine formats "<name> - <n> lines" left and "<y+1>/<n>" right, fit to width cells
func (e *Editor) statusLine(width int) string {
	if width <= 0 {
		return ""
	}

	name := e.doc.Name()
	if name == "" {
		name = constants.NoNameLabel
	} else {
		name = runewidth.Truncate(document.Printable(name), constants.StatusNameWidth, "")
	}

	lines := e.doc.LineCount()
	status := fmt.Sprintf("%s - %d lines", name, lines)
	indicator := fmt.Sprintf("%d/%d", e.cursor.Y+1, lines)

	if pad := width - runewidth.StringWidth(status) - runewidth.StringWidth(indicator); pad > 0 {
		status += strings.Repeat(" ", pad)
	}
	return runewidth.Truncate(status+indicator, width, "")
}

// drawMessageBar draws the message while it is inside its display window
func (e *Editor) drawMessageBar() {
	e.screen.ClearCurrentLine()
	if !e.message.visible(e.cfg.Now(), e.cfg.MessageTimeout) {
		return
	}
	width := e.screen.Size().Width
	if width <= 0 {
		return
	}
	e.screen.WriteString(runewidth.Truncate(document.Printable(e.message.text), width, ""))
}
