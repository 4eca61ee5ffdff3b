package editor

import (
	"github.com/lixenwraith/hecto/core"
	"github.com/lixenwraith/hecto/input"
)

// moveCursor applies one motion in document space.
// Row index H (one past the last row) is reachable and has length 0.
// After every motion x is clamped to the length of the destination row.
func (e *Editor) moveCursor(op input.MotionOp) {
	x, y := e.cursor.X, e.cursor.Y
	lines := e.doc.LineCount()
	width := e.rowLen(y)

	switch op {
	case input.MotionUp:
		y = max(y-1, 0)
	case input.MotionDown:
		y = min(y+1, lines)
	case input.MotionLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = e.rowLen(y)
		}
	case input.MotionRight:
		if x < width {
			x++
		} else if y < lines {
			y++
			x = 0
		}
	case input.MotionPageUp:
		y = max(y-e.pageStep(), 0)
	case input.MotionPageDown:
		y = min(y+e.pageStep(), lines)
	case input.MotionHome:
		x = 0
	case input.MotionEnd:
		x = width
	}

	x = min(x, e.rowLen(y))
	e.cursor = core.Position{X: x, Y: y}
}

// rowLen returns the grapheme length of row y, 0 past the end
func (e *Editor) rowLen(y int) int {
	row, ok := e.doc.RowAt(y)
	if !ok {
		return 0
	}
	return row.Len()
}

// pageStep is half the text area height, never less than one row
func (e *Editor) pageStep() int {
	return max(e.viewport().Height/2, 1)
}
