package editor

// scroll moves the viewport the minimum distance that keeps the cursor visible
func (e *Editor) scroll() {
	vp := e.viewport()
	e.offset.Y = scrollAxis(e.cursor.Y, e.offset.Y, vp.Height)
	e.offset.X = scrollAxis(e.cursor.X, e.offset.X, vp.Width)
}

// scrollAxis returns the new offset on one axis for a viewport of the given extent.
// A zero extent cannot contain the cursor; the offset then tracks the cursor.
func scrollAxis(cursor, offset, extent int) int {
	switch {
	case extent <= 0:
		return cursor
	case cursor < offset:
		return cursor
	case cursor >= offset+extent:
		return cursor - extent + 1
	}
	return offset
}
