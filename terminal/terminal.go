package terminal

import (
	"bufio"
	"io"
	"os"

	"github.com/lixenwraith/hecto/core"
)

// Terminal is the exclusive owner of the raw-mode device.
// Open acquires raw mode; Close restores cooked mode and must be deferred by the owner.
// Output is buffered until Flush. A Terminal is not safe for concurrent use.
type Terminal struct {
	backend   Backend
	output    *bufio.Writer
	input     *keyReader
	size      core.Size
	colorMode ColorMode
	closed    bool
}

// backendWriter adapts Backend.Write to io.Writer for the output buffer
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Open acquires the process terminal in raw mode
func Open(colorMode ColorMode) (*Terminal, error) {
	return NewWithBackend(newBackend(), colorMode)
}

// NewWithBackend queries the backend dimensions and switches it into raw mode.
// Failure of either step is a *DeviceError and leaves the backend untouched.
func NewWithBackend(backend Backend, colorMode ColorMode) (*Terminal, error) {
	w, h, err := backend.Size()
	if err != nil {
		return nil, newDeviceError("size query", err)
	}

	if err := backend.Init(); err != nil {
		return nil, newDeviceError("raw mode", err)
	}

	return &Terminal{
		backend:   backend,
		output:    bufio.NewWriterSize(backendWriter{backend}, 16384),
		input:     newKeyReader(backend),
		size:      core.Size{Width: max(w, 0), Height: max(h, 0)},
		colorMode: colorMode,
	}, nil
}

// Size returns the dimensions queried at construction
func (t *Terminal) Size() core.Size {
	return t.size
}

// ColorMode returns the output color capability
func (t *Terminal) ColorMode() ColorMode {
	return t.colorMode
}

// ClearScreen erases the whole display
func (t *Terminal) ClearScreen() {
	t.output.Write(csiClear)
}

// ClearCurrentLine erases the line under the cursor
func (t *Terminal) ClearCurrentLine() {
	t.output.Write(csiEraseL)
}

// MoveCursorTo positions the cursor at a 0-indexed position
func (t *Terminal) MoveCursorTo(pos core.Position) {
	writeCursorPos(t.output, pos)
}

// HideCursor hides the cursor
func (t *Terminal) HideCursor() {
	t.output.Write(csiCursorHide)
}

// ShowCursor shows the cursor
func (t *Terminal) ShowCursor() {
	t.output.Write(csiCursorShow)
}

// SetForeground sets the foreground color of subsequent text
func (t *Terminal) SetForeground(c RGB) {
	writeFg(t.output, c, t.colorMode)
}

// SetBackground sets the background color of subsequent text
func (t *Terminal) SetBackground(c RGB) {
	writeBg(t.output, c, t.colorMode)
}

// ResetColors restores default foreground and background
func (t *Terminal) ResetColors() {
	t.output.Write(csiDefaultFg)
	t.output.Write(csiDefaultBg)
}

// WriteString queues text for output
func (t *Terminal) WriteString(s string) {
	t.output.WriteString(s)
}

// ReadKey blocks until one key event is available
func (t *Terminal) ReadKey() (Event, error) {
	ev, err := t.input.readEvent()
	if err != nil {
		return Event{}, newIOError("read key", err)
	}
	return ev, nil
}

// Flush forces buffered output to the device
func (t *Terminal) Flush() error {
	if err := t.output.Flush(); err != nil {
		return newIOError("flush", err)
	}
	return nil
}

// Close shows the cursor, resets colors and restores cooked mode.
// Safe to call multiple times; only the first call has effect.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	// Discard whatever a failed frame left behind before writing the reset
	t.output.Reset(backendWriter{t.backend})
	t.output.Write(csiSGR0)
	t.output.Write(csiCursorShow)
	flushErr := t.output.Flush()

	if err := t.backend.Fini(); err != nil {
		return newDeviceError("restore", err)
	}
	if flushErr != nil {
		return newIOError("flush", flushErr)
	}
	return nil
}

// Closed reports whether Close has run
func (t *Terminal) Closed() bool {
	return t.closed
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Close cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiClear)
	w.Write(csiHome)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
