// Package termtest provides an in-memory terminal.Backend for tests.
package termtest

import (
	"bytes"
	"errors"
)

// ErrNoInput is returned by Read once the scripted input is exhausted
var ErrNoInput = errors.New("termtest: no more input")

// Backend records output and replays scripted input chunks.
// Each chunk is delivered by exactly one Read call, mimicking one terminal write.
type Backend struct {
	Width, Height int

	// Raw reports whether the device is currently in raw mode
	Raw bool

	// Injected failures
	InitErr  error
	SizeErr  error
	WriteErr error
	ReadErr  error

	Out bytes.Buffer

	InitCalls int
	FiniCalls int

	chunks [][]byte
}

// New returns a backend of the given size that will deliver the given input chunks
func New(width, height int, chunks ...string) *Backend {
	b := &Backend{Width: width, Height: height}
	for _, c := range chunks {
		b.chunks = append(b.chunks, []byte(c))
	}
	return b
}

// Feed appends input chunks
func (b *Backend) Feed(chunks ...string) {
	for _, c := range chunks {
		b.chunks = append(b.chunks, []byte(c))
	}
}

func (b *Backend) Init() error {
	b.InitCalls++
	if b.InitErr != nil {
		return b.InitErr
	}
	b.Raw = true
	return nil
}

func (b *Backend) Fini() error {
	b.FiniCalls++
	b.Raw = false
	return nil
}

func (b *Backend) Size() (int, int, error) {
	if b.SizeErr != nil {
		return 0, 0, b.SizeErr
	}
	return b.Width, b.Height, nil
}

func (b *Backend) Write(p []byte) error {
	if b.WriteErr != nil {
		return b.WriteErr
	}
	b.Out.Write(p)
	return nil
}

func (b *Backend) Read(p []byte) (int, error) {
	if len(b.chunks) == 0 {
		if b.ReadErr != nil {
			return 0, b.ReadErr
		}
		return 0, ErrNoInput
	}
	c := b.chunks[0]
	n := copy(p, c)
	if n < len(c) {
		b.chunks[0] = c[n:]
	} else {
		b.chunks = b.chunks[1:]
	}
	return n, nil
}

// Output returns everything written so far
func (b *Backend) Output() string {
	return b.Out.String()
}

// Screen replays the recorded output onto a width x height grid and returns its rows.
// Understands the subset of sequences the terminal package emits.
func (b *Backend) Screen() []string {
	g := newGrid(b.Width, b.Height)
	g.replay(b.Out.Bytes())
	return g.lines()
}

// Cursor returns the replayed cursor position and visibility
func (b *Backend) Cursor() (x, y int, visible bool) {
	g := newGrid(b.Width, b.Height)
	g.replay(b.Out.Bytes())
	return g.x, g.y, g.CursorVisible
}

// Reset discards recorded output
func (b *Backend) Reset() {
	b.Out.Reset()
}
