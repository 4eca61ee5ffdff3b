package editor

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/hecto/core"
	"github.com/lixenwraith/hecto/document"
	"github.com/lixenwraith/hecto/terminal"
)

func TestMoveCursor_WrapAcrossRows(t *testing.T) {
	f := newFixture(t, 80, 24, document.FromLines([]string{"abc", "de"}))
	f.ed.cursor = core.Position{X: 3, Y: 0}

	f.ed.processKey(keyEvent(terminal.KeyRight))
	if diff := cmp.Diff(core.Position{X: 0, Y: 1}, f.ed.Cursor()); diff != "" {
		t.Errorf("Right at row end (-want +got):\n%s", diff)
	}

	f.ed.processKey(keyEvent(terminal.KeyLeft))
	if diff := cmp.Diff(core.Position{X: 3, Y: 0}, f.ed.Cursor()); diff != "" {
		t.Errorf("Left at row start (-want +got):\n%s", diff)
	}
}

func TestMoveCursor(t *testing.T) {
	lines := []string{"hello world", "hi", "", "ábc"}

	tests := []struct {
		name     string
		start    core.Position
		key      terminal.Key
		expected core.Position
	}{
		{"up at top stays", core.Position{X: 2, Y: 0}, terminal.KeyUp, core.Position{X: 2, Y: 0}},
		{"up clamps x to shorter row", core.Position{X: 9, Y: 2}, terminal.KeyUp, core.Position{X: 2, Y: 1}},
		{"down clamps x", core.Position{X: 8, Y: 0}, terminal.KeyDown, core.Position{X: 2, Y: 1}},
		{"down reaches one past last row", core.Position{X: 3, Y: 3}, terminal.KeyDown, core.Position{X: 0, Y: 4}},
		{"down at past-end stays", core.Position{X: 0, Y: 4}, terminal.KeyDown, core.Position{X: 0, Y: 4}},
		{"left at origin stays", core.Position{}, terminal.KeyLeft, core.Position{}},
		{"left from past-end row", core.Position{X: 0, Y: 4}, terminal.KeyLeft, core.Position{X: 3, Y: 3}},
		{"left into empty row", core.Position{X: 0, Y: 3}, terminal.KeyLeft, core.Position{X: 0, Y: 2}},
		{"right within row", core.Position{X: 1, Y: 0}, terminal.KeyRight, core.Position{X: 2, Y: 0}},
		{"right over combining cluster", core.Position{X: 0, Y: 3}, terminal.KeyRight, core.Position{X: 1, Y: 3}},
		{"right at last row end", core.Position{X: 3, Y: 3}, terminal.KeyRight, core.Position{X: 0, Y: 4}},
		{"right at past-end stays", core.Position{X: 0, Y: 4}, terminal.KeyRight, core.Position{X: 0, Y: 4}},
		{"home", core.Position{X: 7, Y: 0}, terminal.KeyHome, core.Position{X: 0, Y: 0}},
		{"end", core.Position{X: 1, Y: 0}, terminal.KeyEnd, core.Position{X: 11, Y: 0}},
		{"end on empty row", core.Position{X: 0, Y: 2}, terminal.KeyEnd, core.Position{X: 0, Y: 2}},
		{"unbound key is noop", core.Position{X: 1, Y: 1}, terminal.KeyEnter, core.Position{X: 1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 80, 24, document.FromLines(lines))
			f.ed.cursor = tt.start
			f.ed.processKey(keyEvent(tt.key))
			if diff := cmp.Diff(tt.expected, f.ed.Cursor()); diff != "" {
				t.Errorf("Cursor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveCursor_Page(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "line"
	}

	// 12 rows - 2 bars = 10 text rows, step 5
	f := newFixture(t, 80, 12, document.FromLines(lines))

	f.ed.processKey(keyEvent(terminal.KeyPageDown))
	if got := f.ed.Cursor().Y; got != 5 {
		t.Errorf("Expected y=5 after page down, got %d", got)
	}

	f.ed.processKey(keyEvent(terminal.KeyPageUp))
	f.ed.processKey(keyEvent(terminal.KeyPageUp))
	if got := f.ed.Cursor().Y; got != 0 {
		t.Errorf("Expected y clamped to 0, got %d", got)
	}

	for i := 0; i < 30; i++ {
		f.ed.processKey(keyEvent(terminal.KeyPageDown))
	}
	if got := f.ed.Cursor().Y; got != 100 {
		t.Errorf("Expected y clamped to line count 100, got %d", got)
	}
}

func TestMoveCursor_PageTinyViewport(t *testing.T) {
	// Height 3 leaves one text row; a page still moves one row
	f := newFixture(t, 80, 3, document.FromLines([]string{"a", "b", "c"}))
	f.ed.processKey(keyEvent(terminal.KeyPageDown))
	if got := f.ed.Cursor().Y; got != 1 {
		t.Errorf("Expected y=1, got %d", got)
	}
}

// TestMovementInvariants walks random key sequences and checks bounds and scroll containment
func TestMovementInvariants(t *testing.T) {
	docs := map[string][]string{
		"empty":  nil,
		"single": {"only line"},
		"mixed":  {"abc", "", "a much longer line than the viewport is wide", "日本語", "éé", "x"},
	}
	keys := []terminal.Key{
		terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight,
		terminal.KeyPageUp, terminal.KeyPageDown, terminal.KeyHome, terminal.KeyEnd,
		terminal.KeyEnter,
	}
	sizes := []core.Size{{Width: 10, Height: 6}, {Width: 80, Height: 24}, {Width: 3, Height: 3}}

	rng := rand.New(rand.NewSource(42))

	for name, lines := range docs {
		for _, size := range sizes {
			f := newFixture(t, size.Width, size.Height, document.FromLines(lines))
			vp := f.ed.viewport()
			h := f.ed.doc.LineCount()

			for step := 0; step < 2000; step++ {
				f.ed.processKey(keyEvent(keys[rng.Intn(len(keys))]))
				c, o := f.ed.Cursor(), f.ed.Offset()

				if c.Y < 0 || c.Y > h {
					t.Fatalf("%s %v step %d: y=%d out of [0,%d]", name, size, step, c.Y, h)
				}
				if c.X < 0 || c.X > f.ed.rowLen(c.Y) {
					t.Fatalf("%s %v step %d: x=%d out of [0,%d]", name, size, step, c.X, f.ed.rowLen(c.Y))
				}
				if c.Y == h && c.X != 0 {
					t.Fatalf("%s %v step %d: x=%d on past-end row", name, size, step, c.X)
				}
				if o.Y > c.Y || c.Y >= o.Y+vp.Height {
					t.Fatalf("%s %v step %d: cursor y=%d outside viewport [%d,%d)", name, size, step, c.Y, o.Y, o.Y+vp.Height)
				}
				if o.X > c.X || c.X >= o.X+vp.Width {
					t.Fatalf("%s %v step %d: cursor x=%d outside viewport [%d,%d)", name, size, step, c.X, o.X, o.X+vp.Width)
				}
			}
		}
	}
}
