//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/lixenwraith/hecto/core"
)

// openPTY returns a pseudo-terminal pair sized width x height, skipping when unavailable
func openPTY(t *testing.T, width, height int) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		tty.Close()
		ptmx.Close()
	})
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(height), Cols: uint16(width)}); err != nil {
		t.Fatalf("Setsize failed: %v", err)
	}
	return ptmx, tty
}

func TestUnixBackend_RawModeRoundTrip(t *testing.T) {
	_, tty := openPTY(t, 80, 24)
	b := newFileBackend(tty, tty)

	w, h, err := b.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if w != 80 || h != 24 {
		t.Errorf("Expected 80x24, got %dx%d", w, h)
	}

	before, err := term.GetState(int(tty.Fd()))
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}

	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := b.Fini(); err != nil {
		t.Fatalf("Fini failed: %v", err)
	}
	if err := b.Fini(); err != nil {
		t.Errorf("Second Fini should be a no-op, got %v", err)
	}

	after, err := term.GetState(int(tty.Fd()))
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if *before != *after {
		t.Error("Expected terminal state restored after Fini")
	}
}

func TestUnixBackend_NotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %v", err)
	}
	defer r.Close()
	defer w.Close()

	b := newFileBackend(r, w)
	if err := b.Init(); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Expected ErrNotTerminal, got %v", err)
	}
	if err := b.Fini(); err != nil {
		t.Errorf("Fini without Init should be a no-op, got %v", err)
	}
}

func TestTerminal_OverPTY(t *testing.T) {
	ptmx, tty := openPTY(t, 40, 10)

	tm, err := NewWithBackend(newFileBackend(tty, tty), ColorModeTrueColor)
	if err != nil {
		t.Fatalf("NewWithBackend failed: %v", err)
	}
	defer tm.Close()

	if got := tm.Size(); got != (core.Size{Width: 40, Height: 10}) {
		t.Errorf("Expected 40x10, got %+v", got)
	}

	// Raw mode: no line buffering, so a single arrow key is readable without Enter
	if _, err := ptmx.Write([]byte("\x1b[A")); err != nil {
		t.Fatalf("pty write failed: %v", err)
	}
	ev, err := tm.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if ev.Key != KeyUp {
		t.Errorf("Expected KeyUp, got %s", ev)
	}

	tm.MoveCursorTo(core.Position{X: 2, Y: 1})
	tm.WriteString("hi")
	if err := tm.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	got := readPTY(t, ptmx, "hi")
	if !strings.Contains(got, "\x1b[2;3Hhi") {
		t.Errorf("Expected cursor move then text, got %q", got)
	}
}

// readPTY reads from the master side until want appears or a deadline passes
func readPTY(t *testing.T, ptmx *os.File, want string) string {
	t.Helper()
	var sb strings.Builder
	buf := make([]byte, 256)
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(sb.String(), want) && time.Now().Before(deadline) {
		ptmx.SetReadDeadline(deadline)
		n, err := ptmx.Read(buf)
		sb.Write(buf[:n])
		if err != nil && !errors.Is(err, io.EOF) {
			break
		}
	}
	return sb.String()
}
