package editor

import (
	"testing"
	"time"

	"github.com/lixenwraith/hecto/document"
	"github.com/lixenwraith/hecto/terminal"
	"github.com/lixenwraith/hecto/terminal/termtest"
)

// testClock is a settable clock for message expiry
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	ed      *Editor
	backend *termtest.Backend
	term    *terminal.Terminal
	clock   *testClock
}

// newFixture builds an editor over lines on a width x height fake device
func newFixture(t *testing.T, width, height int, doc *document.Document, input ...string) *fixture {
	t.Helper()

	b := termtest.New(width, height, input...)
	term, err := terminal.NewWithBackend(b, terminal.ColorModeTrueColor)
	if err != nil {
		t.Fatalf("NewWithBackend failed: %v", err)
	}
	t.Cleanup(func() { term.Close() })

	clock := &testClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	cfg := DefaultConfig()
	cfg.Now = clock.Now

	return &fixture{
		ed:      New(term, doc, cfg),
		backend: b,
		term:    term,
		clock:   clock,
	}
}

func keyEvent(k terminal.Key) terminal.Event {
	return terminal.Event{Key: k}
}
