package editor

import (
	"time"

	"github.com/lixenwraith/hecto/constants"
	"github.com/lixenwraith/hecto/terminal"
)

// Config holds the editor settings resolved from flags
type Config struct {
	// QuitKey ends the session
	QuitKey terminal.Key

	// Status bar colors
	StatusFg terminal.RGB
	StatusBg terminal.RGB

	// MessageTimeout is how long a message bar entry stays visible
	MessageTimeout time.Duration

	// InitialMessage is shown in the message bar at startup
	InitialMessage string

	// Banner formats the welcome line for an empty document; nil draws the empty row marker
	Banner func(width int) string

	// Now is the clock used for message expiry
	Now func() time.Time
}

// DefaultConfig returns the built-in settings
func DefaultConfig() Config {
	return Config{
		QuitKey:        terminal.KeyCtrlQ,
		StatusFg:       mustParseColor(constants.StatusForeground),
		StatusBg:       mustParseColor(constants.StatusBackground),
		MessageTimeout: constants.MessageTimeout,
		InitialMessage: constants.HelpMessage,
		Now:            time.Now,
	}
}

func mustParseColor(s string) terminal.RGB {
	c, err := terminal.ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
