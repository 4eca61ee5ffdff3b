package constants

import "time"

// Version is reported by -version and the welcome banner
const Version = "0.1.0"

// UI Layout Constants
const (
	// BarRows is the number of bottom rows reserved for the status and message bars
	BarRows = 2

	// EmptyRowMarker is drawn on screen rows past the end of the document
	EmptyRowMarker = "~"

	// NoNameLabel identifies an unnamed document in the status bar
	NoNameLabel = "[No Name]"

	// StatusNameWidth is the maximum cell width of the file name in the status bar
	StatusNameWidth = 20

	// GoodbyeText is printed once when the editor quits
	GoodbyeText = "Goodbye.\r\n"

	// HelpMessage is the initial message bar text for the default quit key
	HelpMessage = "HELP: Ctrl-Q = quit"

	// HelpMessageFormat builds the help text for a configured quit key label
	HelpMessageFormat = "HELP: %s = quit"

	// OpenErrorFormat is shown in the message bar when the file argument cannot be read
	OpenErrorFormat = "ERR: Could not open file: %s"

	// BannerFormat is the welcome line drawn for an empty document
	BannerFormat = "Hecto editor -- version %s"
)

// UI Timing Constants
const (
	// MessageTimeout is how long a message stays visible in the message bar
	MessageTimeout = 5 * time.Second
)

// Status bar colors as 0xRRGGBB, parsed by terminal.ParseColor
const (
	StatusForeground = "#3f3f3f"
	StatusBackground = "#efefef"
)

// DefaultQuitKey is the key name that ends the session
const DefaultQuitKey = "ctrl_q"
