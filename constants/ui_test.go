package constants

import (
	"fmt"
	"strings"
	"testing"
)

// TestGoodbyeTextRawMode verifies the farewell line ends with CRLF so it lands at column 0 in raw mode
func TestGoodbyeTextRawMode(t *testing.T) {
	if !strings.HasSuffix(GoodbyeText, "\r\n") {
		t.Errorf("Expected GoodbyeText to end with \\r\\n, got %q", GoodbyeText)
	}
}

// TestBarRowsLayout verifies the reserved bar rows match the two drawn bars
func TestBarRowsLayout(t *testing.T) {
	if BarRows != 2 {
		t.Errorf("Expected 2 bar rows (status + message), got %d", BarRows)
	}
	if MessageTimeout <= 0 {
		t.Errorf("Expected positive message timeout, got %v", MessageTimeout)
	}
}

// TestHelpMessageFormat verifies the default help text is the format applied to the default key label
func TestHelpMessageFormat(t *testing.T) {
	if got := fmt.Sprintf(HelpMessageFormat, "Ctrl-Q"); got != HelpMessage {
		t.Errorf("Expected %q, got %q", HelpMessage, got)
	}
}
