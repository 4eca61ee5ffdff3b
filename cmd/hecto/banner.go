package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hecto/constants"
)

// welcomeBanner centers the version line in width cells behind the row marker, truncated to width
func welcomeBanner(width int) string {
	if width <= 0 {
		return ""
	}
	msg := fmt.Sprintf(constants.BannerFormat, constants.Version)
	pad := max((width-runewidth.StringWidth(msg))/2, 1)
	line := constants.EmptyRowMarker + strings.Repeat(" ", pad-1) + msg
	return runewidth.Truncate(line, width, "")
}
