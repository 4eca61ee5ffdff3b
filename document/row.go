package document

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Row is one immutable line of text split into grapheme clusters
type Row struct {
	text      string
	graphemes []string
}

// NewRow segments a line into grapheme clusters
func NewRow(line string) Row {
	if line == "" {
		return Row{}
	}

	graphemes := make([]string, 0, len(line))
	state := -1
	rest := line
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		graphemes = append(graphemes, cluster)
	}
	return Row{text: line, graphemes: graphemes}
}

// Len returns the display length in grapheme clusters
func (r Row) Len() int {
	return len(r.graphemes)
}

// IsEmpty reports whether the row has no clusters
func (r Row) IsEmpty() bool {
	return len(r.graphemes) == 0
}

// String returns the source text of the row
func (r Row) String() string {
	return r.text
}

// Render returns the clusters in columns [start, end).
// end is clamped to Len and start to end, so out-of-range and inverted ranges yield "".
// Tabs render as one space; other control characters render as '?'.
func (r Row) Render(start, end int) string {
	end = min(end, len(r.graphemes))
	start = min(max(start, 0), end)
	if start >= end {
		return ""
	}

	var b strings.Builder
	for _, g := range r.graphemes[start:end] {
		writeCluster(&b, g)
	}
	return b.String()
}

// Printable applies the row substitution rules to arbitrary text such as a file name
func Printable(s string) string {
	var b strings.Builder
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		writeCluster(&b, cluster)
	}
	return b.String()
}

func writeCluster(b *strings.Builder, g string) {
	switch {
	case g == "\t":
		b.WriteByte(' ')
	case isControl(g):
		b.WriteByte('?')
	default:
		b.WriteString(g)
	}
}

// isControl reports whether a cluster consists only of control runes, such as "\x1b" or "\r\n"
func isControl(g string) bool {
	for _, r := range g {
		if !unicode.IsControl(r) {
			return false
		}
	}
	return g != ""
}
