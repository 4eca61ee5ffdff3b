package document

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single line read by Load
const maxLineSize = 16 * 1024 * 1024

// Document is an ordered, read-only sequence of rows; row i is source line i
type Document struct {
	name string
	rows []Row
}

// FromLines builds an unnamed document with one row per line, order preserved
func FromLines(lines []string) *Document {
	rows := make([]Row, len(lines))
	for i, l := range lines {
		rows[i] = NewRow(l)
	}
	return &Document{rows: rows}
}

// Empty returns a named document with no rows
func Empty(name string) *Document {
	return &Document{name: name}
}

// Load reads lines from r and names the document.
// Line terminators (LF or CRLF) are stripped; a trailing terminator does not add a row.
func Load(name string, r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	doc := FromLines(lines)
	doc.name = name
	return doc, nil
}

// Name returns the source name, empty for unnamed documents
func (d *Document) Name() string {
	return d.name
}

// RowAt returns the row at index; ok is false past the end or for negative indices
func (d *Document) RowAt(index int) (row Row, ok bool) {
	if index < 0 || index >= len(d.rows) {
		return Row{}, false
	}
	return d.rows[index], true
}

// LineCount returns the number of rows
func (d *Document) LineCount() int {
	return len(d.rows)
}

// IsEmpty reports whether the document has no rows
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}
