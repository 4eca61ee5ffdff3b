package termtest

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// grid is a minimal ANSI interpreter: cursor moves, erase, CR/LF, printable text
type grid struct {
	w, h          int
	cells         [][]rune
	x, y          int
	CursorVisible bool
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, CursorVisible: true}
	g.cells = make([][]rune, h)
	for i := range g.cells {
		g.cells[i] = []rune(strings.Repeat(" ", w))
	}
	return g
}

func (g *grid) replay(data []byte) {
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == 0x1b:
			i += g.escape(data[i:])
		case b == '\r':
			g.x = 0
			i++
		case b == '\n':
			g.y++
			i++
		default:
			r, size := utf8.DecodeRune(data[i:])
			g.put(r)
			i += size
		}
	}
}

func (g *grid) put(r rune) {
	if g.y >= 0 && g.y < g.h && g.x >= 0 && g.x < g.w {
		g.cells[g.y][g.x] = r
	}
	g.x++
}

// escape applies one sequence and returns its length
func (g *grid) escape(data []byte) int {
	if len(data) < 2 {
		return len(data)
	}
	if data[1] != '[' {
		return 2
	}
	end := 2
	for end < len(data) && !(data[end] >= 0x40 && data[end] <= 0x7e) {
		end++
	}
	if end >= len(data) {
		return len(data)
	}
	params := string(data[2:end])
	switch data[end] {
	case 'H':
		g.y, g.x = 0, 0
		if params != "" {
			parts := strings.Split(params, ";")
			if len(parts) == 2 {
				row, _ := strconv.Atoi(parts[0])
				col, _ := strconv.Atoi(parts[1])
				g.y, g.x = row-1, col-1
			}
		}
	case 'J':
		if params == "2" {
			for y := range g.cells {
				g.clearRow(y)
			}
		}
	case 'K':
		g.clearRow(g.y)
	case 'h', 'l':
		if params == "?25" {
			g.CursorVisible = data[end] == 'h'
		}
	}
	return end + 1
}

func (g *grid) clearRow(y int) {
	if y < 0 || y >= g.h {
		return
	}
	for x := range g.cells[y] {
		g.cells[y][x] = ' '
	}
}

func (g *grid) lines() []string {
	out := make([]string, g.h)
	for i, row := range g.cells {
		out[i] = strings.TrimRight(string(row), " ")
	}
	return out
}
