package core

import "math"

// MaxCoord is the largest coordinate a terminal device can address
const MaxCoord = math.MaxUint16

// Position is a cursor or offset coordinate in document space
// Y is the row index, X the grapheme column within that row
type Position struct {
	X, Y int
}

// Sub returns p - o with each axis clamped to >= 0
func (p Position) Sub(o Position) Position {
	return Position{X: max(p.X-o.X, 0), Y: max(p.Y-o.Y, 0)}
}

// Size holds terminal dimensions in character cells
type Size struct {
	Width, Height int
}

// SaturatingInc returns n+1, saturating at MaxCoord; negative input maps to 1
func SaturatingInc(n int) int {
	if n < 0 {
		return 1
	}
	if n >= MaxCoord {
		return MaxCoord
	}
	return n + 1
}
