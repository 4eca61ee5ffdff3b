package terminal

import (
	"bufio"

	"github.com/lixenwraith/hecto/core"
)

// Pre-allocated ANSI sequence fragments
var (
	// CSI sequences
	csi       = []byte("\x1b[")
	csiClear  = []byte("\x1b[2J")
	csiHome   = []byte("\x1b[H")
	csiEraseL = []byte("\x1b[2K")
	csiRIS    = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0   = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Color prefixes
	csiFg256     = []byte("\x1b[38;5;") // followed by N;m
	csiBg256     = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;B;m
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes the positioning sequence for a 0-indexed position
// Device addressing is 1-based; coordinates saturate at core.MaxCoord
func writeCursorPos(w *bufio.Writer, pos core.Position) {
	w.Write(csi)
	writeInt(w, core.SaturatingInc(pos.Y))
	w.WriteByte(';')
	writeInt(w, core.SaturatingInc(pos.X))
	w.WriteByte('H')
}

// writeFg writes a foreground color sequence for the given color mode
func writeFg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorMode256 {
		w.Write(csiFg256)
		writeInt(w, int(RGBTo256(c)))
		w.WriteByte('m')
		return
	}
	w.Write(csiFgRGB)
	writeRGB(w, c)
}

// writeBg writes a background color sequence for the given color mode
func writeBg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorMode256 {
		w.Write(csiBg256)
		writeInt(w, int(RGBTo256(c)))
		w.WriteByte('m')
		return
	}
	w.Write(csiBgRGB)
	writeRGB(w, c)
}

func writeRGB(w *bufio.Writer, c RGB) {
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
	w.WriteByte('m')
}
