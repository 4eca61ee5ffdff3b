package terminal

import (
	"strconv"
	"strings"
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Event is one parsed key event
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// CSI final bytes for cursor keys: ESC [ X or ESC [ 1 ; mod X
var csiFinalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// CSI numeric codes terminated by '~': ESC [ code ~ or ESC [ code ; mod ~
// Home and End have two spellings each (vt220 1/4, rxvt 7/8)
var csiTildeKeys = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd,
	5: KeyPageUp, 6: KeyPageDown, 7: KeyHome, 8: KeyEnd,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
}

// Linux console function keys: ESC [ [ A..E
var linuxFKeys = map[byte]Key{'A': KeyF1, 'B': KeyF2, 'C': KeyF3, 'D': KeyF4, 'E': KeyF5}

// SS3 finals: ESC O X
var ss3Keys = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
	'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
}

// lookupCSI resolves the bytes after ESC [ up to and including the final byte
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if len(seq) == 0 {
		return KeyNone, ModNone, false
	}
	final, params := seq[len(seq)-1], seq[:len(seq)-1]

	switch {
	case len(params) == 1 && params[0] == '[':
		k, ok := linuxFKeys[final]
		return k, ModNone, ok
	case final == 'Z' && len(params) == 0:
		return KeyBacktab, ModShift, true
	}

	code, mod, ok := csiParams(params)
	if !ok {
		return KeyNone, ModNone, false
	}
	if final == '~' {
		k, ok := csiTildeKeys[code]
		return k, mod, ok
	}
	// Modified cursor keys always carry code 1
	k, ok := csiFinalKeys[final]
	if !ok || code > 1 {
		return KeyNone, ModNone, false
	}
	return k, mod, true
}

// csiParams decodes "code[;mod]". xterm sends mod as 1 + (shift|alt<<1|ctrl<<2),
// which lines up with the Modifier bits.
func csiParams(p []byte) (code int, mod Modifier, ok bool) {
	codeStr, modStr, hasMod := strings.Cut(string(p), ";")
	if codeStr != "" {
		n, err := strconv.Atoi(codeStr)
		if err != nil {
			return 0, ModNone, false
		}
		code = n
	}
	if hasMod {
		m, err := strconv.Atoi(modStr)
		if err != nil || m < 1 {
			return 0, ModNone, false
		}
		mod = Modifier(m-1) & (ModShift | ModAlt | ModCtrl)
	}
	return code, mod, true
}

func lookupSS3(seq []byte) (Key, Modifier, bool) {
	if len(seq) != 1 {
		return KeyNone, ModNone, false
	}
	k, ok := ss3Keys[seq[0]]
	return k, ModNone, ok
}
