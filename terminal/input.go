package terminal

import "unicode/utf8"

const escByte = 0x1b

// keyReader turns the raw byte stream of a Backend into key events.
// Reads are synchronous: readEvent blocks in Backend.Read until a full key is available.
type keyReader struct {
	backend Backend

	// Pending bytes not yet parsed; a read can carry several keys or a partial sequence
	buf   []byte
	chunk [256]byte
}

func newKeyReader(backend Backend) *keyReader {
	return &keyReader{
		backend: backend,
		buf:     make([]byte, 0, 256),
	}
}

// readEvent returns the next key event, blocking for input when the buffer holds none
func (r *keyReader) readEvent() (Event, error) {
	for {
		for len(r.buf) > 0 {
			consumed, ev, ok := parseKey(r.buf)
			if consumed == 0 {
				// A lone ESC cannot be told apart from a sequence start without a timeout;
				// terminals deliver sequences in one write, so a trailing ESC is the key itself
				if len(r.buf) == 1 && r.buf[0] == escByte {
					consumed, ev, ok = 1, Event{Key: KeyEscape}, true
				} else {
					break
				}
			}
			r.discard(consumed)
			if ok {
				return ev, nil
			}
		}

		n, err := r.backend.Read(r.chunk[:])
		if err != nil {
			return Event{}, err
		}
		r.buf = append(r.buf, r.chunk[:n]...)
	}
}

// discard drops n parsed bytes from the front of the buffer
func (r *keyReader) discard(n int) {
	if n >= len(r.buf) {
		r.buf = r.buf[:0]
		return
	}
	copy(r.buf, r.buf[n:])
	r.buf = r.buf[:len(r.buf)-n]
}

// parseKey parses one key from the front of data.
// consumed == 0 means the data is an incomplete sequence; ok == false means
// the consumed bytes were an unknown sequence and produce no event.
func parseKey(data []byte) (consumed int, ev Event, ok bool) {
	b := data[0]

	switch {
	case b >= 0x20 && b < 0x7f:
		return 1, Event{Key: KeyRune, Rune: rune(b)}, true

	case b == escByte:
		return parseEscape(data)

	case b < 0x20:
		return 1, parseControl(b), true

	case b == 0x7f:
		return 1, Event{Key: KeyBackspace}, true
	}

	// UTF-8 multibyte
	if !utf8.FullRune(data) {
		return 0, Event{}, false
	}
	rn, size := utf8.DecodeRune(data)
	if rn == utf8.RuneError && size <= 1 {
		return 1, Event{}, false
	}
	return size, Event{Key: KeyRune, Rune: rn}, true
}

// parseEscape parses a sequence starting with ESC, returns 0 on incomplete
func parseEscape(data []byte) (int, Event, bool) {
	if len(data) < 2 {
		return 0, Event{}, false
	}

	switch c := data[1]; {
	case c == escByte:
		return 2, Event{Key: KeyEscape, Modifiers: ModAlt}, true
	case c == '[':
		return parseCSI(data)
	case c == 'O':
		return parseSS3(data)
	case c < 0x20:
		ev := parseControl(c)
		ev.Modifiers |= ModAlt
		return 2, ev, true
	case c < 0x7f:
		return 2, Event{Key: KeyRune, Rune: rune(c), Modifiers: ModAlt}, true
	}

	// ESC followed by a non-ASCII byte: emit the ESC alone
	return 1, Event{Key: KeyEscape}, true
}

// maxCSILen bounds the scan for a CSI terminator
const maxCSILen = 16

// parseCSI parses ESC [ params final
func parseCSI(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}

	// Linux console function keys: ESC [ [ A..E
	if data[2] == '[' {
		if len(data) < 4 {
			return 0, Event{}, false
		}
		if key, mod, ok := lookupCSI(data[2:4]); ok {
			return 4, Event{Key: key, Modifiers: mod}, true
		}
		return 4, Event{}, false
	}

	for end := 2; end < len(data); end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			end++
			if key, mod, ok := lookupCSI(data[2:end]); ok {
				return end, Event{Key: key, Modifiers: mod}, true
			}
			// Unknown but well-formed CSI, consume to prevent garbage
			return end, Event{}, false
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer only
			return 2, Event{}, false
		}
		if end-2 >= maxCSILen {
			return end + 1, Event{}, false
		}
	}
	return 0, Event{}, false
}

// parseSS3 parses ESC O final
func parseSS3(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Key: key, Modifiers: mod}, true
	}
	return 3, Event{}, false
}

// parseControl maps C0 control characters to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return Event{Key: KeyCtrlSpace}
	case 0x08:
		return Event{Key: KeyBackspace}
	case 0x09:
		return Event{Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Key: KeyEnter}
	case escByte:
		return Event{Key: KeyEscape}
	case 0x1c:
		return Event{Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Key: KeyCtrlUnderscore}
	}
	if k, ok := ctrlLetters[b]; ok {
		return Event{Key: k}
	}
	return Event{Key: KeyNone}
}

// ctrlLetters maps Ctrl+letter bytes that do not alias another key
var ctrlLetters = map[byte]Key{
	0x01: KeyCtrlA,
	0x02: KeyCtrlB,
	0x03: KeyCtrlC,
	0x04: KeyCtrlD,
	0x05: KeyCtrlE,
	0x06: KeyCtrlF,
	0x07: KeyCtrlG,
	0x0b: KeyCtrlK,
	0x0c: KeyCtrlL,
	0x0e: KeyCtrlN,
	0x0f: KeyCtrlO,
	0x10: KeyCtrlP,
	0x11: KeyCtrlQ,
	0x12: KeyCtrlR,
	0x13: KeyCtrlS,
	0x14: KeyCtrlT,
	0x15: KeyCtrlU,
	0x16: KeyCtrlV,
	0x17: KeyCtrlW,
	0x18: KeyCtrlX,
	0x19: KeyCtrlY,
	0x1a: KeyCtrlZ,
}
