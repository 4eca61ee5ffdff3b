package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // Configured quit chord, Ctrl+Q by default
	IntentMotion // Arrows, Home/End, PageUp/PageDown
)

// MotionOp identifies a cursor movement
type MotionOp uint8

const (
	MotionNone MotionOp = iota
	MotionUp
	MotionDown
	MotionLeft
	MotionRight
	MotionPageUp
	MotionPageDown
	MotionHome
	MotionEnd
)

var motionNames = [...]string{
	MotionNone:     "none",
	MotionUp:       "up",
	MotionDown:     "down",
	MotionLeft:     "left",
	MotionRight:    "right",
	MotionPageUp:   "page_up",
	MotionPageDown: "page_down",
	MotionHome:     "home",
	MotionEnd:      "end",
}

func (m MotionOp) String() string {
	if int(m) < len(motionNames) {
		return motionNames[m]
	}
	return "unknown"
}

// Intent is the classified meaning of one key event
type Intent struct {
	Type   IntentType
	Motion MotionOp
}

func (i Intent) String() string {
	switch i.Type {
	case IntentQuit:
		return "quit"
	case IntentMotion:
		return "motion:" + i.Motion.String()
	}
	return "none"
}
