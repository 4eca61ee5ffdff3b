package editor

import "time"

// statusMessage is the transient message bar entry
type statusMessage struct {
	text  string
	setAt time.Time
}

// visible reports whether the message is still inside its display window
func (m statusMessage) visible(now time.Time, timeout time.Duration) bool {
	return m.text != "" && now.Sub(m.setAt) < timeout
}
