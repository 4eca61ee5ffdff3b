package input

import "github.com/lixenwraith/hecto/terminal"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[terminal.Key]Intent
}

// DefaultKeyTable returns the navigation bindings plus the given quit key
func DefaultKeyTable(quit terminal.Key) *KeyTable {
	t := &KeyTable{
		SpecialKeys: map[terminal.Key]Intent{
			terminal.KeyUp:       {IntentMotion, MotionUp},
			terminal.KeyDown:     {IntentMotion, MotionDown},
			terminal.KeyLeft:     {IntentMotion, MotionLeft},
			terminal.KeyRight:    {IntentMotion, MotionRight},
			terminal.KeyPageUp:   {IntentMotion, MotionPageUp},
			terminal.KeyPageDown: {IntentMotion, MotionPageDown},
			terminal.KeyHome:     {IntentMotion, MotionHome},
			terminal.KeyEnd:      {IntentMotion, MotionEnd},
		},
	}
	// Quit overrides a navigation binding if configured onto one
	t.SpecialKeys[quit] = Intent{Type: IntentQuit}
	return t
}

// Classify maps an event to its intent; unbound keys are IntentNone.
// Modifiers are ignored, so Ctrl+Left moves like Left.
func (t *KeyTable) Classify(ev terminal.Event) Intent {
	if ev.Key == terminal.KeyNone || ev.Key == terminal.KeyRune {
		return Intent{}
	}
	return t.SpecialKeys[ev.Key]
}
