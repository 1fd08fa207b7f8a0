package gizmo

// ActiveButton is a key that is held while an input event is dispatched.
type ActiveButton struct {
	Key Key
	// JustPressed is true only on the event where the key went down.
	JustPressed bool
	// Down is true while the key is held.
	Down bool
}

// InputSnapshot is one normalized input event. A snapshot is built per
// dispatch and handed to the manipulator by value; the layer never keeps it.
//
// Pressed holds the level state of the buttons. Transitioned marks the
// buttons whose state changed on this event, so a button in both masks has
// just gone down and a button only in Transitioned has just been released.
type InputSnapshot struct {
	Pressed      ButtonMask
	Transitioned ButtonMask
	Wheel        int
	Cursor       Point
	PrevCursor   Point
	Modifiers    []ActiveButton
}

// NewInputSnapshot stores the given values without validation. Zero masks
// describe a plain hover event.
func NewInputSnapshot(pressed, transitioned ButtonMask, wheel int, cursor, prev Point) InputSnapshot {
	return InputSnapshot{
		Pressed:      pressed,
		Transitioned: transitioned,
		Wheel:        wheel,
		Cursor:       cursor,
		PrevCursor:   prev,
	}
}

// IsHeld reports whether b is down on this event.
func (s InputSnapshot) IsHeld(b MouseButton) bool {
	return s.Pressed.Has(b)
}

// IsPress reports whether b went down on this event.
func (s InputSnapshot) IsPress(b MouseButton) bool {
	return s.Pressed.Has(b) && s.Transitioned.Has(b)
}

// IsRelease reports whether b was released on this event.
func (s InputSnapshot) IsRelease(b MouseButton) bool {
	return !s.Pressed.Has(b) && s.Transitioned.Has(b)
}

// IsKeyDown reports whether k is held according to the modifier entries.
func (s InputSnapshot) IsKeyDown(k Key) bool {
	for _, m := range s.Modifiers {
		if m.Key == k && m.Down {
			return true
		}
	}
	return false
}

// Delta returns the cursor movement since the previous event.
func (s InputSnapshot) Delta() Point {
	return s.Cursor.Sub(s.PrevCursor)
}
