package gizmo

// KeyState is the host keyboard query. Implementations report the live state
// of a modifier key; left and right variants count as the same key.
type KeyState interface {
	IsKeyDown(k Key) bool
}

// KeyStateFunc adapts a plain function to KeyState.
type KeyStateFunc func(k Key) bool

// IsKeyDown calls f(k).
func (f KeyStateFunc) IsKeyDown(k Key) bool {
	return f(k)
}

// probedKeys is the fixed order in which modifiers are appended.
var probedKeys = [...]Key{KeyShift, KeyControl, KeyAlt}

// ModifierProbe reads the host keyboard and records held modifiers on a
// snapshot that is still being built.
type ModifierProbe struct {
	Keys KeyState
}

// Augment appends an entry for every held modifier key. Keys are read fresh
// on each call. A probe without a KeyState appends nothing.
func (p ModifierProbe) Augment(evt *InputSnapshot) {
	if p.Keys == nil {
		return
	}
	for _, k := range probedKeys {
		if p.Keys.IsKeyDown(k) {
			evt.Modifiers = append(evt.Modifiers, ActiveButton{Key: k, JustPressed: false, Down: true})
		}
	}
}
