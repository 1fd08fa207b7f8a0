package gizmo

// Point is an integer position in view-space pixels. The origin is the
// top-left corner of the viewport with Y increasing downward.
type Point struct {
	X, Y int
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// MouseButton identifies a mouse button by its bit position in a ButtonMask.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// String returns a human-readable button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ButtonMask is a bitset of mouse buttons. Bit n corresponds to MouseButton(n).
type ButtonMask uint32

// Mask returns the single-bit mask for b.
func (b MouseButton) Mask() ButtonMask {
	return 1 << b
}

// Has reports whether b is set in m.
func (m ButtonMask) Has(b MouseButton) bool {
	return m&b.Mask() != 0
}

// Key identifies a modifier key tracked in an InputSnapshot.
type Key uint8

const (
	KeyShift   Key = iota // either Shift key
	KeyControl            // either Control key
	KeyAlt                // either Alt / Option key
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyShift:
		return "shift"
	case KeyControl:
		return "control"
	case KeyAlt:
		return "alt"
	default:
		return "unknown"
	}
}

// ChangeType identifies a kind of ActiveManipulatorContext notification.
type ChangeType uint8

const (
	ManipulatorSetChanged    ChangeType = iota // the owned manipulator set was replaced
	ActiveManipulatorChanged                   // the active manipulator name changed
	ManipulatorActivated                       // SetActivationState(true) was called
	ManipulatorDeactivated                     // SetActivationState(false) was called
)

// String returns a human-readable change name.
func (c ChangeType) String() string {
	switch c {
	case ManipulatorSetChanged:
		return "manipulator-set-changed"
	case ActiveManipulatorChanged:
		return "active-manipulator-changed"
	case ManipulatorActivated:
		return "activated"
	case ManipulatorDeactivated:
		return "deactivated"
	default:
		return "unknown"
	}
}
