package gizmo

import "sort"

// Manipulator is an interactive scene-editing tool. It sees input only as
// press, hold and release of buttons plus modifiers; how the host produced
// those (mouse, touch, drag gestures) is hidden by the dispatch layer.
//
// Manipulators are compared by identity to decide activation transitions.
// Pointer types are the norm; map and func types compare by reference.
type Manipulator interface {
	// OnInputEvent handles one event. The hit-test context and scene are
	// valid only for the duration of the call.
	OnInputEvent(evt InputSnapshot, hit *HitTestContext, scene IntersectionScene) bool
	// SetActivationState is called with true when the manipulator becomes
	// the active one and with false when it stops being active.
	SetActivationState(active bool)
	// Render draws the manipulator's gizmo.
	Render(rc *RenderContext)
}

// ManipulatorSet maps names to manipulators. A set may also implement
// io.Closer; ActiveManipulatorContext closes a set it replaces.
type ManipulatorSet interface {
	GetManipulator(name string) (Manipulator, bool)
}

// Registry is a map-backed ManipulatorSet. Several names may refer to the
// same manipulator.
type Registry struct {
	manips map[string]Manipulator
	closed bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{manips: make(map[string]Manipulator)}
}

// Register adds m under name, replacing any previous entry. The zero
// Registry is ready to use.
func (r *Registry) Register(name string, m Manipulator) *Registry {
	if r.manips == nil {
		r.manips = make(map[string]Manipulator)
	}
	r.manips[name] = m
	return r
}

// Unregister removes the entry for name.
func (r *Registry) Unregister(name string) {
	delete(r.manips, name)
}

// GetManipulator returns the manipulator registered under name.
func (r *Registry) GetManipulator(name string) (Manipulator, bool) {
	m, ok := r.manips[name]
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.manips))
	for name := range r.manips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close drops every entry. The registry stays usable but empty.
func (r *Registry) Close() error {
	r.manips = make(map[string]Manipulator)
	r.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (r *Registry) Closed() bool {
	return r.closed
}
