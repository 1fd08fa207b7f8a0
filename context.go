package gizmo

import (
	"io"
	"reflect"
)

// ManipulatorEvent describes a change in an ActiveManipulatorContext.
type ManipulatorEvent struct {
	Type ChangeType
	// Name is the active manipulator name after the change.
	Name string
	// PrevName is the active name before an ActiveManipulatorChanged event.
	PrevName string
	// Manipulator is the activated or deactivated manipulator for activation
	// events, and the newly resolved one (possibly nil) otherwise.
	Manipulator Manipulator
}

// EventSink is the interface for optional external forwarding of context
// events, for example into an ECS world.
type EventSink interface {
	EmitEvent(event ManipulatorEvent)
}

// --- Handler registry ---

type changeHandler struct {
	id uint32
	fn func(ManipulatorEvent)
}

type handlerRegistry struct {
	setChange    []changeHandler
	activeChange []changeHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered change callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event ChangeType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case ManipulatorSetChanged:
		h.reg.setChange = removeChangeHandler(h.reg.setChange, h.id)
	case ActiveManipulatorChanged:
		h.reg.activeChange = removeChangeHandler(h.reg.activeChange, h.id)
	}
}

func removeChangeHandler(s []changeHandler, id uint32) []changeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// ActiveManipulatorContext tracks which manipulator receives input. It owns
// the manipulator set assigned to it and calls SetActivationState whenever
// the resolved manipulator changes identity.
//
// The context does no locking. Set and name changes must happen on the same
// goroutine that dispatches input.
type ActiveManipulatorContext struct {
	set    ManipulatorSet
	active string

	handlers handlerRegistry
	sink     EventSink
	debug    bool
}

// NewActiveManipulatorContext creates an unbound context: no set and no
// active name.
func NewActiveManipulatorContext() *ActiveManipulatorContext {
	return &ActiveManipulatorContext{}
}

// ManipulatorSet returns the current set, or nil.
func (c *ActiveManipulatorContext) ManipulatorSet() ManipulatorSet {
	return c.set
}

// SetManipulatorSet replaces the owned set. Assigning the current set again
// does nothing. Otherwise the previous set is closed if it implements
// io.Closer, the activation transition runs if the resolved manipulator
// changed, and ManipulatorSetChanged callbacks fire.
func (c *ActiveManipulatorContext) SetManipulatorSet(set ManipulatorSet) {
	if sameIdentity(set, c.set) {
		return
	}
	oldM, oldOK := c.Resolve()
	prev := c.set
	c.set = set
	newM, newOK := c.Resolve()

	c.transition(c.active, oldM, oldOK, newM, newOK)

	// Close after deactivation: the set owns its manipulators.
	if closer, ok := prev.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			debugf(c.debug, "close replaced manipulator set: %v", err)
		}
	}

	c.notify(c.handlers.setChange, ManipulatorEvent{
		Type:        ManipulatorSetChanged,
		Name:        c.active,
		Manipulator: newM,
	})
}

// ActiveManipulatorName returns the active name, empty when none is selected.
func (c *ActiveManipulatorContext) ActiveManipulatorName() string {
	return c.active
}

// SetActiveManipulatorName selects the manipulator that receives input.
// Setting the current name again does nothing. Any other change fires
// ActiveManipulatorChanged, even when both names resolve to the same
// manipulator; activation hooks run only when the resolved manipulator
// differs.
func (c *ActiveManipulatorContext) SetActiveManipulatorName(name string) {
	if name == c.active {
		return
	}
	oldM, oldOK := c.Resolve()
	prevName := c.active
	c.active = name
	newM, newOK := c.Resolve()

	c.transition(prevName, oldM, oldOK, newM, newOK)

	c.notify(c.handlers.activeChange, ManipulatorEvent{
		Type:        ActiveManipulatorChanged,
		Name:        name,
		PrevName:    prevName,
		Manipulator: newM,
	})
}

// Resolve looks up the active name in the current set. It reports false when
// there is no set, no active name, or no manipulator under that name.
func (c *ActiveManipulatorContext) Resolve() (Manipulator, bool) {
	if c.set == nil || c.active == "" {
		return nil, false
	}
	m, ok := c.set.GetManipulator(c.active)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

// OnManipulatorSetChange registers a callback fired after the set changes.
func (c *ActiveManipulatorContext) OnManipulatorSetChange(fn func(ManipulatorEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.setChange = append(c.handlers.setChange, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: ManipulatorSetChanged}
}

// OnActiveManipulatorChange registers a callback fired after the active name
// changes.
func (c *ActiveManipulatorContext) OnActiveManipulatorChange(fn func(ManipulatorEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.activeChange = append(c.handlers.activeChange, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: ActiveManipulatorChanged}
}

// SetEventSink sets the optional external event bridge. The sink receives
// every change and activation event.
func (c *ActiveManipulatorContext) SetEventSink(sink EventSink) {
	c.sink = sink
}

// SetDebugMode enables stderr logging of transitions.
func (c *ActiveManipulatorContext) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Close deactivates the resolved manipulator and releases the owned set.
// The context is left unbound; the active name is kept.
func (c *ActiveManipulatorContext) Close() {
	if m, ok := c.Resolve(); ok {
		c.setActivation(m, c.active, false)
	}
	if closer, ok := c.set.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			debugf(c.debug, "close manipulator set: %v", err)
		}
	}
	c.set = nil
}

// transition runs activation hooks when the resolved manipulator changed.
// oldM was resolved under prevName.
func (c *ActiveManipulatorContext) transition(prevName string, oldM Manipulator, oldOK bool, newM Manipulator, newOK bool) {
	if oldOK == newOK && (!oldOK || sameIdentity(oldM, newM)) {
		return
	}
	if oldOK {
		c.setActivation(oldM, prevName, false)
	}
	if newOK {
		c.setActivation(newM, c.active, true)
	}
}

func (c *ActiveManipulatorContext) setActivation(m Manipulator, name string, active bool) {
	m.SetActivationState(active)
	typ := ManipulatorDeactivated
	if active {
		typ = ManipulatorActivated
	}
	debugf(c.debug, "%s %q", typ, name)
	if c.sink != nil {
		c.sink.EmitEvent(ManipulatorEvent{Type: typ, Name: name, Manipulator: m})
	}
}

func (c *ActiveManipulatorContext) notify(handlers []changeHandler, evt ManipulatorEvent) {
	debugf(c.debug, "%s %q", evt.Type, evt.Name)
	// Callbacks may remove themselves, which shifts handlers in place.
	for _, h := range append([]changeHandler(nil), handlers...) {
		if h.fn != nil {
			h.fn(evt)
		}
	}
	if c.sink != nil {
		c.sink.EmitEvent(evt)
	}
}

// sameIdentity reports whether a and b are the same set or manipulator.
// Comparable values use ==; maps, slices, funcs, channels and pointers
// compare by reference. Any other non-comparable values are distinct.
func sameIdentity(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	return false
}
