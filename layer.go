package gizmo

// LayerConfig holds optional settings for a DispatchLayer. The zero value is
// usable: left button, no modifier probing, debug off.
type LayerConfig struct {
	// PrimaryButton is the button that drag gestures are reported as.
	PrimaryButton MouseButton
	// Keys is the host keyboard query used to record held modifiers. When
	// nil, snapshots never carry modifiers.
	Keys KeyState
	// Debug logs every dispatched and dropped event to stderr.
	Debug bool
}

// DispatchLayer is the entry point the host UI calls for one interactive
// view. It turns host gestures into InputSnapshots and delivers them, with a
// fresh hit-test context and intersection scene, to the active manipulator.
//
// Every method returns whether a manipulator received the event. False means
// nothing is active and the host should handle the input itself.
type DispatchLayer struct {
	ctx    *ActiveManipulatorContext
	probe  ModifierProbe
	button MouseButton
	debug  bool

	// dragPending is set by BeginDrag and consumed by the next ContinueDrag.
	dragPending bool
	lastCursor  Point
	stats       DispatchStats
}

// NewDispatchLayer creates a layer that routes input to ctx's active
// manipulator.
func NewDispatchLayer(ctx *ActiveManipulatorContext, cfg LayerConfig) *DispatchLayer {
	return &DispatchLayer{
		ctx:    ctx,
		probe:  ModifierProbe{Keys: cfg.Keys},
		button: cfg.PrimaryButton,
		debug:  cfg.Debug,
	}
}

// Context returns the context the layer resolves manipulators from.
func (l *DispatchLayer) Context() *ActiveManipulatorContext {
	return l.ctx
}

// SetDebugMode enables or disables per-event stderr logging.
func (l *DispatchLayer) SetDebugMode(enabled bool) {
	l.debug = enabled
}

// Stats returns the event counters accumulated so far.
func (l *DispatchLayer) Stats() DispatchStats {
	return l.stats
}

// DragPending reports whether BeginDrag was called and not yet consumed.
func (l *DispatchLayer) DragPending() bool {
	return l.dragPending
}

// MouseMove reports a hover at p with no buttons held. A true result tells
// the host to show a manipulator cursor and to turn the next mouse-down
// into a drag.
func (l *DispatchLayer) MouseMove(view ViewContext, p Point) bool {
	evt := NewInputSnapshot(0, 0, 0, p, l.lastCursor)
	return l.dispatch(view, evt)
}

// BeginDrag records that the host started a drag. The next ContinueDrag is
// reported as the primary button going down.
func (l *DispatchLayer) BeginDrag() {
	l.dragPending = true
}

// ContinueDrag reports the primary button held at p. The first call after
// BeginDrag also marks the button as just pressed.
func (l *DispatchLayer) ContinueDrag(view ViewContext, p Point) bool {
	btn := l.button.Mask()
	var transitioned ButtonMask
	if l.dragPending {
		transitioned = btn
	}
	evt := NewInputSnapshot(btn, transitioned, 0, p, l.lastCursor)
	l.probe.Augment(&evt)

	handled := l.dispatch(view, evt)
	l.dragPending = false
	return handled
}

// EndDrag reports the primary button released at p.
func (l *DispatchLayer) EndDrag(view ViewContext, p Point) bool {
	evt := NewInputSnapshot(0, l.button.Mask(), 0, p, l.lastCursor)
	l.probe.Augment(&evt)
	return l.dispatch(view, evt)
}

// MouseWheel reports a wheel movement of delta at p.
func (l *DispatchLayer) MouseWheel(view ViewContext, p Point, delta int) bool {
	evt := NewInputSnapshot(0, 0, delta, p, l.lastCursor)
	l.probe.Augment(&evt)
	return l.dispatch(view, evt)
}

// Render draws the active manipulator's gizmo into target. It reports
// whether a manipulator was drawn.
func (l *DispatchLayer) Render(view ViewContext, target any) bool {
	m, ok := l.ctx.Resolve()
	if !ok {
		return false
	}
	w, h := view.ViewportSize()
	hit := NewHitTestContext(view.Device(), view.Camera(), w, h)
	defer hit.release()
	m.Render(&RenderContext{Target: target, HitTest: hit})
	return true
}

// dispatch delivers evt to the active manipulator. The hit-test context and
// scene are acquired here and released before returning, whatever the
// manipulator does.
func (l *DispatchLayer) dispatch(view ViewContext, evt InputSnapshot) bool {
	l.lastCursor = evt.Cursor

	m, ok := l.ctx.Resolve()
	if !ok {
		l.stats.Dropped++
		debugf(l.debug, "drop %s: no active manipulator", describeSnapshot(evt))
		return false
	}

	w, h := view.ViewportSize()
	hit := NewHitTestContext(view.Device(), view.Camera(), w, h)
	defer hit.release()

	scene := view.IntersectionScene()
	if handle, ok := scene.(SceneHandle); ok {
		defer handle.Release()
	}

	l.stats.Dispatched++
	debugf(l.debug, "dispatch %s to %q", describeSnapshot(evt), l.ctx.ActiveManipulatorName())
	if m.OnInputEvent(evt, hit, scene) {
		l.stats.Handled++
	}
	return true
}
