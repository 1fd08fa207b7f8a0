package gizmo

import "math"

const defaultDragDeadZone = 4.0 // pixels

// PointerSample is one raw reading of the host pointer.
type PointerSample struct {
	Cursor Point
	// Pressed is the level state of the primary button.
	Pressed bool
	// Wheel is the wheel movement since the previous sample.
	Wheel int
}

// InputSource yields raw pointer samples. Next reports false when no sample
// is available for the current frame.
type InputSource interface {
	Next() (PointerSample, bool)
}

// PumpConfig holds optional settings for a Pump.
type PumpConfig struct {
	// DragDeadZone is the distance in pixels the pointer must travel while
	// pressed before a drag begins. Zero selects the default of 4; a
	// negative value disables the dead zone.
	DragDeadZone float64
}

// Pump turns raw pointer samples into the gesture calls a DispatchLayer
// expects, the way a host UI toolkit would: hover moves, drag begin,
// continue and end, and wheel. A press that never leaves the dead zone is
// reported as a zero-length drag on release.
type Pump struct {
	layer    *DispatchLayer
	deadZone float64

	started  bool
	down     bool
	armed    bool // last hover was handled; a press becomes a drag candidate
	dragging bool
	start    Point
	last     Point
}

// NewPump creates a pump feeding layer.
func NewPump(layer *DispatchLayer, cfg PumpConfig) *Pump {
	dz := cfg.DragDeadZone
	switch {
	case dz == 0:
		dz = defaultDragDeadZone
	case dz < 0:
		dz = 0
	}
	return &Pump{layer: layer, deadZone: dz}
}

// Dragging reports whether a drag gesture is in progress.
func (p *Pump) Dragging() bool {
	return p.dragging
}

// Update drains src and processes every sample against view. It returns
// the number of samples processed.
func (p *Pump) Update(view ViewContext, src InputSource) int {
	n := 0
	for {
		s, ok := src.Next()
		if !ok {
			return n
		}
		p.Process(view, s)
		n++
	}
}

// Process runs the gesture state machine for one sample.
func (p *Pump) Process(view ViewContext, s PointerSample) {
	moved := !p.started || s.Cursor != p.last
	p.started = true

	switch {
	case s.Pressed && !p.down:
		// Just pressed. Only a press over an active manipulator can drag.
		p.down = true
		p.dragging = false
		p.start = s.Cursor
		if p.armed {
			p.continueGesture(view, s.Cursor)
		}
	case !s.Pressed && p.down:
		// Just released. A drag only starts when armed, so armed covers it.
		if p.armed {
			if !p.dragging {
				p.layer.BeginDrag()
				p.layer.ContinueDrag(view, s.Cursor)
			}
			p.armed = p.layer.EndDrag(view, s.Cursor)
		}
		p.down = false
		p.dragging = false
	case s.Pressed && p.down:
		if moved && p.armed {
			p.continueGesture(view, s.Cursor)
		}
	default:
		if moved {
			p.armed = p.layer.MouseMove(view, s.Cursor)
		}
	}

	if s.Wheel != 0 {
		p.layer.MouseWheel(view, s.Cursor, s.Wheel)
	}
	p.last = s.Cursor
}

// continueGesture starts the drag once the pointer leaves the dead zone and
// reports held movement after that.
func (p *Pump) continueGesture(view ViewContext, at Point) {
	if !p.dragging {
		d := at.Sub(p.start)
		if p.deadZone > 0 && math.Hypot(float64(d.X), float64(d.Y)) <= p.deadZone {
			return
		}
		p.dragging = true
		p.layer.BeginDrag()
	}
	p.layer.ContinueDrag(view, at)
}
