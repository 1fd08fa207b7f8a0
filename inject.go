package gizmo

// Injector is an InputSource fed by synthetic pointer samples. Coordinates
// are view-space pixels, identical to real pointer input. Next yields one
// sample per call, so a Pump drains the whole queue in one Update; use
// Frame to hand out one sample per frame instead.
type Injector struct {
	queue   []PointerSample
	pressed bool
	cursor  Point
}

// Pending returns the number of queued samples.
func (in *Injector) Pending() int {
	return len(in.queue)
}

// Next pops the oldest queued sample.
func (in *Injector) Next() (PointerSample, bool) {
	if len(in.queue) == 0 {
		return PointerSample{}, false
	}
	s := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
	return s, true
}

// Frame returns an InputSource that yields at most one queued sample.
func (in *Injector) Frame() InputSource {
	return &frameSource{in: in}
}

type frameSource struct {
	in   *Injector
	used bool
}

func (f *frameSource) Next() (PointerSample, bool) {
	if f.used {
		return PointerSample{}, false
	}
	f.used = true
	return f.in.Next()
}

func (in *Injector) push(s PointerSample) {
	in.cursor = s.Cursor
	in.pressed = s.Pressed
	in.queue = append(in.queue, s)
}

// InjectMove queues a pointer move to (x, y). The button keeps the state
// left by the previous injected sample, so moves between InjectPress and
// InjectRelease are drags.
func (in *Injector) InjectMove(x, y int) {
	in.push(PointerSample{Cursor: Point{X: x, Y: y}, Pressed: in.pressed})
}

// InjectPress queues a primary button press at (x, y).
func (in *Injector) InjectPress(x, y int) {
	in.push(PointerSample{Cursor: Point{X: x, Y: y}, Pressed: true})
}

// InjectRelease queues a primary button release at (x, y).
func (in *Injector) InjectRelease(x, y int) {
	in.push(PointerSample{Cursor: Point{X: x, Y: y}, Pressed: false})
}

// InjectWheel queues a wheel movement at the last injected position.
func (in *Injector) InjectWheel(delta int) {
	in.push(PointerSample{Cursor: in.cursor, Pressed: in.pressed, Wheel: delta})
}

// InjectClick queues a hover, a press and a release at (x, y). The hover
// lets the pump learn whether a manipulator is under the pointer.
func (in *Injector) InjectClick(x, y int) {
	in.InjectMove(x, y)
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag: a hover and press at (fromX, fromY),
// steps-1 linearly interpolated moves, and a release at (toX, toY) after a
// final move there. Minimum steps is 1.
func (in *Injector) InjectDrag(fromX, fromY, toX, toY, steps int) {
	if steps < 1 {
		steps = 1
	}
	in.InjectMove(fromX, fromY)
	in.InjectPress(fromX, fromY)
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/steps
		y := fromY + (toY-fromY)*i/steps
		in.InjectMove(x, y)
	}
	in.InjectRelease(toX, toY)
}
