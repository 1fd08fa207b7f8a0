package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gizmo"
)

// DefaultWheelScale converts ebiten's wheel offset (notches) into the
// integer delta reported to manipulators, one notch being 120 units.
const DefaultWheelScale = 120

// Source polls ebiten's mouse state. Call Frame once per Update and pass
// the result to gizmo.Pump.Update.
type Source struct {
	// Viewport is the screen-space rectangle of the view. Cursor positions
	// are reported relative to its top-left corner.
	Viewport gizmo.Point
	// Button is the mouse button reported as the primary button.
	Button ebiten.MouseButton
	// WheelScale multiplies the wheel offset. Zero selects DefaultWheelScale.
	WheelScale float64

	cursor  func() (int, int)
	pressed func(ebiten.MouseButton) bool
	wheel   func() (float64, float64)
}

// NewSource creates a source reading the left mouse button.
func NewSource() *Source {
	return &Source{
		Button:  ebiten.MouseButtonLeft,
		cursor:  ebiten.CursorPosition,
		pressed: ebiten.IsMouseButtonPressed,
		wheel:   ebiten.Wheel,
	}
}

// Poll reads the current pointer state.
func (s *Source) Poll() gizmo.PointerSample {
	x, y := s.cursor()
	_, yoff := s.wheel()
	return gizmo.PointerSample{
		Cursor:  gizmo.Point{X: x - s.Viewport.X, Y: y - s.Viewport.Y},
		Pressed: s.pressed(s.Button),
		Wheel:   wheelDelta(yoff, s.WheelScale),
	}
}

// Frame returns an InputSource yielding this frame's single sample.
func (s *Source) Frame() gizmo.InputSource {
	return &frame{src: s}
}

type frame struct {
	src  *Source
	used bool
}

func (f *frame) Next() (gizmo.PointerSample, bool) {
	if f.used {
		return gizmo.PointerSample{}, false
	}
	f.used = true
	return f.src.Poll(), true
}

// wheelDelta scales and rounds a wheel offset.
func wheelDelta(yoff, scale float64) int {
	if scale == 0 {
		scale = DefaultWheelScale
	}
	return int(math.Round(yoff * scale))
}
