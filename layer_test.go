package gizmo

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDispatchWithoutManipulatorTouchesNothing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx *ActiveManipulatorContext)
	}{
		{"unbound", func(ctx *ActiveManipulatorContext) {}},
		{"no name", func(ctx *ActiveManipulatorContext) {
			ctx.SetManipulatorSet(NewRegistry().Register("move", newRecorder("move")))
		}},
		{"unmatched name", func(ctx *ActiveManipulatorContext) {
			ctx.SetManipulatorSet(NewRegistry().Register("move", newRecorder("move")))
			ctx.SetActiveManipulatorName("rotate")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewActiveManipulatorContext()
			tt.setup(ctx)
			layer := NewDispatchLayer(ctx, LayerConfig{Keys: heldKeys(KeyShift)})
			view, scenes := newTestView()

			results := []bool{
				layer.MouseMove(view, Point{1, 2}),
				layer.ContinueDrag(view, Point{1, 2}),
				layer.EndDrag(view, Point{1, 2}),
				layer.MouseWheel(view, Point{1, 2}, 120),
				layer.Render(view, nil),
			}
			for i, r := range results {
				if r {
					t.Errorf("call %d returned true without an active manipulator", i)
				}
			}
			if view.touched() {
				t.Errorf("view was queried: device=%d camera=%d size=%d scene=%d",
					view.deviceCalls, view.cameraCalls, view.sizeCalls, view.sceneCalls)
			}
			if len(*scenes) != 0 {
				t.Errorf("%d scenes were fetched, want 0", len(*scenes))
			}
			if st := layer.Stats(); st.Dropped != 4 || st.Dispatched != 0 {
				t.Errorf("Stats() = %+v, want 4 dropped", st)
			}
		})
	}
}

func TestMouseMoveSnapshot(t *testing.T) {
	m := newRecorder("move")
	layer, _ := newActiveLayer("move", m, LayerConfig{Keys: heldKeys(KeyShift, KeyAlt)})
	view, _ := newTestView()

	if !layer.MouseMove(view, Point{30, 40}) {
		t.Fatal("MouseMove should report true with an active manipulator")
	}
	evt := m.lastEvent()
	if evt.Pressed != 0 || evt.Transitioned != 0 || evt.Wheel != 0 {
		t.Errorf("hover snapshot = %+v, want zero masks and wheel", evt)
	}
	if evt.Cursor != (Point{30, 40}) {
		t.Errorf("Cursor = %v, want (30,40)", evt.Cursor)
	}
	if len(evt.Modifiers) != 0 {
		t.Errorf("hover should not probe modifiers, got %v", evt.Modifiers)
	}
}

func TestMouseMoveReportsActiveEvenIfUnhandled(t *testing.T) {
	m := newRecorder("move")
	m.handled = false
	layer, _ := newActiveLayer("move", m, LayerConfig{})
	view, _ := newTestView()

	if !layer.MouseMove(view, Point{}) {
		t.Error("MouseMove should report true whenever a manipulator is active")
	}
	if st := layer.Stats(); st.Dispatched != 1 || st.Handled != 0 {
		t.Errorf("Stats() = %+v, want 1 dispatched 0 handled", st)
	}
}

func TestBeginDragContinueEndScenario(t *testing.T) {
	m := newRecorder("move")
	layer, _ := newActiveLayer("move", m, LayerConfig{})
	view, _ := newTestView()
	left := MouseButtonLeft.Mask()

	layer.BeginDrag()
	if len(m.events) != 0 {
		t.Fatal("BeginDrag must not dispatch")
	}
	if !layer.DragPending() {
		t.Fatal("BeginDrag should set the pending flag")
	}

	layer.ContinueDrag(view, Point{10, 10})
	first := m.lastEvent()
	if first.Pressed != left || first.Transitioned != left {
		t.Errorf("first continue masks = %03b/%03b, want %03b/%03b", first.Pressed, first.Transitioned, left, left)
	}
	if layer.DragPending() {
		t.Error("first ContinueDrag should consume the pending flag")
	}

	layer.ContinueDrag(view, Point{12, 11})
	second := m.lastEvent()
	if second.Pressed != left || second.Transitioned != 0 {
		t.Errorf("second continue masks = %03b/%03b, want %03b/000", second.Pressed, second.Transitioned, left)
	}
	if second.PrevCursor != (Point{10, 10}) {
		t.Errorf("PrevCursor = %v, want (10,10)", second.PrevCursor)
	}

	layer.EndDrag(view, Point{12, 11})
	end := m.lastEvent()
	if end.Pressed != 0 || end.Transitioned != left {
		t.Errorf("end masks = %03b/%03b, want 000/%03b", end.Pressed, end.Transitioned, left)
	}
	if !end.IsRelease(MouseButtonLeft) {
		t.Error("end snapshot should be a release")
	}
}

func TestContinueDragWithoutBeginHasNoTransition(t *testing.T) {
	m := newRecorder("move")
	layer, _ := newActiveLayer("move", m, LayerConfig{})
	view, _ := newTestView()

	layer.ContinueDrag(view, Point{1, 1})
	evt := m.lastEvent()
	if !evt.IsHeld(MouseButtonLeft) || evt.Transitioned != 0 {
		t.Errorf("masks = %03b/%03b, want held without transition", evt.Pressed, evt.Transitioned)
	}
}

func TestDragPendingClearedEvenWhenDropped(t *testing.T) {
	ctx := NewActiveManipulatorContext()
	layer := NewDispatchLayer(ctx, LayerConfig{})
	view, _ := newTestView()

	layer.BeginDrag()
	if layer.ContinueDrag(view, Point{}) {
		t.Fatal("no manipulator is active")
	}
	if layer.DragPending() {
		t.Error("ContinueDrag should clear the pending flag unconditionally")
	}
}

func TestEndDragMasksIndependentOfState(t *testing.T) {
	left := MouseButtonLeft.Mask()
	tests := []struct {
		name  string
		setup func(l *DispatchLayer, v ViewContext)
	}{
		{"fresh", func(l *DispatchLayer, v ViewContext) {}},
		{"pending", func(l *DispatchLayer, v ViewContext) { l.BeginDrag() }},
		{"mid drag", func(l *DispatchLayer, v ViewContext) {
			l.BeginDrag()
			l.ContinueDrag(v, Point{3, 3})
		}},
		{"after end", func(l *DispatchLayer, v ViewContext) { l.EndDrag(v, Point{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRecorder("move")
			layer, _ := newActiveLayer("move", m, LayerConfig{})
			view, _ := newTestView()
			tt.setup(layer, view)

			layer.EndDrag(view, Point{5, 5})
			evt := m.lastEvent()
			if evt.Pressed != 0 || evt.Transitioned != left {
				t.Errorf("masks = %03b/%03b, want 000/%03b", evt.Pressed, evt.Transitioned, left)
			}
		})
	}
}

func TestEndDragLeavesPendingFlag(t *testing.T) {
	layer, _ := newActiveLayer("move", newRecorder("move"), LayerConfig{})
	view, _ := newTestView()
	layer.BeginDrag()
	layer.EndDrag(view, Point{})
	if !layer.DragPending() {
		t.Error("only ContinueDrag consumes the pending flag")
	}
}

func TestPrimaryButtonConfig(t *testing.T) {
	m := newRecorder("move")
	layer, _ := newActiveLayer("move", m, LayerConfig{PrimaryButton: MouseButtonRight})
	view, _ := newTestView()

	layer.BeginDrag()
	layer.ContinueDrag(view, Point{})
	if !m.lastEvent().IsPress(MouseButtonRight) {
		t.Errorf("expected right press, got %03b/%03b", m.lastEvent().Pressed, m.lastEvent().Transitioned)
	}
	if m.lastEvent().IsHeld(MouseButtonLeft) {
		t.Error("left button should not be reported")
	}
}

func TestMouseWheelSnapshot(t *testing.T) {
	m := newRecorder("move")
	layer, _ := newActiveLayer("move", m, LayerConfig{Keys: heldKeys(KeyControl)})
	view, _ := newTestView()

	if !layer.MouseWheel(view, Point{7, 8}, -240) {
		t.Fatal("MouseWheel should report true")
	}
	evt := m.lastEvent()
	if evt.Wheel != -240 || evt.Pressed != 0 || evt.Transitioned != 0 {
		t.Errorf("wheel snapshot = %+v", evt)
	}
	if !evt.IsKeyDown(KeyControl) {
		t.Error("wheel should probe modifiers")
	}
}

func TestDragEventsCarryModifiers(t *testing.T) {
	m := newRecorder("move")
	layer, _ := newActiveLayer("move", m, LayerConfig{Keys: heldKeys(KeyShift)})
	view, _ := newTestView()

	layer.BeginDrag()
	layer.ContinueDrag(view, Point{})
	layer.EndDrag(view, Point{})
	for i, evt := range m.events {
		if !evt.IsKeyDown(KeyShift) {
			t.Errorf("event %d missing shift: %+v", i, evt.Modifiers)
		}
	}
}

func TestDispatchScopesResources(t *testing.T) {
	m := newRecorder("move")
	layer, _ := newActiveLayer("move", m, LayerConfig{})
	view, scenes := newTestView()

	var liveDuringCall bool
	m.onEvent = func(evt InputSnapshot, hit *HitTestContext, scene IntersectionScene) {
		_, ok := hit.Ray(evt.Cursor)
		liveDuringCall = ok && !hit.Released() && scene.(*releasingScene).released == 0
		if hit.Device() != "device" {
			t.Errorf("Device() = %v, want the view's device", hit.Device())
		}
		if w, h := hit.Viewport(); w != 200 || h != 100 {
			t.Errorf("Viewport() = %d,%d, want 200,100", w, h)
		}
	}

	layer.MouseMove(view, Point{100, 50})
	layer.MouseMove(view, Point{101, 50})

	if !liveDuringCall {
		t.Error("hit-test context and scene should be live during the call")
	}
	if len(*scenes) != 2 {
		t.Fatalf("fetched %d scenes, want one per dispatch", len(*scenes))
	}
	if m.hits[0] == m.hits[1] {
		t.Error("hit-test context must not be reused across dispatches")
	}
	for i, s := range *scenes {
		if s.released != 1 {
			t.Errorf("scene %d released %d times, want 1", i, s.released)
		}
		if m.scenes[i] != IntersectionScene(s) {
			t.Errorf("manipulator got a different scene on dispatch %d", i)
		}
	}
	for i, h := range m.hits {
		if !h.Released() {
			t.Errorf("hit-test context %d not released", i)
		}
		if _, ok := h.Ray(Point{}); ok {
			t.Errorf("released context %d still answers queries", i)
		}
	}
}

func TestDispatchReleasesOnPanic(t *testing.T) {
	m := newRecorder("move")
	m.onEvent = func(InputSnapshot, *HitTestContext, IntersectionScene) { panic("manipulator bug") }
	layer, _ := newActiveLayer("move", m, LayerConfig{})
	view, scenes := newTestView()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the panic to propagate")
			}
		}()
		layer.MouseMove(view, Point{})
	}()

	if len(*scenes) != 1 || (*scenes)[0].released != 1 {
		t.Error("scene should be released on the panic path")
	}
	if !m.hits[0].Released() {
		t.Error("hit-test context should be released on the panic path")
	}
}

func TestDispatchWithNilScene(t *testing.T) {
	m := newRecorder("move")
	layer, _ := newActiveLayer("move", m, LayerConfig{})
	view := &View{Cam: NewCamera(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}), Width: 10, Height: 10}

	if !layer.MouseMove(view, Point{5, 5}) {
		t.Fatal("dispatch should succeed without a scene")
	}
	if m.scenes[0] != nil {
		t.Error("manipulator should receive a nil scene")
	}
	if _, ok := m.hits[0].Pick(nil, Point{}); ok {
		t.Error("Pick on a nil scene should report false")
	}
}

func TestRenderForwardsToActive(t *testing.T) {
	m := newRecorder("move")
	layer, _ := newActiveLayer("move", m, LayerConfig{})
	view, _ := newTestView()

	if !layer.Render(view, "target") {
		t.Fatal("Render should report true")
	}
	if len(m.renders) != 1 {
		t.Fatalf("renders = %d, want 1", len(m.renders))
	}
	rc := m.renders[0]
	if rc.Target != "target" {
		t.Errorf("Target = %v, want target", rc.Target)
	}
	if !rc.HitTest.Released() {
		t.Error("render hit-test context should be released after Render")
	}
	if view.sceneCalls != 0 {
		t.Error("Render should not fetch the intersection scene")
	}
}

func TestSwitchingManipulatorRedirectsDispatch(t *testing.T) {
	move, rotate := newRecorder("move"), newRecorder("rotate")
	ctx := NewActiveManipulatorContext()
	ctx.SetManipulatorSet(NewRegistry().Register("move", move).Register("rotate", rotate))
	layer := NewDispatchLayer(ctx, LayerConfig{})
	view, _ := newTestView()

	ctx.SetActiveManipulatorName("move")
	layer.MouseMove(view, Point{})
	ctx.SetActiveManipulatorName("rotate")
	layer.MouseMove(view, Point{})

	if len(move.events) != 1 || len(rotate.events) != 1 {
		t.Errorf("events move=%d rotate=%d, want 1 each", len(move.events), len(rotate.events))
	}
	if layer.Context() != ctx {
		t.Error("Context() should return the layer's context")
	}
}

func TestLayerDebugLog(t *testing.T) {
	buf := captureDebug(t)
	ctx := NewActiveManipulatorContext()
	layer := NewDispatchLayer(ctx, LayerConfig{Debug: true})
	view, _ := newTestView()
	layer.MouseMove(view, Point{})

	ctx.SetManipulatorSet(NewRegistry().Register("move", newRecorder("move")))
	ctx.SetActiveManipulatorName("move")
	layer.MouseMove(view, Point{})

	out := buf.String()
	if !strings.Contains(out, "[gizmo] drop") {
		t.Errorf("missing drop line in %q", out)
	}
	if !strings.Contains(out, `[gizmo] dispatch`) || !strings.Contains(out, `to "move"`) {
		t.Errorf("missing dispatch line in %q", out)
	}

	buf.Reset()
	layer.SetDebugMode(false)
	layer.MouseMove(view, Point{})
	if buf.Len() != 0 {
		t.Errorf("debug off should be silent, got %q", buf.String())
	}
}
