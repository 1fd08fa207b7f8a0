package gizmo

import "github.com/go-gl/mathgl/mgl64"

// recordingManipulator records everything the dispatch layer and context do
// to it.
type recordingManipulator struct {
	name        string
	handled     bool
	active      bool
	activations []bool
	events      []InputSnapshot
	hits        []*HitTestContext
	scenes      []IntersectionScene
	renders     []*RenderContext
	onEvent     func(evt InputSnapshot, hit *HitTestContext, scene IntersectionScene)
}

func newRecorder(name string) *recordingManipulator {
	return &recordingManipulator{name: name, handled: true}
}

func (m *recordingManipulator) OnInputEvent(evt InputSnapshot, hit *HitTestContext, scene IntersectionScene) bool {
	m.events = append(m.events, evt)
	m.hits = append(m.hits, hit)
	m.scenes = append(m.scenes, scene)
	if m.onEvent != nil {
		m.onEvent(evt, hit, scene)
	}
	return m.handled
}

func (m *recordingManipulator) SetActivationState(active bool) {
	m.active = active
	m.activations = append(m.activations, active)
}

func (m *recordingManipulator) Render(rc *RenderContext) {
	m.renders = append(m.renders, rc)
}

func (m *recordingManipulator) lastEvent() InputSnapshot {
	return m.events[len(m.events)-1]
}

func (m *recordingManipulator) countActivations(state bool) int {
	n := 0
	for _, a := range m.activations {
		if a == state {
			n++
		}
	}
	return n
}

// releasingScene is an intersection scene that counts releases.
type releasingScene struct {
	*PickScene
	released int
}

func (s *releasingScene) Release() {
	s.released++
}

// countingView records how often the layer queries it.
type countingView struct {
	View
	deviceCalls int
	cameraCalls int
	sizeCalls   int
	sceneCalls  int
}

func (v *countingView) Device() any {
	v.deviceCalls++
	return v.View.Device()
}

func (v *countingView) Camera() *Camera {
	v.cameraCalls++
	return v.View.Camera()
}

func (v *countingView) ViewportSize() (int, int) {
	v.sizeCalls++
	return v.View.ViewportSize()
}

func (v *countingView) IntersectionScene() IntersectionScene {
	v.sceneCalls++
	return v.View.IntersectionScene()
}

func (v *countingView) touched() bool {
	return v.deviceCalls+v.cameraCalls+v.sizeCalls+v.sceneCalls > 0
}

// newTestView returns a 200x100 view looking down -Z at the origin with a
// releasable scene produced fresh on every query.
func newTestView() (*countingView, *[]*releasingScene) {
	var scenes []*releasingScene
	v := &countingView{View: View{
		Handle: "device",
		Cam:    NewCamera(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 0}),
		Width:  200,
		Height: 100,
	}}
	v.Scenes = func() IntersectionScene {
		s := &releasingScene{PickScene: NewPickScene()}
		scenes = append(scenes, s)
		return s
	}
	return v, &scenes
}

// heldKeys is a KeyState reporting the given keys as held.
func heldKeys(keys ...Key) KeyState {
	return KeyStateFunc(func(k Key) bool {
		for _, h := range keys {
			if h == k {
				return true
			}
		}
		return false
	})
}

// newActiveLayer returns a layer whose context has m active under name.
func newActiveLayer(name string, m Manipulator, cfg LayerConfig) (*DispatchLayer, *ActiveManipulatorContext) {
	ctx := NewActiveManipulatorContext()
	ctx.SetManipulatorSet(NewRegistry().Register(name, m))
	ctx.SetActiveManipulatorName(name)
	return NewDispatchLayer(ctx, cfg), ctx
}
