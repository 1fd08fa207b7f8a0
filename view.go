package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ViewContext is what an interactive view exposes to the dispatch layer.
// It is queried fresh on every dispatch.
type ViewContext interface {
	// Device returns the host rendering device handle. It is opaque to this
	// package and passed through to manipulators.
	Device() any
	Camera() *Camera
	ViewportSize() (width, height int)
	// IntersectionScene returns the scene used for hit testing. The result
	// may implement SceneHandle, in which case it is released after the
	// dispatch that fetched it.
	IntersectionScene() IntersectionScene
}

// SceneHandle is implemented by intersection scenes that hold resources for
// the duration of one dispatch.
type SceneHandle interface {
	Release()
}

// Ray is a half-line in world space. Dir is unit length.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Hit is the result of a ray query against an IntersectionScene.
type Hit struct {
	ID       uint32
	Name     string
	Distance float64
	Point    mgl64.Vec3
	Data     any
}

// IntersectionScene answers ray queries for hit testing. It may differ from
// the scene that is rendered.
type IntersectionScene interface {
	RayIntersection(r Ray) (Hit, bool)
}

// View is a plain ViewContext. Scenes is called once per dispatch so the
// returned scene is never reused across events.
type View struct {
	Handle        any
	Cam           *Camera
	Width, Height int
	Scenes        func() IntersectionScene
}

// Device returns v.Handle.
func (v *View) Device() any { return v.Handle }

// Camera returns v.Cam.
func (v *View) Camera() *Camera { return v.Cam }

// ViewportSize returns the viewport dimensions in pixels.
func (v *View) ViewportSize() (int, int) { return v.Width, v.Height }

// IntersectionScene calls v.Scenes, returning nil when it is unset.
func (v *View) IntersectionScene() IntersectionScene {
	if v.Scenes == nil {
		return nil
	}
	return v.Scenes()
}

// HitTestContext answers ray and projection queries for one view at one
// moment. The dispatch layer builds one per event and releases it when the
// manipulator returns; after that every query reports false. Manipulators
// must not keep it.
type HitTestContext struct {
	device        any
	camera        *Camera
	width, height int

	viewProj    mgl64.Mat4
	invViewProj mgl64.Mat4
	valid       bool
	released    bool
}

// NewHitTestContext snapshots the camera matrices for a viewport of the
// given size. A nil camera, an empty viewport or a singular projection
// yields a context whose queries all report false.
func NewHitTestContext(device any, cam *Camera, width, height int) *HitTestContext {
	h := &HitTestContext{device: device, camera: cam, width: width, height: height}
	if cam == nil || width <= 0 || height <= 0 {
		return h
	}
	aspect := float64(width) / float64(height)
	h.viewProj = cam.ProjectionMatrix(aspect).Mul4(cam.ViewMatrix())
	if math.Abs(h.viewProj.Det()) < 1e-12 {
		return h
	}
	h.invViewProj = h.viewProj.Inv()
	h.valid = true
	return h
}

// Device returns the device handle the context was built with.
func (h *HitTestContext) Device() any { return h.device }

// Camera returns the camera the context was built with.
func (h *HitTestContext) Camera() *Camera { return h.camera }

// Viewport returns the viewport size in pixels.
func (h *HitTestContext) Viewport() (width, height int) { return h.width, h.height }

// Released reports whether the owning dispatch has finished.
func (h *HitTestContext) Released() bool { return h.released }

func (h *HitTestContext) release() {
	h.released = true
	h.device = nil
}

// Ray returns the world-space ray through the view-space pixel p.
func (h *HitTestContext) Ray(p Point) (Ray, bool) {
	if !h.valid || h.released {
		return Ray{}, false
	}
	x := 2*float64(p.X)/float64(h.width) - 1
	y := 1 - 2*float64(p.Y)/float64(h.height)

	near, ok1 := h.unproject(x, y, -1)
	far, ok2 := h.unproject(x, y, 1)
	if !ok1 || !ok2 {
		return Ray{}, false
	}
	dir := far.Sub(near)
	if dir.Len() == 0 {
		return Ray{}, false
	}
	return Ray{Origin: near, Dir: dir.Normalize()}, true
}

func (h *HitTestContext) unproject(x, y, z float64) (mgl64.Vec3, bool) {
	v := h.invViewProj.Mul4x1(mgl64.Vec4{x, y, z, 1})
	if v.W() == 0 {
		return mgl64.Vec3{}, false
	}
	return v.Vec3().Mul(1 / v.W()), true
}

// WorldToScreen projects a world position to view-space pixel coordinates.
// It reports false for points behind the camera.
func (h *HitTestContext) WorldToScreen(v mgl64.Vec3) (x, y float64, ok bool) {
	if !h.valid || h.released {
		return 0, 0, false
	}
	clip := h.viewProj.Mul4x1(v.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) / 2 * float64(h.width)
	y = (1 - ndcY) / 2 * float64(h.height)
	return x, y, true
}

// Pick casts the ray through p into scene and returns the first hit.
func (h *HitTestContext) Pick(scene IntersectionScene, p Point) (Hit, bool) {
	if scene == nil {
		return Hit{}, false
	}
	r, ok := h.Ray(p)
	if !ok {
		return Hit{}, false
	}
	return scene.RayIntersection(r)
}

// RenderContext carries per-frame render state to Manipulator.Render.
type RenderContext struct {
	// Target is the host render target, for example an *ebiten.Image.
	Target any
	// HitTest projects world positions to the screen for gizmo drawing.
	// It is valid only during the Render call.
	HitTest *HitTestContext
}
