package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultFovY = math.Pi / 3 // 60 degrees
	defaultNear = 0.1
	defaultFar  = 1000.0
)

// focusAnim holds the active focus tweens for the camera target.
type focusAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
	offset mgl64.Vec3 // Position - Target, kept constant while focusing
}

// Camera is a perspective camera described by an eye position, a look-at
// target and an up vector. Views hand it to the dispatch layer, which
// builds a HitTestContext from it for each event.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	// Up defaults to +Y when zero.
	Up mgl64.Vec3
	// FovY is the vertical field of view in radians.
	FovY float64
	// Near and Far are the clip plane distances.
	Near, Far float64

	focus *focusAnim
}

// NewCamera creates a camera at position looking at target with a 60 degree
// vertical field of view.
func NewCamera(position, target mgl64.Vec3) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       mgl64.Vec3{0, 1, 0},
		FovY:     defaultFovY,
		Near:     defaultNear,
		Far:      defaultFar,
	}
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	up := c.Up
	if up.Len() == 0 {
		up = mgl64.Vec3{0, 1, 0}
	}
	return mgl64.LookAtV(c.Position, c.Target, up)
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio (width / height). Unset clip planes and FOV fall back to defaults.
func (c *Camera) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	fov, near, far := c.FovY, c.Near, c.Far
	if fov <= 0 {
		fov = defaultFovY
	}
	if near <= 0 {
		near = defaultNear
	}
	if far <= near {
		far = near + defaultFar
	}
	return mgl64.Perspective(fov, aspect, near, far)
}

// FocusOn animates the target to the given world position over duration
// seconds, carrying the eye along so the viewing direction is unchanged.
// A non-positive duration moves the camera immediately.
func (c *Camera) FocusOn(target mgl64.Vec3, duration float32, easeFn ease.TweenFunc) {
	offset := c.Position.Sub(c.Target)
	if duration <= 0 {
		c.focus = nil
		c.Target = target
		c.Position = target.Add(offset)
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	anim := &focusAnim{offset: offset}
	for i := 0; i < 3; i++ {
		anim.tweens[i] = gween.New(float32(c.Target[i]), float32(target[i]), duration, easeFn)
	}
	c.focus = anim
}

// Focusing reports whether a FocusOn animation is still running.
func (c *Camera) Focusing() bool {
	return c.focus != nil
}

// Update advances the focus animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.focus == nil {
		return
	}
	anim := c.focus
	for i := 0; i < 3; i++ {
		if anim.done[i] {
			continue
		}
		val, done := anim.tweens[i].Update(dt)
		c.Target[i] = float64(val)
		anim.done[i] = done
	}
	c.Position = c.Target.Add(anim.offset)
	if anim.done[0] && anim.done[1] && anim.done[2] {
		c.focus = nil
	}
}
