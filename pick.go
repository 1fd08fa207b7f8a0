package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// --- Built-in PickShape types ---

// PickShape is a world-space volume that can be intersected by a ray.
type PickShape interface {
	// IntersectRay returns the distance along r to the nearest entry point,
	// or false if the ray misses. A ray starting inside reports 0.
	IntersectRay(r Ray) (float64, bool)
}

// PickBox is an axis-aligned box given by its min and max corners.
type PickBox struct {
	Min, Max mgl64.Vec3
}

// IntersectRay uses the slab test.
func (b PickBox) IntersectRay(r Ray) (float64, bool) {
	tMin := 0.0
	tMax := math.Inf(1)
	for i := 0; i < 3; i++ {
		if r.Dir[i] == 0 {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Dir[i]
		t0 := (b.Min[i] - r.Origin[i]) * inv
		t1 := (b.Max[i] - r.Origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// PickSphere is a sphere in world space.
type PickSphere struct {
	Center mgl64.Vec3
	Radius float64
}

// IntersectRay solves the ray/sphere quadratic. Dir is assumed unit length.
func (s PickSphere) IntersectRay(r Ray) (float64, bool) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
		if t < 0 {
			return 0, false
		}
		// Origin is inside the sphere.
		return 0, true
	}
	return t, true
}

// PickObject is one pickable entry in a PickScene.
type PickObject struct {
	ID       uint32
	Name     string
	Shape    PickShape
	Pickable bool
	Data     any
}

// PickScene is a flat IntersectionScene of shapes. Queries return the
// nearest hit; ties go to the object added last.
type PickScene struct {
	objects []*PickObject
	nextID  uint32
}

// NewPickScene creates an empty scene.
func NewPickScene() *PickScene {
	return &PickScene{}
}

// Add inserts a pickable object and returns it. IDs start at 1.
func (s *PickScene) Add(name string, shape PickShape) *PickObject {
	s.nextID++
	obj := &PickObject{ID: s.nextID, Name: name, Shape: shape, Pickable: true}
	s.objects = append(s.objects, obj)
	return obj
}

// Remove deletes obj from the scene.
func (s *PickScene) Remove(obj *PickObject) {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return
		}
	}
}

// Objects returns the scene's objects. The returned slice MUST NOT be mutated.
func (s *PickScene) Objects() []*PickObject {
	return s.objects
}

// RayIntersection returns the nearest pickable object hit by r.
func (s *PickScene) RayIntersection(r Ray) (Hit, bool) {
	var best *PickObject
	bestT := math.Inf(1)
	// Iterate backward so later objects win ties.
	for i := len(s.objects) - 1; i >= 0; i-- {
		obj := s.objects[i]
		if !obj.Pickable || obj.Shape == nil {
			continue
		}
		t, ok := obj.Shape.IntersectRay(r)
		if ok && t < bestT {
			best = obj
			bestT = t
		}
	}
	if best == nil {
		return Hit{}, false
	}
	return Hit{
		ID:       best.ID,
		Name:     best.Name,
		Distance: bestT,
		Point:    r.At(bestT),
		Data:     best.Data,
	}, true
}
