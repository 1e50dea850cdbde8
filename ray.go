package necklace

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ray is a half-line in world coordinates, typically cast from the camera
// through the pointer.
type Ray struct {
	Origin    r3.Vec
	Direction r3.Vec
}

// At returns the point at distance t along the ray, in units of the ray's
// direction.
func (r Ray) At(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Direction))
}

// Plane is the set of points p with Normal·p = Offset.
type Plane struct {
	Normal r3.Vec
	Offset float64
}

// ReferencePlane is the z = 0 plane all loops lie in.
var ReferencePlane = Plane{Normal: r3.Vec{Z: 1}}

// Intersect returns the point where the ray crosses the plane. It reports
// false if the ray is parallel to the plane or points away from it.
func (p Plane) Intersect(r Ray) (r3.Vec, bool) {
	denom := r3.Dot(p.Normal, r.Direction)
	if math.Abs(denom) < 1e-12 {
		return r3.Vec{}, false
	}
	t := (p.Offset - r3.Dot(p.Normal, r.Origin)) / denom
	if t < 0 || math.IsNaN(t) {
		return r3.Vec{}, false
	}
	return r.At(t), true
}
