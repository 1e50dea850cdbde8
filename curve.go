package necklace

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// MinLengthMm is the shortest loop MakeCurve builds. Shorter requests
	// are clamped to it.
	MinLengthMm = 200

	// DefaultAspect is the ratio of vertical to horizontal semi-axis used
	// when a layer doesn't specify one.
	DefaultAspect = 1.15

	// DefaultGapAngle is the angular width, in radians, of the clasp gap at
	// the top of a loop.
	//
	// The loop's usable length is the ellipse's perimeter minus the arc
	// covered by the gap. At 0.035 rad that arc stays below 1% of the
	// perimeter for every aspect in [0.5, 2].
	DefaultGapAngle = 0.035
)

// Curve is a closed loop with a reserved gap for the clasp.
//
// The loop is an axis-aligned ellipse centered on the origin, with the
// vertical semi-axis A and the horizontal semi-axis B, measured in meters. It
// is parametrized by t ∈ [0, 1], where t = 0 and t = 1 are the two edges of
// the gap. The gap is centered on the top of the loop (positive y). Increasing
// t moves clockwise when y points up.
//
// Curves are immutable values; the zero value is not a usable curve, use
// [MakeCurve] or [MakeCurveGap].
type Curve struct {
	A float64
	B float64
	// GapAngle is the angular width of the gap, in radians.
	GapAngle float64

	lengthMm float64
	aspect   float64
}

// MakeCurve returns the loop with the default clasp gap whose perimeter is
// lengthMm millimeters and whose ratio of vertical to horizontal semi-axis
// is aspect.
//
// Lengths below [MinLengthMm] are silently clamped to it; a loop that short
// would be degenerate. A non-positive aspect is replaced with
// [DefaultAspect].
//
// The semi-axes are found numerically by a fixed number of bisection steps
// and are accurate to about 2⁻⁴⁰ of the search interval. MakeCurve never
// fails.
func MakeCurve(lengthMm, aspect float64) Curve {
	return MakeCurveGap(lengthMm, aspect, DefaultGapAngle)
}

// MakeCurveGap is like [MakeCurve] but uses the given gap angle, in
// radians. Gap angles outside of [0, 2π) are clamped into it.
func MakeCurveGap(lengthMm, aspect, gapAngle float64) Curve {
	lengthMm = clampLengthMm(lengthMm)
	if !(aspect > 0) || math.IsInf(aspect, 0) {
		aspect = DefaultAspect
	}
	if !(gapAngle > 0) {
		gapAngle = 0
	}
	gapAngle = min(gapAngle, 2*math.Pi-1e-9)

	a, b := solveSemiAxes(lengthMm/1000, aspect)
	return Curve{
		A:        a,
		B:        b,
		GapAngle: gapAngle,
		lengthMm: lengthMm,
		aspect:   aspect,
	}
}

func clampLengthMm(lengthMm float64) float64 {
	if !(lengthMm >= MinLengthMm) {
		// This also catches NaN.
		return MinLengthMm
	}
	return lengthMm
}

// LengthMm returns the (clamped) length the curve was built for.
func (c Curve) LengthMm() float64 { return c.lengthMm }

// Aspect returns the ratio of vertical to horizontal semi-axis.
func (c Curve) Aspect() float64 { return c.aspect }

// Key returns the cache key identifying the curve's shape.
func (c Curve) Key() CurveKey {
	return CurveKey{LengthMm: c.lengthMm, Aspect: c.aspect, GapAngle: c.GapAngle}
}

func (c Curve) String() string {
	return fmt.Sprintf("Curve{A: %g, B: %g, GapAngle: %g}", c.A, c.B, c.GapAngle)
}

// theta maps the curve parameter to the angle, measured clockwise from the
// top of the loop.
func (c Curve) theta(t float64) float64 {
	return c.GapAngle/2 + t*(2*math.Pi-c.GapAngle)
}

// Point evaluates the curve at parameter t.
func (c Curve) Point(t float64) Point {
	s, co := math.Sincos(c.theta(t))
	return Point{
		X: c.B * s,
		Y: c.A * co,
	}
}

// Tangent returns the unit tangent of the curve at parameter t, pointing in
// the direction of increasing t.
func (c Curve) Tangent(t float64) Vec2 {
	s, co := math.Sincos(c.theta(t))
	d := Vec2{
		X: c.B * co,
		Y: -c.A * s,
	}
	return d.Normalize()
}

// Pose is the placement of an object on a loop, in world coordinates. Loops
// lie in the z = 0 plane.
type Pose struct {
	Position r3.Vec
	// Tangent is the unit direction of travel along the loop. Renderers
	// align an object's up axis with it.
	Tangent r3.Vec
}

// Pose returns the position and orientation of the curve at parameter t.
func (c Curve) Pose(t float64) Pose {
	return Pose{
		Position: c.Point(t).Vec3(),
		Tangent:  c.Tangent(t).Vec3(),
	}
}

// Perimeter returns the approximate perimeter of the full ellipse, gap
// included, in meters.
func (c Curve) Perimeter() float64 {
	return RamanujanPerimeter(c.A, c.B)
}

// BoundingBox returns the smallest rectangle enclosing the full ellipse.
func (c Curve) BoundingBox() Rect {
	return NewRectFromPoints(Pt(-c.B, -c.A), Pt(c.B, c.A))
}
