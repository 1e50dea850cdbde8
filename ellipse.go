package necklace

import "math"

// Bounds and budget of the semi-axis search, in meters.
const (
	minSemiAxis      = 0.01
	maxSemiAxis      = 1.5
	semiAxisBisector = 40
)

// RamanujanPerimeter returns Ramanujan's second approximation of the
// perimeter of an ellipse with semi-axes a and b,
//
//	π[3(a+b) − √((3a+b)(a+3b))].
//
// The relative error is below 1e-4 for every eccentricity a loop can
// plausibly have, and the formula is monotonic in both semi-axes, which is
// what makes bisection over them work. See
// https://en.wikipedia.org/wiki/Ellipse#Circumference.
func RamanujanPerimeter(a, b float64) float64 {
	a = math.Abs(a)
	b = math.Abs(b)
	return math.Pi * (3*(a+b) - math.Sqrt((3*a+b)*(a+3*b)))
}

// solveSemiAxes finds the semi-axes (a, b), with a = aspect·b, of the
// ellipse whose Ramanujan perimeter is perimeter.
//
// The search runs for a fixed number of bisection steps over b ∈ [0.01, 1.5]
// and returns the midpoint of the final interval. Perimeters outside of the
// reachable range saturate at the interval's bounds.
func solveSemiAxes(perimeter, aspect float64) (a, b float64) {
	lo, hi := minSemiAxis, maxSemiAxis
	for range semiAxisBisector {
		mid := 0.5 * (lo + hi)
		if RamanujanPerimeter(aspect*mid, mid) < perimeter {
			lo = mid
		} else {
			hi = mid
		}
	}
	b = 0.5 * (lo + hi)
	return aspect * b, b
}
