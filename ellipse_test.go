package necklace

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRamanujanPerimeter(t *testing.T) {
	// Exact for circles.
	diff(t, RamanujanPerimeter(1, 1), 2*math.Pi, cmpopts.EquateApprox(0, 1e-12))
	// Symmetric in its arguments and insensitive to signs.
	diff(t, RamanujanPerimeter(2, 1), RamanujanPerimeter(1, 2), cmpopts.EquateApprox(0, 1e-12))
	diff(t, RamanujanPerimeter(-2, 1), RamanujanPerimeter(2, 1), cmpopts.EquateApprox(0, 1e-12))
	// The perimeter of an ellipse with semi-axes 2 and 1 is 9.688448220547675...
	diff(t, RamanujanPerimeter(2, 1), 9.688448220547675, cmpopts.EquateApprox(1e-6, 0))
}

func TestSolveSemiAxes(t *testing.T) {
	for _, aspect := range []float64{0.5, 1, 1.15, 2} {
		for _, perimeter := range []float64{0.2, 0.42, 1, 2.5} {
			a, b := solveSemiAxes(perimeter, aspect)
			diff(t, a/b, aspect, cmpopts.EquateApprox(1e-12, 0))
			diff(t, RamanujanPerimeter(a, b), perimeter, cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestSolveSemiAxesSaturates(t *testing.T) {
	_, b := solveSemiAxes(1e-6, 1)
	diff(t, b, minSemiAxis, cmpopts.EquateApprox(0, 1e-9))
	_, b = solveSemiAxes(1e6, 1)
	diff(t, b, maxSemiAxis, cmpopts.EquateApprox(0, 1e-9))
}
