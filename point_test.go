package necklace

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointVec3(t *testing.T) {
	diff(t, Pt(1, 2).Vec3(), r3.Vec{X: 1, Y: 2})
	diff(t, PtFromVec3(r3.Vec{X: 1, Y: 2, Z: 3}), Pt(1, 2))
	diff(t, Vec(0, 2).Normalize(), Vec(0, 1))
}
