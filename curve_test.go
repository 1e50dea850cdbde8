package necklace

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMakeCurve(t *testing.T) {
	c := MakeCurve(420, 1.15)
	diff(t, c.A/c.B, 1.15, cmpopts.EquateApprox(1e-12, 0))
	diff(t, c.Perimeter(), 0.42, cmpopts.EquateApprox(0, 1e-9))
	diff(t, c.GapAngle, DefaultGapAngle)
	diff(t, c.LengthMm(), 420.0)
	diff(t, c.Aspect(), 1.15)
}

func TestMakeCurveClampsLength(t *testing.T) {
	want := MakeCurve(MinLengthMm, 1)
	for _, l := range []float64{199.99, 50, 0, -420, math.NaN()} {
		if got := MakeCurve(l, 1); got != want {
			t.Errorf("length %v: got %v, want %v", l, got, want)
		}
	}
	if got := MakeCurve(201, 1); got.LengthMm() != 201 {
		t.Errorf("got length %v, want 201", got.LengthMm())
	}
}

func TestMakeCurveDefaultAspect(t *testing.T) {
	want := MakeCurve(420, DefaultAspect)
	for _, aspect := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if got := MakeCurve(420, aspect); got != want {
			t.Errorf("aspect %v: got %v, want %v", aspect, got, want)
		}
	}
}

func TestMakeCurveGap(t *testing.T) {
	if c := MakeCurveGap(420, 1, -1); c.GapAngle != 0 {
		t.Errorf("got gap angle %v, want 0", c.GapAngle)
	}
	if c := MakeCurveGap(420, 1, 10); c.GapAngle >= 2*math.Pi {
		t.Errorf("got gap angle %v, want less than 2π", c.GapAngle)
	}
}

func TestCurveEnds(t *testing.T) {
	c := MakeCurveGap(420, 1.15, 0.5)
	start, end := c.Point(0), c.Point(1)

	// The two ends are mirror images of each other around the vertical axis,
	// on the top of the loop.
	diff(t, start.X, -end.X, cmpopts.EquateApprox(0, 1e-12))
	diff(t, start.Y, end.Y, cmpopts.EquateApprox(0, 1e-12))
	if start.X <= 0 || start.Y <= 0 {
		t.Errorf("start %v isn't to the top right of the center", start)
	}
	diff(t, start, Pt(c.B*math.Sin(0.25), c.A*math.Cos(0.25)), cmpopts.EquateApprox(0, 1e-12))

	// The bottom of the loop is halfway.
	diff(t, c.Point(0.5), Pt(0, -c.A), cmpopts.EquateApprox(0, 1e-12))
}

func TestCurveTangent(t *testing.T) {
	c := MakeCurve(420, 1.5)
	const h = 1e-6
	for i := 0; i <= 20; i++ {
		u := float64(i) / 20
		tan := c.Tangent(u)
		if l := tan.Hypot(); math.Abs(l-1) > 1e-12 {
			t.Errorf("t=%v: tangent %v has length %v", u, tan, l)
		}
		fd := c.Point(u + h).Sub(c.Point(u - h)).Normalize()
		diff(t, tan, fd, cmpopts.EquateApprox(0, 1e-6))
	}
}

func TestCurvePose(t *testing.T) {
	c := MakeCurve(420, 1.15)
	p := c.Pose(0.3)
	diff(t, PtFromVec3(p.Position), c.Point(0.3))
	diff(t, p.Position.Z, 0.0)
	diff(t, p.Tangent, c.Tangent(0.3).Vec3())
}

func TestCurveBoundingBox(t *testing.T) {
	c := MakeCurve(420, 2)
	bb := c.BoundingBox()
	diff(t, bb, Rect{X0: -c.B, Y0: -c.A, X1: c.B, Y1: c.A})
	diff(t, bb.Center(), Pt(0, 0))
	if bb.IsEmpty() {
		t.Error("bounding box is empty")
	}
}
