package necklace

import "math"

// Sampling budgets of the arc length routines. They're part of the
// contract: arc lengths computed with different densities differ slightly,
// and every arc length in a session has to come from the same family to be
// comparable.
const (
	// ArcLengthSteps is the number of chords used to measure arc length.
	ArcLengthSteps = 80
	// InverseIterations is the maximum number of bisection steps used to
	// invert arc length.
	InverseIterations = 50
	// InverseTolerance is the arc length error, in meters, at which
	// inversion stops early.
	InverseTolerance = 1e-4
	// ClosestSamples is the default number of samples used by
	// [Index.ClosestT].
	ClosestSamples = 100
)

// Index answers arc length queries about a single [Curve].
//
// An Index is derived data. It must be rebuilt whenever the curve changes
// and must never be used with another curve; [Cache] takes care of both.
type Index struct {
	curve Curve
	total float64
	// samples[i] is curve.Point(i / ClosestSamples).
	samples []Point
}

// NewIndex samples c and returns its index.
func NewIndex(c Curve) *Index {
	ix := &Index{curve: c}
	ix.total = ix.ArcLength(1)
	ix.samples = make([]Point, ClosestSamples+1)
	for i := range ix.samples {
		ix.samples[i] = c.Point(float64(i) / ClosestSamples)
	}
	return ix
}

// Curve returns the indexed curve.
func (ix *Index) Curve() Curve { return ix.curve }

// ArcLength returns the length, in meters, of the curve from t = 0 to t,
// using [ArcLengthSteps] chords.
func (ix *Index) ArcLength(t float64) float64 {
	return ix.ArcLengthSteps(t, ArcLengthSteps)
}

// ArcLengthSteps returns the length, in meters, of the curve from t = 0 to
// t. The interval [0, t] is split into steps equal parts and the lengths of
// the chords between them are summed.
func (ix *Index) ArcLengthSteps(t float64, steps int) float64 {
	if steps < 1 {
		steps = 1
	}
	var l float64
	prev := ix.curve.Point(0)
	for i := 1; i <= steps; i++ {
		p := ix.curve.Point(t * float64(i) / float64(steps))
		l += p.Distance(prev)
		prev = p
	}
	return l
}

// TotalLength returns the length of the usable part of the loop, from one
// edge of the clasp gap to the other, in meters.
func (ix *Index) TotalLength() float64 { return ix.total }

// TotalLengthMm returns [Index.TotalLength] in millimeters.
func (ix *Index) TotalLengthMm() float64 { return ix.total * 1000 }

// normalizeMm wraps sMm into [0, TotalLengthMm).
func (ix *Index) normalizeMm(sMm float64) float64 {
	total := ix.TotalLengthMm()
	if total <= 0 || math.IsNaN(sMm) || math.IsInf(sMm, 0) {
		return 0
	}
	s := math.Mod(sMm, total)
	if s < 0 {
		s += total
	}
	if s >= total {
		// Rounding in the addition above.
		s = 0
	}
	return s
}

// SMmToT returns the parameter at arc length sMm (in millimeters) from the
// start of the curve.
//
// Positions are cyclic: sMm is first wrapped into [0, TotalLengthMm). The
// parameter is then found by bisection, stopping after [InverseIterations]
// steps or once the arc length is within [InverseTolerance] of the target.
// SMmToT always returns its best estimate.
func (ix *Index) SMmToT(sMm float64) float64 {
	target := ix.normalizeMm(sMm) / 1000
	lo, hi := 0.0, 1.0
	t := 0.5
	for range InverseIterations {
		t = 0.5 * (lo + hi)
		l := ix.ArcLength(t)
		if math.Abs(l-target) < InverseTolerance {
			break
		}
		if l < target {
			lo = t
		} else {
			hi = t
		}
	}
	return t
}

// PointAtSMm returns the point at arc length sMm.
func (ix *Index) PointAtSMm(sMm float64) Point {
	return ix.curve.Point(ix.SMmToT(sMm))
}

// PoseAtSMm returns the pose of an object at arc length sMm.
func (ix *Index) PoseAtSMm(sMm float64) Pose {
	return ix.curve.Pose(ix.SMmToT(sMm))
}

// ClosestT returns the parameter of the point on the curve closest to pt,
// using [ClosestSamples] samples.
func (ix *Index) ClosestT(pt Point) float64 {
	return closestSample(ix.samples, pt)
}

// ClosestTSamples returns the sampled parameter t = i/samples, for i in
// [0, samples], whose point is closest to pt.
//
// This is a brute force search and its resolution is 1/samples of the loop.
// That is good enough for following a pointer, but not for placement.
func (ix *Index) ClosestTSamples(pt Point, samples int) float64 {
	if samples < 1 {
		samples = 1
	}
	if samples == ClosestSamples {
		return closestSample(ix.samples, pt)
	}
	bestT := 0.0
	bestD := math.Inf(1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		if d := ix.curve.Point(t).DistanceSquared(pt); d < bestD {
			bestD = d
			bestT = t
		}
	}
	return bestT
}

func closestSample(samples []Point, pt Point) float64 {
	best := 0
	bestD := math.Inf(1)
	for i, s := range samples {
		if d := s.DistanceSquared(pt); d < bestD {
			bestD = d
			best = i
		}
	}
	return float64(best) / float64(len(samples)-1)
}
