package necklace

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// PickThreshold is the largest distance, in world units, between the
	// pointer's hit point and a bead for the bead to be picked up.
	PickThreshold = 0.03
	// DragSamples is the number of samples used to project the pointer
	// onto the loop while dragging.
	DragSamples = 120
	// VisualBiasMm is added to the distance between touching beads. It is
	// slightly negative to close the gap that would otherwise be visible
	// between rendered beads.
	VisualBiasMm = -0.05
)

// DragState is the state of a [DragEngine].
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "DragState(?)"
	}
}

// DragEngine moves beads along their loops in response to pointer input.
//
// It is a state machine with two states. [DragEngine.Begin] goes from
// [Idle] to [Dragging] if the pointer is close to a bead, each
// [DragEngine.Update] moves that bead, and [DragEngine.End] returns to
// [Idle]. Only one bead can be dragged at a time.
//
// The engine holds no design; every call takes the current design and
// returns the next one. The zero value is an idle engine.
type DragEngine struct {
	target string
}

// State returns the engine's state.
func (e *DragEngine) State() DragState {
	if e.target == "" {
		return Idle
	}
	return Dragging
}

// Target returns the ID of the bead being dragged.
func (e *DragEngine) Target() (string, bool) {
	return e.target, e.target != ""
}

// Begin starts dragging the bead closest to hit, the point where the
// pointer ray hit the scene, if it is closer than [PickThreshold]. The bead
// also becomes selected. Begin returns the new design and the ID of the bead
// being dragged, or d unchanged and false if no bead is close enough.
//
// Calling Begin while dragging abandons the current drag.
func (e *DragEngine) Begin(d Design, cache *Cache, hit r3.Vec) (Design, string, bool) {
	e.target = ""
	best := ""
	bestDist := math.Inf(1)
	for _, b := range d.Beads {
		l, ok := d.Layer(b.Layer)
		if !ok {
			continue
		}
		ix := cache.LayerIndex(l)
		p := ix.PointAtSMm(b.SMm).Vec3()
		if dist := r3.Norm(r3.Sub(p, hit)); dist < bestDist {
			bestDist = dist
			best = b.ID
		}
	}
	if best == "" || !(bestDist < PickThreshold) {
		return d, "", false
	}
	e.target = best
	d = d.clone()
	d.Selected = best
	return d, best, true
}

// Update moves the dragged bead towards the point where ray crosses the
// reference plane and returns the new design and the bead's new position.
//
// The pointer is projected onto the bead's loop. If the projection collides
// with another bead, it snaps to just past that bead; the result is then
// clamped between the neighbors (see [SnapClamp]). Only the dragged bead
// moves.
//
// Update returns d unchanged and false if the engine is idle, if the ray
// misses the plane, or if the dragged bead no longer exists. In the last
// case the engine also becomes idle.
func (e *DragEngine) Update(d Design, cache *Cache, ray Ray) (Design, float64, bool) {
	if e.target == "" {
		return d, 0, false
	}
	self, ok := d.Bead(e.target)
	if !ok {
		e.target = ""
		return d, 0, false
	}
	l, ok := d.Layer(self.Layer)
	if !ok {
		e.target = ""
		return d, 0, false
	}
	hit, ok := ReferencePlane.Intersect(ray)
	if !ok {
		return d, self.SMm, false
	}

	ix := cache.LayerIndex(l)
	t := ix.ClosestTSamples(PtFromVec3(hit), DragSamples)
	sRawMm := ix.ArcLength(t) * 1000

	var others []Span
	for _, b := range d.Beads {
		if b.Layer == self.Layer && b.ID != self.ID {
			others = append(others, b.Span())
		}
	}
	s := SnapClamp(sRawMm, self.Span(), others, d.GapMm, l.GapAngle, l.LengthMm, ix.TotalLengthMm())

	d, err := d.MoveBead(self.ID, s)
	if err != nil {
		// Unreachable, we looked the bead up above.
		return d, self.SMm, false
	}
	return d, s, true
}

// End stops dragging. The dragged bead stays where the last update put it.
func (e *DragEngine) End() {
	e.target = ""
}

// SnapClamp computes the position of a bead dragged to sRawMm, given the
// other beads on its loop.
//
// If sRawMm collides with another bead, that is, it is no farther from that
// bead's center than the sum of the two radii, it snaps to just past that
// bead, at the distance of the two radii plus gapMm plus [VisualBiasMm].
// Only the first colliding bead, in ascending order of position, is
// considered.
//
// The position is then clamped between its neighbors, keeping the same
// distance from either. Without a previous neighbor the lower bound is 0,
// without a next one the upper bound is lengthMm. On a loop of usable
// length totalMm, the bounds also keep the bead clear of the neighbor
// across the seam and, if gapAngle is positive, keep the bead and gapMm
// outside the clasp's reserved span (see [ReservedSpan]).
func SnapClamp(sRawMm float64, self Span, others []Span, gapMm, gapAngle, lengthMm, totalMm float64) float64 {
	rSelf := self.SizeMm / 2
	others = slices.SortedStableFunc(slices.Values(others), func(a, b Span) int {
		return cmp.Compare(a.SMm, b.SMm)
	})

	for _, o := range others {
		rO := o.SizeMm / 2
		if math.Abs(sRawMm-o.SMm) <= rSelf+rO {
			sRawMm = o.SMm + (rO + rSelf) + gapMm + VisualBiasMm
			break
		}
	}

	i, _ := slices.BinarySearchFunc(others, sRawMm, func(o Span, s float64) int {
		// Find the first bead strictly past s.
		if o.SMm <= s {
			return -1
		}
		return 1
	})

	lo := 0.0
	hi := lengthMm
	if i > 0 {
		prev := others[i-1]
		lo = prev.SMm + (prev.SizeMm/2 + rSelf) + gapMm + VisualBiasMm
	} else if len(others) > 0 && totalMm > 0 {
		last := others[len(others)-1]
		lo = max(lo, last.SMm-totalMm+(last.SizeMm/2+rSelf)+gapMm+VisualBiasMm)
	}
	if i < len(others) {
		next := others[i]
		hi = next.SMm - (next.SizeMm/2 + rSelf) - gapMm - VisualBiasMm
	} else if len(others) > 0 && totalMm > 0 {
		first := others[0]
		hi = min(hi, first.SMm+totalMm-(first.SizeMm/2+rSelf)-gapMm-VisualBiasMm)
	}
	if gapAngle > 0 && totalMm > 0 {
		g := gapAngle / (2 * math.Pi) * totalMm
		lo = max(lo, g/2+rSelf+gapMm)
		hi = min(hi, totalMm-g/2-rSelf-gapMm)
	}
	return max(lo, min(hi, sRawMm))
}
