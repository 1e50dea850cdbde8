package necklace

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"
)

// FirstBeadMarginMm is the distance between the end of the clasp gap's
// reserved span and the center of the first bead placed on an empty loop.
const FirstBeadMarginMm = 10

// fitTolerance absorbs rounding when comparing a free span against the
// space a bead needs.
const fitTolerance = 1e-9

// Span is the part of a loop occupied by a bead.
type Span struct {
	// SMm is the position of the bead's center, as arc length from the
	// start of the loop, in millimeters.
	SMm float64
	// SizeMm is the bead's diameter.
	SizeMm float64
}

// ReservedSpan returns the arc length interval, in millimeters, that is
// kept free around the clasp.
//
// The interval has a length of gapAngle/2π of the loop and is centered on
// the seam at s = 0. It wraps: positions s ≥ lo and positions s ≤ hi are
// reserved, where lo > hi.
func ReservedSpan(ix *Index, gapAngle float64) (lo, hi float64) {
	total := ix.TotalLengthMm()
	g := gapAngle / (2 * math.Pi) * total
	return total - g/2, g / 2
}

// FindNextAvailablePosition returns the position of the first free slot on
// the loop indexed by ix that fits a bead of diameter newSizeMm, keeping at
// least gapMm between beads and staying clear of the clasp span of angular
// width gapAngle (see [ReservedSpan]). It reports false if there is no such
// slot.
//
// The search is first fit: the free spans between consecutive beads are
// visited in ascending order of position, ending with the span that wraps
// around the seam, and the bead is placed newSizeMm/2 + gapMm after the start
// of the first span that is at least newSizeMm + gapMm long. The required
// length assumes that both neighbors are as large as the new bead. This
// rejects some layouts that would fit, but never accepts one that doesn't.
//
// On an empty loop the bead is placed [FirstBeadMarginMm] past the reserved
// span.
//
// beads isn't modified.
func FindNextAvailablePosition(ix *Index, beads []Span, newSizeMm, gapMm, gapAngle float64) (float64, bool) {
	total := ix.TotalLengthMm()
	gapStart, gapEnd := ReservedSpan(ix, gapAngle)
	required := newSizeMm/2 + gapMm + newSizeMm/2

	if len(beads) == 0 {
		return gapEnd + FirstBeadMarginMm, true
	}

	fits := func(start, end float64) bool {
		return end-start >= required || scalar.EqualWithinAbs(end-start, required, fitTolerance)
	}
	place := func(start float64) float64 {
		return start + newSizeMm/2 + gapMm
	}

	sorted := slices.SortedStableFunc(slices.Values(beads), func(a, b Span) int {
		return cmp.Compare(a.SMm, b.SMm)
	})
	for i, cur := range sorted {
		start := cur.SMm + cur.SizeMm/2 + gapMm
		if i < len(sorted)-1 {
			next := sorted[i+1]
			end := next.SMm - next.SizeMm/2 - gapMm
			if start >= gapEnd && end <= gapStart && fits(start, end) {
				return place(start), true
			}
			continue
		}

		// The last bead pairs with the first one, across the seam. The free
		// span is split in two by the reserved span; try either part.
		first := sorted[0]
		end := first.SMm - first.SizeMm/2 - gapMm
		if s := max(start, gapEnd); fits(s, gapStart) {
			return place(s), true
		}
		after := gapEnd
		if start > total {
			// The last bead reaches past the seam.
			after = max(after, start-total)
		}
		if fits(after, end) {
			return place(after), true
		}
	}
	return 0, false
}
