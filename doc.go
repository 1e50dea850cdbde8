// Package necklace places beads along the loops of a necklace.
//
// It provides the geometry of a loop, the conversion between a loop's
// parameter and physical distance along it, the search for a free slot for a
// new bead, and the rules for dragging a bead to a new position. Rendering,
// persistence and user interfaces are left to the caller; they consume the
// plain values this package produces.
//
// # Loops
//
// A [Curve] is a closed loop: an ellipse with a gap at the top, where the
// clasp sits. The ellipse is sized so that its perimeter matches the length
// requested for the necklace, using Ramanujan's approximation of the
// perimeter (see [RamanujanPerimeter]). Curves are parametrized by t ∈ [0, 1],
// with t = 0 and t = 1 at the two edges of the gap.
//
// Loops lie in the z = 0 plane of the world and are measured in meters. Bead
// sizes and positions are measured in millimeters.
//
// # Arc length
//
// Beads are positioned by arc length, the distance along the loop from t = 0.
// An [Index] measures arc length by summing chords ([ArcLengthSteps] of them)
// and inverts it by bisection. Both are approximations with fixed budgets; they
// always return their best estimate and never fail. Because the result depends
// on the sampling density, all positions of a session are measured with the
// same [Index] methods.
//
// A [Cache] holds the curve and index of each loop shape in use.
//
// # Placement
//
// [FindNextAvailablePosition] finds the first slot, in order of position, that
// fits a new bead, keeping beads apart and the clasp free. [SnapClamp] and
// [DragEngine] implement dragging: the pointer is projected onto the loop,
// snapped past any bead it runs into and clamped between the dragged bead's
// neighbors.
//
// # Designs and sessions
//
// A [Design] holds the layers and beads of a necklace. It is a value:
// operations return a modified copy and never change the original. A
// [Session] owns the current design together with the catalog of beads, the
// curve cache and the drag state, and exposes every editing operation.
//
// # Errors
//
// The geometric functions are total. The only operations that can fail are
// those naming layers, beads or catalog entries that don't exist, and adding
// a bead without a position to a loop that is full. They return errors
// wrapping [ErrUnknownLayer], [ErrUnknownBead], [ErrUnknownDef] and
// [ErrNoSpace], and leave the design unchanged. Lengths shorter than
// [MinLengthMm] are not an error; they are silently lengthened.
package necklace
