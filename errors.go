package necklace

import "errors"

var (
	// ErrNoSpace is returned when a bead is added without an explicit
	// position and the loop has no free slot large enough for it.
	ErrNoSpace = errors.New("no space available")
	// ErrUnknownLayer is returned by operations naming a layer that doesn't
	// exist.
	ErrUnknownLayer = errors.New("unknown layer")
	// ErrUnknownBead is returned by operations naming a bead that doesn't
	// exist.
	ErrUnknownBead = errors.New("unknown bead")
	// ErrUnknownDef is returned when a bead definition isn't in the catalog.
	ErrUnknownDef = errors.New("unknown bead definition")
)
