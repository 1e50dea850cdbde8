package necklace

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Session is an editing session on a design. It owns the current design,
// the catalog beads are taken from, the curves of the design's layers and
// the drag state.
//
// Every change replaces the current design with a new value; a design
// returned by [Session.Design] is never modified afterwards. A failed
// operation leaves the design unchanged.
//
// A Session is not safe for concurrent use.
type Session struct {
	design  Design
	catalog Catalog
	cache   Cache
	drag    DragEngine
}

// NewSession returns a session editing d.
func NewSession(d Design, catalog Catalog) *Session {
	return &Session{design: d.clone(), catalog: catalog}
}

// Design returns the current design.
func (s *Session) Design() Design { return s.design }

// Catalog returns the catalog.
func (s *Session) Catalog() Catalog { return s.catalog }

// Load replaces the design, for example after importing one. An ongoing
// drag is abandoned.
func (s *Session) Load(d Design) {
	s.design = d.clone()
	s.cache.Reset()
	s.drag.End()
}

// Index returns the arc length index of the layer's loop.
func (s *Session) Index(layer string) (*Index, error) {
	l, ok := s.design.Layer(layer)
	if !ok {
		return nil, fmt.Errorf("layer %q: %w", layer, ErrUnknownLayer)
	}
	return s.cache.LayerIndex(l), nil
}

// SetTitle sets the design's title.
func (s *Session) SetTitle(title string) {
	s.design = s.design.WithTitle(title)
}

// SetGapMm sets the minimum distance between neighboring beads.
func (s *Session) SetGapMm(gapMm float64) {
	s.design = s.design.WithGapMm(gapMm)
}

// AddLayer adds a layer and returns it.
func (s *Session) AddLayer(name string, lengthMm, aspect float64) Layer {
	d, l := s.design.AddLayer(name, lengthMm, aspect)
	s.design = d
	return l
}

// SetLayerLength changes the length of a layer. The layer's old curve is
// dropped from the cache.
func (s *Session) SetLayerLength(layer string, lengthMm float64) error {
	old, ok := s.design.Layer(layer)
	if !ok {
		return fmt.Errorf("layer %q: %w", layer, ErrUnknownLayer)
	}
	d, err := s.design.SetLayerLength(layer, lengthMm)
	if err != nil {
		return err
	}
	s.design = d
	s.cache.Invalidate(old.LengthMm, old.Aspect, old.GapAngle)
	return nil
}

// SetLayerAspect changes the aspect of a layer. The layer's old curve is
// dropped from the cache.
func (s *Session) SetLayerAspect(layer string, aspect float64) error {
	old, ok := s.design.Layer(layer)
	if !ok {
		return fmt.Errorf("layer %q: %w", layer, ErrUnknownLayer)
	}
	d, err := s.design.SetLayerAspect(layer, aspect)
	if err != nil {
		return err
	}
	s.design = d
	s.cache.Invalidate(old.LengthMm, old.Aspect, old.GapAngle)
	return nil
}

func (s *Session) lookup(layer, def string) (Layer, BeadDef, error) {
	l, ok := s.design.Layer(layer)
	if !ok {
		return Layer{}, BeadDef{}, fmt.Errorf("layer %q: %w", layer, ErrUnknownLayer)
	}
	bd, ok := s.catalog.Lookup(def)
	if !ok {
		return Layer{}, BeadDef{}, fmt.Errorf("bead definition %q: %w", def, ErrUnknownDef)
	}
	return l, bd, nil
}

// AddBead adds a bead of the given kind to a layer, in the first free slot
// found by [FindNextAvailablePosition]. It returns an error wrapping
// [ErrNoSpace] if there is no free slot, [ErrUnknownLayer] if the layer
// doesn't exist and [ErrUnknownDef] if the kind isn't in the catalog.
func (s *Session) AddBead(layer, def string) (Bead, error) {
	l, bd, err := s.lookup(layer, def)
	if err != nil {
		return Bead{}, err
	}
	ix := s.cache.LayerIndex(l)
	sMm, ok := FindNextAvailablePosition(ix, s.design.Spans(layer), bd.BaseDiameterMm, s.design.GapMm, l.GapAngle)
	if !ok {
		return Bead{}, fmt.Errorf("adding %s to layer %q: %w", bd.Name, layer, ErrNoSpace)
	}
	return s.AddBeadAt(layer, def, sMm)
}

// AddBeadAt adds a bead of the given kind to a layer at an explicit
// position. The position isn't checked against other beads.
func (s *Session) AddBeadAt(layer, def string, sMm float64) (Bead, error) {
	_, bd, err := s.lookup(layer, def)
	if err != nil {
		return Bead{}, err
	}
	d, b, err := s.design.PlaceBead(layer, def, bd.BaseDiameterMm, sMm)
	if err != nil {
		return Bead{}, err
	}
	s.design = d
	return b, nil
}

// MoveBead moves a bead to an explicit position.
func (s *Session) MoveBead(id string, sMm float64) error {
	d, err := s.design.MoveBead(id, sMm)
	if err != nil {
		return err
	}
	s.design = d
	return nil
}

// RemoveBead removes a bead. Removing the bead that is being dragged ends
// the drag.
func (s *Session) RemoveBead(id string) error {
	d, err := s.design.RemoveBead(id)
	if err != nil {
		return err
	}
	s.design = d
	if t, ok := s.drag.Target(); ok && t == id {
		s.drag.End()
	}
	return nil
}

// Select selects a bead. The empty ID clears the selection.
func (s *Session) Select(id string) error {
	d, err := s.design.Select(id)
	if err != nil {
		return err
	}
	s.design = d
	return nil
}

// DragState returns the state of the drag engine.
func (s *Session) DragState() DragState { return s.drag.State() }

// BeginDrag starts dragging the bead closest to hit. See [DragEngine.Begin].
func (s *Session) BeginDrag(hit r3.Vec) (string, bool) {
	d, id, ok := s.drag.Begin(s.design, &s.cache, hit)
	s.design = d
	return id, ok
}

// UpdateDrag moves the dragged bead. See [DragEngine.Update].
func (s *Session) UpdateDrag(ray Ray) (float64, bool) {
	d, sMm, ok := s.drag.Update(s.design, &s.cache, ray)
	s.design = d
	return sMm, ok
}

// EndDrag stops dragging.
func (s *Session) EndDrag() {
	s.drag.End()
}

// Price returns the price of the current design.
func (s *Session) Price() float64 {
	return s.design.Price(s.catalog)
}
