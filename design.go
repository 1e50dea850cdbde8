package necklace

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
)

// Layer is one loop of a design.
type Layer struct {
	ID   string
	Name string
	// LengthMm is the requested length of the loop. See [MakeCurve] for
	// how short lengths are treated.
	LengthMm float64
	// Aspect is the ratio of the loop's vertical to its horizontal
	// semi-axis.
	Aspect float64
	// GapAngle is the angular width of the clasp gap, in radians.
	GapAngle     float64
	CordMaterial string
	CordPrice    float64
}

// Curve returns the layer's loop.
func (l Layer) Curve() Curve {
	return MakeCurveGap(l.LengthMm, l.Aspect, l.GapAngle)
}

// Bead is a bead placed on a layer.
type Bead struct {
	ID string
	// Def is the ID of the bead's catalog entry.
	Def   string
	Layer string
	// SizeMm is the bead's diameter.
	SizeMm float64
	// SMm is the position of the bead's center, as arc length from the
	// start of the layer's loop.
	SMm float64
}

// Span returns the part of the loop occupied by the bead.
func (b Bead) Span() Span {
	return Span{SMm: b.SMm, SizeMm: b.SizeMm}
}

// BeadDef describes a kind of bead that can be placed.
type BeadDef struct {
	ID             string
	Name           string
	BaseDiameterMm float64
	Price          float64
}

// Catalog is the list of beads available to a design.
type Catalog []BeadDef

// Lookup returns the entry with the given ID.
func (c Catalog) Lookup(id string) (BeadDef, bool) {
	i := slices.IndexFunc(c, func(d BeadDef) bool { return d.ID == id })
	if i == -1 {
		return BeadDef{}, false
	}
	return c[i], true
}

// DefaultCatalog returns the beads offered by default.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "metal_ball", Name: "Metal Ball 6mm", BaseDiameterMm: 6, Price: 2},
		{ID: "glass_ball", Name: "Glass Ball 8mm", BaseDiameterMm: 8, Price: 3},
		{ID: "gem_emerald", Name: "Gem Emerald 8mm", BaseDiameterMm: 8, Price: 6},
	}
}

// Design is the complete state of a necklace: its layers, the beads on
// them and the current selection.
//
// A Design is a value. Its methods never modify the receiver; operations
// that change the design return a new one, sharing nothing with the old one
// that could be modified later. Readers holding an old design are therefore
// never affected by changes.
type Design struct {
	Title string
	// GapMm is the minimum distance between the surfaces of neighboring
	// beads.
	GapMm  float64
	Layers []Layer
	Beads  []Bead
	// Selected is the ID of the selected bead, or the empty string.
	Selected string

	seq int
}

// DefaultDesign returns a design with a single empty 420mm layer.
func DefaultDesign() Design {
	return Design{
		Title: "My Necklace",
		Layers: []Layer{{
			ID:           "L1",
			Name:         "Layer 1",
			LengthMm:     420,
			Aspect:       DefaultAspect,
			GapAngle:     DefaultGapAngle,
			CordMaterial: "nylon",
			CordPrice:    15,
		}},
	}
}

func (d Design) clone() Design {
	d.Layers = slices.Clone(d.Layers)
	d.Beads = slices.Clone(d.Beads)
	return d
}

func (d Design) hasID(id string) bool {
	return slices.ContainsFunc(d.Layers, func(l Layer) bool { return l.ID == id }) ||
		slices.ContainsFunc(d.Beads, func(b Bead) bool { return b.ID == id })
}

// newID returns an ID with the given prefix that isn't used by any layer or
// bead of d. d must be a clone.
func (d *Design) newID(prefix string) string {
	for {
		d.seq++
		id := prefix + strconv.Itoa(d.seq)
		if !d.hasID(id) {
			return id
		}
	}
}

// Layer returns the layer with the given ID.
func (d Design) Layer(id string) (Layer, bool) {
	i := slices.IndexFunc(d.Layers, func(l Layer) bool { return l.ID == id })
	if i == -1 {
		return Layer{}, false
	}
	return d.Layers[i], true
}

// Bead returns the bead with the given ID.
func (d Design) Bead(id string) (Bead, bool) {
	i := slices.IndexFunc(d.Beads, func(b Bead) bool { return b.ID == id })
	if i == -1 {
		return Bead{}, false
	}
	return d.Beads[i], true
}

// LayerBeads returns the beads on the given layer, in ascending order of
// position.
func (d Design) LayerBeads(layer string) []Bead {
	var out []Bead
	for _, b := range d.Beads {
		if b.Layer == layer {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b Bead) int { return cmp.Compare(a.SMm, b.SMm) })
	return out
}

// Spans returns the spans occupied by the beads on the given layer, in
// ascending order of position.
func (d Design) Spans(layer string) []Span {
	beads := d.LayerBeads(layer)
	out := make([]Span, len(beads))
	for i, b := range beads {
		out[i] = b.Span()
	}
	return out
}

// WithTitle returns a copy of d with the given title.
func (d Design) WithTitle(title string) Design {
	d = d.clone()
	d.Title = title
	return d
}

// WithGapMm returns a copy of d with the given minimum distance between
// beads. Negative distances are treated as zero.
func (d Design) WithGapMm(gapMm float64) Design {
	d = d.clone()
	d.GapMm = max(gapMm, 0)
	return d
}

// AddLayer returns a copy of d with a new layer, and the new layer. The
// layer uses the default clasp gap and a nylon cord.
func (d Design) AddLayer(name string, lengthMm, aspect float64) (Design, Layer) {
	d = d.clone()
	l := Layer{
		ID:           d.newID("L"),
		Name:         name,
		LengthMm:     lengthMm,
		Aspect:       aspect,
		GapAngle:     DefaultGapAngle,
		CordMaterial: "nylon",
		CordPrice:    15,
	}
	d.Layers = append(d.Layers, l)
	return d, l
}

func (d Design) updateLayer(id string, fn func(l *Layer)) (Design, error) {
	i := slices.IndexFunc(d.Layers, func(l Layer) bool { return l.ID == id })
	if i == -1 {
		return d, fmt.Errorf("layer %q: %w", id, ErrUnknownLayer)
	}
	d = d.clone()
	fn(&d.Layers[i])
	return d, nil
}

// SetLayerLength returns a copy of d in which the layer's length is
// lengthMm. Beads keep their positions.
func (d Design) SetLayerLength(id string, lengthMm float64) (Design, error) {
	return d.updateLayer(id, func(l *Layer) { l.LengthMm = lengthMm })
}

// SetLayerAspect returns a copy of d in which the layer's aspect is aspect.
func (d Design) SetLayerAspect(id string, aspect float64) (Design, error) {
	return d.updateLayer(id, func(l *Layer) { l.Aspect = aspect })
}

// PlaceBead returns a copy of d with a new bead of diameter sizeMm at
// position sMm on the given layer, and the new bead. The position is taken
// as is; use [FindNextAvailablePosition] to find a free one.
//
// It returns an error wrapping [ErrUnknownLayer] if the layer doesn't
// exist, in which case d is returned unchanged.
func (d Design) PlaceBead(layer, def string, sizeMm, sMm float64) (Design, Bead, error) {
	if _, ok := d.Layer(layer); !ok {
		return d, Bead{}, fmt.Errorf("layer %q: %w", layer, ErrUnknownLayer)
	}
	d = d.clone()
	b := Bead{
		ID:     d.newID("B"),
		Def:    def,
		Layer:  layer,
		SizeMm: sizeMm,
		SMm:    sMm,
	}
	d.Beads = append(d.Beads, b)
	return d, b, nil
}

// MoveBead returns a copy of d in which the bead is at position sMm. No
// other bead is affected.
func (d Design) MoveBead(id string, sMm float64) (Design, error) {
	i := slices.IndexFunc(d.Beads, func(b Bead) bool { return b.ID == id })
	if i == -1 {
		return d, fmt.Errorf("bead %q: %w", id, ErrUnknownBead)
	}
	d = d.clone()
	d.Beads[i].SMm = sMm
	return d, nil
}

// RemoveBead returns a copy of d without the bead. Removing the selected
// bead clears the selection.
func (d Design) RemoveBead(id string) (Design, error) {
	i := slices.IndexFunc(d.Beads, func(b Bead) bool { return b.ID == id })
	if i == -1 {
		return d, fmt.Errorf("bead %q: %w", id, ErrUnknownBead)
	}
	d = d.clone()
	d.Beads = slices.Delete(d.Beads, i, i+1)
	if d.Selected == id {
		d.Selected = ""
	}
	return d, nil
}

// Select returns a copy of d in which the bead is selected. The empty ID
// clears the selection.
func (d Design) Select(id string) (Design, error) {
	if id != "" {
		if _, ok := d.Bead(id); !ok {
			return d, fmt.Errorf("bead %q: %w", id, ErrUnknownBead)
		}
	}
	d = d.clone()
	d.Selected = id
	return d, nil
}

// Price returns the price of the design: the price of every bead, as listed
// in the catalog, plus the price of each layer's cord. Beads that aren't in
// the catalog are free.
func (d Design) Price(catalog Catalog) float64 {
	var sum float64
	for _, b := range d.Beads {
		if def, ok := catalog.Lookup(b.Def); ok {
			sum += def.Price
		}
	}
	for _, l := range d.Layers {
		sum += l.CordPrice
	}
	return sum
}
