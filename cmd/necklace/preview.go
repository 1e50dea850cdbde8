package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"honnef.co/go/necklace"
)

var (
	backgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	cordColor       = color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	claspColor      = color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
	selectedColor   = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}

	beadColors = []color.RGBA{
		{R: 0x8a, G: 0x8d, B: 0x91, A: 0xff},
		{R: 0x8f, G: 0xd3, B: 0xff, A: 0xff},
		{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff},
		{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
		{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff},
	}
)

const (
	cordSamples  = 512
	cordWidthM   = 0.0015
	circleDetail = 32
	marginPx     = 16
)

// viewport maps world coordinates, in meters, to pixels.
type viewport struct {
	bounds necklace.Rect
	scale  float64
	offX   float64
	offY   float64
}

func newViewport(bounds necklace.Rect, width, height int) viewport {
	w := float64(width - 2*marginPx)
	h := float64(height - 2*marginPx)
	scale := min(w/bounds.Width(), h/bounds.Height())
	return viewport{
		bounds: bounds,
		scale:  scale,
		offX:   marginPx + (w-bounds.Width()*scale)/2,
		offY:   marginPx + (h-bounds.Height()*scale)/2,
	}
}

// px returns the pixel position of pt. The y axis points down in images.
func (v viewport) px(pt necklace.Point) (float32, float32) {
	x := (pt.X-v.bounds.X0)*v.scale + v.offX
	y := (v.bounds.Y1-pt.Y)*v.scale + v.offY
	return float32(x), float32(y)
}

// circle adds a circle to z. Circles with opposite winding cut holes into
// each other.
func (v viewport) circle(z *vector.Rasterizer, center necklace.Point, radius float64, clockwise bool) {
	dir := 1.0
	if clockwise {
		dir = -1
	}
	for i := 0; i <= circleDetail; i++ {
		th := dir * 2 * math.Pi * float64(i) / circleDetail
		s, c := math.Sincos(th)
		x, y := v.px(necklace.Pt(center.X+radius*c, center.Y+radius*s))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

// segment adds a straight stroke of the given width from p to q.
func (v viewport) segment(z *vector.Rasterizer, p, q necklace.Point, width float64) {
	d := q.Sub(p)
	if d.Hypot() == 0 {
		return
	}
	n := necklace.Vec(-d.Y, d.X).Normalize().Mul(width / 2)
	corners := [4]necklace.Point{
		p.Translate(n),
		q.Translate(n),
		q.Translate(n.Mul(-1)),
		p.Translate(n.Mul(-1)),
	}
	for i, c := range corners {
		x, y := v.px(c)
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

func fill(dst draw.Image, z *vector.Rasterizer, c color.Color) {
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// Render draws a top-down view of every layer of the session's design: the
// cord, the edges of the clasp gap and the beads. The selected bead is
// outlined.
func Render(s *necklace.Session, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	d := s.Design()
	if len(d.Layers) == 0 {
		return img
	}

	var bounds necklace.Rect
	maxBead := 0.0
	for i, l := range d.Layers {
		bb := l.Curve().BoundingBox()
		if i == 0 {
			bounds = bb
		} else {
			bounds = bounds.Union(bb)
		}
	}
	for _, b := range d.Beads {
		maxBead = max(maxBead, b.SizeMm/1000)
	}
	bounds = bounds.Inflate(maxBead, maxBead)
	if bounds.IsEmpty() {
		return img
	}
	v := newViewport(bounds, width, height)

	colors := map[string]color.RGBA{}
	for i, def := range s.Catalog() {
		colors[def.ID] = beadColors[i%len(beadColors)]
	}

	for _, l := range d.Layers {
		ix, err := s.Index(l.ID)
		if err != nil {
			continue
		}
		c := ix.Curve()

		z := vector.NewRasterizer(width, height)
		prev := c.Point(0)
		for i := 1; i <= cordSamples; i++ {
			p := c.Point(float64(i) / cordSamples)
			v.segment(z, prev, p, cordWidthM)
			prev = p
		}
		fill(img, z, cordColor)

		z = vector.NewRasterizer(width, height)
		v.circle(z, c.Point(0), cordWidthM*1.5, false)
		v.circle(z, c.Point(1), cordWidthM*1.5, false)
		fill(img, z, claspColor)

		for _, b := range d.LayerBeads(l.ID) {
			center := ix.PointAtSMm(b.SMm)
			r := b.SizeMm / 2000

			if b.ID == d.Selected {
				z = vector.NewRasterizer(width, height)
				v.circle(z, center, r*1.25, false)
				v.circle(z, center, r*1.1, true)
				fill(img, z, selectedColor)
			}

			col, ok := colors[b.Def]
			if !ok {
				col = beadColors[0]
			}
			z = vector.NewRasterizer(width, height)
			v.circle(z, center, r, false)
			fill(img, z, col)
		}
	}
	return img
}

// WritePNG renders the session and encodes the result as PNG.
func WritePNG(w io.Writer, s *necklace.Session, width, height int) error {
	return png.Encode(w, Render(s, width, height))
}
