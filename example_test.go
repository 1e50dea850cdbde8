package necklace_test

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/necklace"
)

func ExampleFindNextAvailablePosition() {
	ix := necklace.NewIndex(necklace.MakeCurve(420, 1.15))
	beads := []necklace.Span{
		{SMm: 100, SizeMm: 8},
		{SMm: 200, SizeMm: 8},
	}
	s, ok := necklace.FindNextAvailablePosition(ix, beads, 8, 0, necklace.DefaultGapAngle)
	fmt.Println(s, ok)
	// Output: 108 true
}

func ExampleSession() {
	s := necklace.NewSession(necklace.DefaultDesign(), necklace.DefaultCatalog())
	for _, def := range []string{"metal_ball", "glass_ball"} {
		b, err := s.AddBead("L1", def)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s at %.1fmm\n", b.Def, b.SMm)
	}

	_, err := s.AddBead("L9", "metal_ball")
	fmt.Println(errors.Is(err, necklace.ErrUnknownLayer))
	fmt.Println("price:", s.Price())
	// Output:
	// metal_ball at 11.2mm
	// glass_ball at 18.2mm
	// true
	// price: 20
}

func ExampleSession_UpdateDrag() {
	s := necklace.NewSession(necklace.DefaultDesign(), necklace.DefaultCatalog())
	s.AddBeadAt("L1", "glass_ball", 100)
	s.AddBeadAt("L1", "glass_ball", 200)
	ix, _ := s.Index("L1")

	// Press the pointer on the first bead, then move it onto the second.
	id, _ := s.BeginDrag(ix.PointAtSMm(100).Vec3())
	p := ix.PointAtSMm(198)
	sMm, _ := s.UpdateDrag(necklace.Ray{
		Origin:    r3.Vec{X: p.X, Y: p.Y, Z: 1},
		Direction: r3.Vec{Z: -1},
	})
	s.EndDrag()

	fmt.Printf("%s snapped to %.2fmm\n", id, sMm)
	// Output: B1 snapped to 207.95mm
}
