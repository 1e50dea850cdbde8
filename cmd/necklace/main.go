// Command necklace lays out the beads of a necklace design and renders a
// preview of it.
//
// Usage:
//
//	necklace [-config design.toml] [-o preview.png] [-width 800] [-height 800]
//
// Without a design file, the default design with a single empty 420mm layer
// is used. Beads requested without a position are placed in the first free
// slot of their layer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"honnef.co/go/necklace"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "", "Path to design file (TOML)")
	output := flag.String("o", "", "Write a PNG preview to this path (overrides the design file)")
	width := flag.Int("width", 0, "Preview width in pixels (overrides the design file)")
	height := flag.Int("height", 0, "Preview height in pixels (overrides the design file)")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *output != "" {
		cfg.Preview.Output = *output
	}
	if *width > 0 {
		cfg.Preview.Width = *width
	}
	if *height > 0 {
		cfg.Preview.Height = *height
	}

	s, err := cfg.Build()
	if err != nil {
		log.Fatalf("building design: %v", err)
	}
	printSummary(s)

	if cfg.Preview.Output == "" {
		return
	}
	if cfg.Preview.Width <= 0 || cfg.Preview.Height <= 0 {
		log.Fatalf("invalid preview size %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	f, err := os.Create(cfg.Preview.Output)
	if err != nil {
		log.Fatalf("creating preview: %v", err)
	}
	if err := WritePNG(f, s, cfg.Preview.Width, cfg.Preview.Height); err != nil {
		f.Close()
		log.Fatalf("writing preview: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("writing preview: %v", err)
	}
	log.Printf("wrote preview to %s", cfg.Preview.Output)
}

func printSummary(s *necklace.Session) {
	d := s.Design()
	fmt.Printf("%s\n", d.Title)
	for _, l := range d.Layers {
		ix, err := s.Index(l.ID)
		if err != nil {
			continue
		}
		lo, hi := necklace.ReservedSpan(ix, l.GapAngle)
		fmt.Printf("\n%s (%s): %.0fmm requested, %.1fmm usable, clasp reserved above %.1fmm and below %.1fmm\n",
			l.Name, l.ID, l.LengthMm, ix.TotalLengthMm(), lo, hi)
		for _, b := range d.LayerBeads(l.ID) {
			fmt.Printf("  %-4s %-14s %5.1fmm at %6.1fmm\n", b.ID, b.Def, b.SizeMm, b.SMm)
		}
	}
	fmt.Printf("\nPrice: %.2f\n", s.Price())
}
