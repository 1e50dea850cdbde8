package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/necklace"
)

const testDesign = `
title = "Summer"
gap_mm = 0.5

[[catalog]]
id = "pearl"
name = "Pearl 6mm"
diameter_mm = 6
price = 4

[[layers]]
name = "Choker"
length_mm = 380
aspect = 1.1
cord_price = 12

  [[layers.beads]]
  def = "pearl"
  s_mm = 200.0

  [[layers.beads]]
  def = "pearl"
  count = 3

[[layers]]
length_mm = 600

[preview]
width = 320
height = 240
output = "summer.png"
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(testDesign)
	if err != nil {
		t.Fatal(err)
	}
	s200 := 200.0
	want := Config{
		Title:   "Summer",
		GapMm:   0.5,
		Catalog: []BeadConfig{{ID: "pearl", Name: "Pearl 6mm", DiameterMm: 6, Price: 4}},
		Layers: []LayerConfig{
			{
				Name:      "Choker",
				LengthMm:  380,
				Aspect:    1.1,
				CordPrice: 12,
				Beads:     []Order{{Def: "pearl", SMm: &s200}, {Def: "pearl", Count: 3}},
			},
			{LengthMm: 600},
		},
		Preview: PreviewConfig{Width: 320, Height: 240, Output: "summer.png"},
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Error(d)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.toml")
	if err := os.WriteFile(path, []byte("title = \"Loaded\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Loaded" {
		t.Errorf("got title %q, want %q", cfg.Title, "Loaded")
	}
	// Defaults survive.
	if cfg.Preview.Width != 800 || cfg.Preview.Height != 800 {
		t.Errorf("got preview size %dx%d, want 800x800", cfg.Preview.Width, cfg.Preview.Height)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("loaded a missing file")
	}
}

func TestLoadConfigMatchesParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.toml")
	if err := os.WriteFile(path, []byte(testDesign+"
sparkle = true
"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "sparkle") {
		t.Errorf("unknown key wasn't logged, got log %q", buf.String())
	}
	buf.Reset()
	parsed, err := ParseConfig(testDesign + "
sparkle = true
")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "sparkle") {
		t.Errorf("unknown key wasn't logged, got log %q", buf.String())
	}
	if d := cmp.Diff(parsed, loaded); d != "" {
		t.Error(d)
	}

	path = filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("title = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("loaded a broken file")
	}
}

func TestBuild(t *testing.T) {
	cfg, err := ParseConfig(testDesign)
	if err != nil {
		t.Fatal(err)
	}
	s, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	d := s.Design()
	if d.Title != "Summer" || d.GapMm != 0.5 {
		t.Errorf("got title %q and gap %v", d.Title, d.GapMm)
	}
	if len(d.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(d.Layers))
	}
	second := d.Layers[1]
	if second.Name != "Layer 2" || second.Aspect != necklace.DefaultAspect || second.GapAngle != necklace.DefaultGapAngle {
		t.Errorf("second layer didn't get defaults: %+v", second)
	}

	beads := d.LayerBeads("L1")
	if len(beads) != 4 {
		t.Fatalf("got %d beads, want 4", len(beads))
	}
	if got := s.Price(); got != 12+4*4 {
		t.Errorf("got price %v, want %v", got, 12+4*4)
	}
}

func TestBuildFullLayer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layers[0].Beads = []Order{{Def: "glass_ball", Count: 500}}
	s, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	n := len(s.Design().Beads)
	if n == 0 || n >= 500 {
		t.Errorf("got %d beads on a full layer", n)
	}
}

func TestBuildUnknownBead(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layers[0].Beads = []Order{{Def: "nope"}}
	if _, err := cfg.Build(); err == nil {
		t.Error("built a design with an unknown bead")
	}
}
