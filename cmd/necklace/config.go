package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"honnef.co/go/necklace"
)

// Config is a design file.
type Config struct {
	Title   string        `toml:"title"`
	GapMm   float64       `toml:"gap_mm"`
	Catalog []BeadConfig  `toml:"catalog"`
	Layers  []LayerConfig `toml:"layers"`
	Preview PreviewConfig `toml:"preview"`
}

// BeadConfig is a catalog entry.
type BeadConfig struct {
	ID         string  `toml:"id"`
	Name       string  `toml:"name"`
	DiameterMm float64 `toml:"diameter_mm"`
	Price      float64 `toml:"price"`
}

// LayerConfig describes one loop and the beads to put on it.
type LayerConfig struct {
	Name      string  `toml:"name"`
	LengthMm  float64 `toml:"length_mm"`
	Aspect    float64 `toml:"aspect"`
	GapAngle  float64 `toml:"gap_angle"`
	CordPrice float64 `toml:"cord_price"`
	Cord      string  `toml:"cord"`
	Beads     []Order `toml:"beads"`
}

// Order requests beads of one kind. Without a position, Count beads are
// placed in the first free slots; with one, a single bead is placed there.
type Order struct {
	Def   string   `toml:"def"`
	Count int      `toml:"count"`
	SMm   *float64 `toml:"s_mm"`
}

// PreviewConfig controls the PNG preview.
type PreviewConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Output string `toml:"output"`
}

// DefaultConfig returns the configuration used without a design file: the
// default layer and catalog, without beads.
func DefaultConfig() Config {
	cfg := Config{Preview: PreviewConfig{Width: 800, Height: 800}}
	d := necklace.DefaultDesign()
	cfg.Title = d.Title
	for _, l := range d.Layers {
		cfg.Layers = append(cfg.Layers, LayerConfig{
			Name:      l.Name,
			LengthMm:  l.LengthMm,
			Aspect:    l.Aspect,
			GapAngle:  l.GapAngle,
			CordPrice: l.CordPrice,
			Cord:      l.CordMaterial,
		})
	}
	return cfg
}

// LoadConfig reads a design file. See [ParseConfig].
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", path, err)
	}
	cfg, err := ParseConfig(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses a design. Missing settings take their default values;
// unknown keys are logged and ignored.
func ParseConfig(data string) (Config, error) {
	cfg := Config{Preview: PreviewConfig{Width: 800, Height: 800}}
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Printf("config: ignoring unknown keys %v", undecoded)
	}
	return cfg, nil
}

func (c Config) catalog() necklace.Catalog {
	if len(c.Catalog) == 0 {
		return necklace.DefaultCatalog()
	}
	out := make(necklace.Catalog, len(c.Catalog))
	for i, b := range c.Catalog {
		out[i] = necklace.BeadDef{
			ID:             b.ID,
			Name:           b.Name,
			BaseDiameterMm: b.DiameterMm,
			Price:          b.Price,
		}
	}
	return out
}

// Build creates a session for the design and places the requested beads.
//
// Beads that don't fit are skipped with a log message, like a full loop in
// the editor. Orders naming unknown beads are an error.
func (c Config) Build() (*necklace.Session, error) {
	d := necklace.Design{Title: c.Title}
	d = d.WithGapMm(c.GapMm)
	for i, lc := range c.Layers {
		l := necklace.Layer{
			ID:           fmt.Sprintf("L%d", i+1),
			Name:         lc.Name,
			LengthMm:     lc.LengthMm,
			Aspect:       lc.Aspect,
			GapAngle:     lc.GapAngle,
			CordMaterial: lc.Cord,
			CordPrice:    lc.CordPrice,
		}
		if l.Name == "" {
			l.Name = fmt.Sprintf("Layer %d", i+1)
		}
		if l.Aspect == 0 {
			l.Aspect = necklace.DefaultAspect
		}
		if l.GapAngle == 0 {
			l.GapAngle = necklace.DefaultGapAngle
		}
		if l.CordMaterial == "" {
			l.CordMaterial = "nylon"
		}
		d.Layers = append(d.Layers, l)
	}

	s := necklace.NewSession(d, c.catalog())
	for i, lc := range c.Layers {
		id := d.Layers[i].ID
		for _, o := range lc.Beads {
			if o.SMm != nil {
				b, err := s.AddBeadAt(id, o.Def, *o.SMm)
				if err != nil {
					return nil, err
				}
				log.Printf("layer %s: placed %s at %.1fmm", id, b.Def, b.SMm)
				continue
			}
			for range max(o.Count, 1) {
				b, err := s.AddBead(id, o.Def)
				if errors.Is(err, necklace.ErrNoSpace) {
					log.Printf("layer %s: %v", id, err)
					break
				} else if err != nil {
					return nil, err
				}
				log.Printf("layer %s: placed %s at %.1fmm", id, b.Def, b.SMm)
			}
		}
	}
	return s, nil
}
