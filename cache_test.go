package necklace

import "testing"

func TestCache(t *testing.T) {
	var c Cache
	ix := c.Index(420, 1.15, DefaultGapAngle)
	if got := c.Index(420, 1.15, DefaultGapAngle); got != ix {
		t.Error("got a new index for an unchanged shape")
	}
	if got := c.Index(500, 1.15, DefaultGapAngle); got == ix {
		t.Error("got the same index for a different length")
	}
	if got := c.Index(420, 1, DefaultGapAngle); got == ix {
		t.Error("got the same index for a different aspect")
	}
	if c.Len() != 3 {
		t.Errorf("got %d entries, want 3", c.Len())
	}

	// Lengths that clamp to the same loop share an entry.
	short := c.Index(10, 1, DefaultGapAngle)
	if got := c.Index(MinLengthMm, 1, DefaultGapAngle); got != short {
		t.Error("clamped lengths don't share an index")
	}

	c.Invalidate(420, 1.15, DefaultGapAngle)
	if got := c.Index(420, 1.15, DefaultGapAngle); got == ix {
		t.Error("got the invalidated index")
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("got %d entries after reset, want 0", c.Len())
	}
}

func TestCacheLayerIndex(t *testing.T) {
	var c Cache
	l := DefaultDesign().Layers[0]
	ix := c.LayerIndex(l)
	if ix.Curve() != l.Curve() {
		t.Errorf("got curve %v, want %v", ix.Curve(), l.Curve())
	}
}
