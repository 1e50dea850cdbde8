package necklace

// CurveKey identifies the shape of a loop.
type CurveKey struct {
	LengthMm float64
	Aspect   float64
	GapAngle float64
}

// Cache memoizes curves and their indices by shape.
//
// Entries are only ever created from their key, so a stale entry can't be
// returned for a changed layer; Invalidate exists to release the memory of
// shapes that are no longer in use. The zero value is ready to use. A Cache
// is not safe for concurrent use.
type Cache struct {
	entries map[CurveKey]*Index
}

// Index returns the index of the loop with the given shape, building it if
// necessary.
func (c *Cache) Index(lengthMm, aspect, gapAngle float64) *Index {
	// Normalize the key first, so that requests that clamp to the same
	// curve share one entry.
	curve := MakeCurveGap(lengthMm, aspect, gapAngle)
	key := curve.Key()
	if ix, ok := c.entries[key]; ok {
		return ix
	}
	if c.entries == nil {
		c.entries = make(map[CurveKey]*Index)
	}
	ix := NewIndex(curve)
	c.entries[key] = ix
	return ix
}

// LayerIndex returns the index of the layer's loop.
func (c *Cache) LayerIndex(l Layer) *Index {
	return c.Index(l.LengthMm, l.Aspect, l.GapAngle)
}

// Invalidate drops the entry for the loop with the given shape.
func (c *Cache) Invalidate(lengthMm, aspect, gapAngle float64) {
	delete(c.entries, MakeCurveGap(lengthMm, aspect, gapAngle).Key())
}

// Reset drops all entries.
func (c *Cache) Reset() {
	clear(c.entries)
}

// Len returns the number of cached loops.
func (c *Cache) Len() int {
	return len(c.entries)
}
