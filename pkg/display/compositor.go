// Package display owns the authoritative pixel state of the front end: the
// fixed 64x32 logical grid, the geometry that maps it onto a resizable
// output surface, and the compositor that applies sprite updates and
// schedules coalesced refreshes.
package display

// Compositor owns the logical grid and drives a Surface backend. All methods
// must be called from the single UI thread; mutations mark the surface dirty
// and Flush performs at most one Present per paint tick.
type Compositor struct {
	grid Grid
	geo  Geometry
	out  Surface

	// dirty is set by mutations and consumed by Flush.
	dirty bool
}

// NewCompositor returns a compositor drawing to out. The surface starts with
// degenerate geometry; callers resize it via SetContainerSize before anything
// is visible.
func NewCompositor(out Surface) *Compositor {
	return &Compositor{out: out}
}

// Geometry returns the current geometry state.
func (c *Compositor) Geometry() Geometry {
	return c.geo
}

// Grid returns the logical grid. The returned pointer shares state with the
// compositor and must only be read from the UI thread.
func (c *Compositor) Grid() *Grid {
	return &c.grid
}

// SetContainerSize recomputes the geometry for a resized container. The
// off-screen target resize discards its content, so the cached grid is
// re-blitted in full rather than leaving a blank frame until the engine's
// next update.
func (c *Compositor) SetContainerSize(width, height int) Geometry {
	geo := Resolve(width, height)
	if geo == c.geo {
		return geo
	}
	c.geo = geo
	c.out.Resize(geo)
	c.repaint()
	c.dirty = true
	return geo
}

// repaint paints every grid cell onto the off-screen target.
func (c *Compositor) repaint() {
	c.grid.Each(func(x, y int, on bool) {
		c.out.FillCell(x, y, on)
	})
}

// Clear sets every cell to background and schedules a refresh. Idempotent.
func (c *Compositor) Clear() {
	c.grid.Clear()
	c.out.FillAll(false)
	c.dirty = true
}

// Blit applies a sprite update with toroidal wraparound. Each bit overwrites
// the addressed cell's state; cells outside the update are untouched. The
// grid is updated even while the geometry is degenerate so that a later
// resize repaints consistently.
func (c *Compositor) Blit(u SpriteUpdate) {
	if len(u.Rows) == 0 {
		return
	}
	for j, row := range u.Rows {
		for i, bit := range row {
			x, y := c.grid.Set(u.X+i, u.Y+j, bit)
			c.out.FillCell(x, y, bit)
		}
	}
	c.dirty = true
}

// Flush presents pending mutations, if any. The backend calls this exactly
// once per paint tick; N mutations within one tick coalesce into one Present.
func (c *Compositor) Flush() {
	if !c.dirty {
		return
	}
	c.dirty = false
	c.out.Present()
}
