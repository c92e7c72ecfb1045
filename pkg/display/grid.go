package display

// Grid is the authoritative 64x32 boolean pixel matrix. Coordinates wrap
// modulo the grid dimensions, so the grid behaves as a torus and out-of-range
// writes are impossible by construction.
type Grid struct {
	cells [GridHeight][GridWidth]bool
}

// wrap reduces v into [0, n), handling negative values.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Set writes the cell at the wrapped coordinate and returns the coordinate
// that was actually written.
func (g *Grid) Set(x, y int, on bool) (int, int) {
	x = wrap(x, GridWidth)
	y = wrap(y, GridHeight)
	g.cells[y][x] = on
	return x, y
}

// At reports the cell state at the wrapped coordinate.
func (g *Grid) At(x, y int) bool {
	return g.cells[wrap(y, GridHeight)][wrap(x, GridWidth)]
}

// Clear sets every cell to the background state.
func (g *Grid) Clear() {
	g.cells = [GridHeight][GridWidth]bool{}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, on bool)) {
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}
