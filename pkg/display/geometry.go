package display

// Logical grid dimensions. Fixed for the lifetime of the process; only the
// screen-space mapping (pixel cell size) ever changes.
const (
	GridWidth  = 64
	GridHeight = 32
)

// Geometry describes how the logical grid maps onto the available display
// area. Recomputed on every container resize, never persisted.
type Geometry struct {
	ContainerWidth  int
	ContainerHeight int

	// PixelSize is the side length of one logical cell in output pixels.
	// Zero is a valid degenerate state: the container is smaller than the
	// grid and rendering is a no-op until it grows.
	PixelSize int

	CanvasWidth  int
	CanvasHeight int
}

// Resolve computes the canvas dimensions and integer cell size for the given
// container, preserving the grid's 2:1 aspect ratio.
//
// If the container is relatively wider than 2:1 the height is the limiting
// dimension: the canvas height is the container height floored to a multiple
// of GridHeight and the width follows. Otherwise the width limits, floored to
// a multiple of GridWidth.
func Resolve(containerWidth, containerHeight int) Geometry {
	g := Geometry{
		ContainerWidth:  containerWidth,
		ContainerHeight: containerHeight,
	}

	if containerWidth < 0 {
		containerWidth = 0
	}
	if containerHeight < 0 {
		containerHeight = 0
	}

	if containerWidth > 2*containerHeight {
		g.CanvasHeight = (containerHeight / GridHeight) * GridHeight
		g.CanvasWidth = 2 * g.CanvasHeight
	} else {
		g.CanvasWidth = (containerWidth / GridWidth) * GridWidth
		g.CanvasHeight = g.CanvasWidth / 2
	}

	g.PixelSize = g.CanvasHeight / GridHeight
	return g
}
