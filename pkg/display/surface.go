package display

// Surface defines the interface for visible output backends.
// Implementations include an Ebiten window and a terminal renderer.
//
// A Surface owns two render targets: an off-screen target that FillCell and
// FillAll mutate, and a visible target that Present refreshes by copying the
// off-screen target wholesale. Partial copies are never performed, so
// intermediate states are never visible.
type Surface interface {
	// Resize recreates the off-screen target for the given geometry.
	// Resizing always discards prior off-screen content; the compositor
	// re-blits the cached grid immediately afterwards.
	Resize(geo Geometry)

	// FillCell paints the pixel block for one logical cell on the
	// off-screen target. A no-op while the geometry is degenerate
	// (PixelSize == 0).
	FillCell(x, y int, on bool)

	// FillAll paints every cell of the off-screen target to one state.
	FillAll(on bool)

	// Present copies the entire off-screen target to the visible target.
	// Called at most once per paint tick, by the compositor's flush.
	Present()
}
