package display

// SpriteUpdate is a rectangular bit-pattern update anchored at (X, Y) on the
// logical grid. Rows may have differing lengths; a row's length is its bit
// width (nominally 8). Updates are transient: consumed synchronously on
// arrival, never retained.
type SpriteUpdate struct {
	X    int
	Y    int
	Rows [][]bool
}

// RowsFromBytes expands sprite bytes into rows of bits, most significant bit
// first, one row per byte.
func RowsFromBytes(data []byte) [][]bool {
	rows := make([][]bool, len(data))
	for j, b := range data {
		row := make([]bool, 8)
		for i := 0; i < 8; i++ {
			row[i] = b&(0x80>>i) != 0
		}
		rows[j] = row
	}
	return rows
}
