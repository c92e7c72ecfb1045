package display

import "testing"

func TestRowsFromBytes(t *testing.T) {
	rows := RowsFromBytes([]byte{0xF0, 0x0F, 0xAA})
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	want := [][]bool{
		{true, true, true, true, false, false, false, false},
		{false, false, false, false, true, true, true, true},
		{true, false, true, false, true, false, true, false},
	}
	for j, row := range want {
		for i, bit := range row {
			if rows[j][i] != bit {
				t.Errorf("rows[%d][%d] = %v, want %v", j, i, rows[j][i], bit)
			}
		}
	}
}

func TestRowsFromBytesEmpty(t *testing.T) {
	if rows := RowsFromBytes(nil); len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}
