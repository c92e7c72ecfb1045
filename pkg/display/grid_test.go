package display

import "testing"

func TestGridSetWraps(t *testing.T) {
	cases := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"in range", 10, 20, 10, 20},
		{"x wraps right edge", 64, 0, 0, 0},
		{"x wraps far", 130, 0, 2, 0},
		{"y wraps bottom edge", 0, 32, 0, 0},
		{"both wrap", 65, 33, 1, 1},
		{"negative x", -1, 0, 63, 0},
		{"negative y", 0, -1, 0, 31},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g Grid
			x, y := g.Set(tc.x, tc.y, true)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("Set(%d, %d) wrote (%d, %d), want (%d, %d)",
					tc.x, tc.y, x, y, tc.wantX, tc.wantY)
			}
			if !g.At(tc.wantX, tc.wantY) {
				t.Errorf("cell (%d, %d) not set", tc.wantX, tc.wantY)
			}
		})
	}
}

func TestGridClear(t *testing.T) {
	var g Grid
	g.Set(5, 5, true)
	g.Set(63, 31, true)
	g.Clear()

	count := 0
	g.Each(func(x, y int, on bool) {
		if on {
			count++
		}
	})
	if count != 0 {
		t.Errorf("%d cells set after Clear, want 0", count)
	}
}

func TestGridSetOverwrites(t *testing.T) {
	var g Grid
	g.Set(3, 3, true)
	g.Set(3, 3, false)
	if g.At(3, 3) {
		t.Error("cell (3, 3) still set after overwrite with false")
	}
}
