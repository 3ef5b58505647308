package core

import "testing"

func TestGridWrap(t *testing.T) {
	g := NewGrid(12, 40)

	tests := []struct {
		name     string
		in       Point
		expected Point
	}{
		{"inside", Point{5, 5}, Point{5, 5}},
		{"past right edge", Point{40, 3}, Point{0, 3}},
		{"past left edge", Point{-1, 3}, Point{39, 3}},
		{"past bottom edge", Point{7, 12}, Point{7, 0}},
		{"past top edge", Point{7, -1}, Point{7, 11}},
		{"both axes", Point{-1, -1}, Point{39, 11}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Wrap(tc.in)
			if result != tc.expected {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, result, tc.expected)
			}
			if !g.Contains(result) {
				t.Errorf("Wrap(%v) = %v is outside the grid", tc.in, result)
			}
		})
	}
}

func TestGridContains(t *testing.T) {
	g := NewGrid(3, 4)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"last cell", Point{3, 2}, true},
		{"x at width (exclusive)", Point{4, 0}, false},
		{"y at height (exclusive)", Point{0, 3}, false},
		{"negative", Point{-1, 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := g.Contains(tc.p); result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}

	if g.Cells() != 12 {
		t.Errorf("Cells() = %d, expected 12", g.Cells())
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, n, expected int
	}{
		{5, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
		{-4, 3, 2},
		{0, 7, 0},
	}

	for _, tc := range tests {
		if result := Mod(tc.a, tc.n); result != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.n, result, tc.expected)
		}
	}
}
