package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "edge touching horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "edge touching vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "corner touching",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-8, -11, 8, 11),
			b:        NewRect(-1, -1, 4, 4),
			expected: true,
		},
		{
			name:     "empty rect",
			a:        NewRect(0, 0, 0, 10),
			b:        NewRect(0, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestNewRectClampsNegativeExtent(t *testing.T) {
	r := NewRect(3, 4, -5, -1)
	if r.W != 0 || r.H != 0 {
		t.Errorf("NewRect with negative extent = %dx%d, expected 0x0", r.W, r.H)
	}
	if !r.Empty() {
		t.Error("Rect with zero extent should be empty")
	}
}

func TestRectAt(t *testing.T) {
	r := RectAt(Vec{X: -2, Y: 7}, Size{W: 24, H: 12})
	if r != (Rect{X: -2, Y: 7, W: 24, H: 12}) {
		t.Errorf("RectAt() = %+v", r)
	}
}

func TestVecAdd(t *testing.T) {
	got := Vec{X: 1, Y: -3}.Add(Vec{X: 0, Y: 3})
	if got != (Vec{X: 1, Y: 0}) {
		t.Errorf("Add() = %+v, expected {1 0}", got)
	}
}
