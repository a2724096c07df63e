package core

import (
	"math"
	"testing"
)

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
			name:     "touching right edge (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching bottom edge (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "touching corner (no overlap)",
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
			name:     "tiny overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.9, 9.9, 10, 10),
			expected: true,
		},
		{
			name:     "fractional touch (no overlap)",
			a:        NewRect(0, 0, 10.5, 10),
			b:        NewRect(10.5, 0, 5, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := tc.a.Intersects(tc.b); result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Intersection is symmetric
			if result := tc.b.Intersects(tc.a); result != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %v, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, expected 60", r.Bottom())
	}

	c := r.Center()
	if c.X != 25 || c.Y != 40 {
		t.Errorf("Center() = (%v, %v), expected (25, 40)", c.X, c.Y)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !r.Contains(5, 5) {
		t.Error("Contains(5, 5) should be true")
	}
	if r.Contains(15, 5) {
		t.Error("Contains(15, 5) should be false")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	dx, dy := Normalize(3, 4)
	if math.Abs(dx-0.6) > 1e-9 || math.Abs(dy-0.8) > 1e-9 {
		t.Errorf("Normalize(3, 4) = (%v, %v), expected (0.6, 0.8)", dx, dy)
	}

	// Zero vector stays zero
	dx, dy = Normalize(0, 0)
	if dx != 0 || dy != 0 {
		t.Errorf("Normalize(0, 0) = (%v, %v), expected (0, 0)", dx, dy)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: 4})
	if v.X != 4 || v.Y != 6 {
		t.Errorf("Add = %+v, expected {4 6}", v)
	}

	s := Vec2{X: 2, Y: -3}.Scale(2)
	if s.X != 4 || s.Y != -6 {
		t.Errorf("Scale = %+v, expected {4 -6}", s)
	}
}
