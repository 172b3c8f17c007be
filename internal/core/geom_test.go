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
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
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

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestCollideCircleAABB(t *testing.T) {
	box := BoxAt(V2(0, 0), V2(100, 100))

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected Side
	}{
		{"right face", V2(60, 5), 10, SideRight},
		{"left face", V2(-55, 0), 10, SideLeft},
		{"top face", V2(3, 58), 10, SideTop},
		{"bottom face", V2(-3, -52), 10, SideBottom},
		{"too far", V2(70, 0), 10, SideNone},
		{"corner miss", V2(58, 58), 10, SideNone},
		{"corner tie goes vertical", V2(54, 54), 10, SideTop},
		{"lower corner tie", V2(54, -54), 10, SideBottom},
		{"center inside", V2(0, 0), 10, SideBottom},
		{"touching edge", V2(60, 0), 10, SideRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollideCircleAABB(Circle{Center: tt.center, Radius: tt.radius}, box)
			if got != tt.expected {
				t.Errorf("CollideCircleAABB(%v, r=%v) = %v, expected %v",
					tt.center, tt.radius, got, tt.expected)
			}
		})
	}
}

func TestCollideAABB(t *testing.T) {
	box := BoxAt(V2(0, 0), V2(100, 20))

	tests := []struct {
		name     string
		moving   AABB
		expected Side
	}{
		{"from above", BoxAt(V2(0, 14), V2(10, 10)), SideTop},
		{"from below", BoxAt(V2(10, -14), V2(10, 10)), SideBottom},
		{"from the right", BoxAt(V2(54, 0), V2(10, 10)), SideRight},
		{"from the left", BoxAt(V2(-54, 2), V2(10, 10)), SideLeft},
		{"apart", BoxAt(V2(0, 40), V2(10, 10)), SideNone},
		{"adjacent", BoxAt(V2(0, 15.0001), V2(10, 10)), SideNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollideAABB(tt.moving, box); got != tt.expected {
				t.Errorf("CollideAABB() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVec2NormalizeOr(t *testing.T) {
	up := V2(0, 1)

	if got := V2(0, 0).NormalizeOr(up); got != up {
		t.Errorf("zero vector should fall back, got %v", got)
	}
	got := V2(3, 4).NormalizeOr(up)
	if math.Abs(got.X-0.6) > 1e-12 || math.Abs(got.Y-0.8) > 1e-12 {
		t.Errorf("NormalizeOr(3,4) = %v, expected (0.6, 0.8)", got)
	}
	if l := V2(-7, 2).NormalizeOr(up).Len(); math.Abs(l-1) > 1e-12 {
		t.Errorf("normalized length = %v, expected 1", l)
	}
}

func TestAABBHelpers(t *testing.T) {
	b := BoxAt(V2(10, -5), V2(20, 10))
	if b.Min != V2(0, -10) || b.Max != V2(20, 0) {
		t.Errorf("BoxAt bounds = %v..%v", b.Min, b.Max)
	}
	if b.Center() != V2(10, -5) {
		t.Errorf("Center() = %v", b.Center())
	}
	if b.Size() != V2(20, 10) {
		t.Errorf("Size() = %v", b.Size())
	}
	if got := b.Closest(V2(30, 5)); got != V2(20, 0) {
		t.Errorf("Closest() = %v, expected (20, 0)", got)
	}
}
