// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Vec2 is a 2D vector in world units. World space is centered on the origin
// with y pointing up.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for constructing a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// NormalizeOr returns v scaled to unit length, or fallback when v has no
// usable direction (zero, NaN or infinite length).
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fallback
	}
	return Vec2{v.X / l, v.Y / l}
}

// Clamp restricts each component of v to the box [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{ClampF(v.X, lo.X, hi.X), ClampF(v.Y, lo.Y, hi.Y)}
}

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min, Max Vec2
}

// BoxAt builds an AABB centered on center with the given full size.
func BoxAt(center, size Vec2) AABB {
	half := size.Scale(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec2 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the full extent of the box.
func (b AABB) Size() Vec2 {
	return b.Max.Sub(b.Min)
}

// Closest returns the point of b nearest to p. Points inside b map to themselves.
func (b AABB) Closest(p Vec2) Vec2 {
	return p.Clamp(b.Min, b.Max)
}

// Overlaps reports whether two boxes share interior area.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X < o.Max.X && o.Min.X < b.Max.X &&
		b.Min.Y < o.Max.Y && o.Min.Y < b.Max.Y
}

// Circle is a bounding circle in world space.
type Circle struct {
	Center Vec2
	Radius float64
}

// Side names the face of a stationary box that a moving volume struck.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "None"
	}
}

// classifySide picks the struck side from the offset between the moving
// center and its closest point on the stationary box. Horizontal wins only
// when strictly larger.
func classifySide(offset Vec2) Side {
	if math.Abs(offset.X) > math.Abs(offset.Y) {
		if offset.X < 0 {
			return SideLeft
		}
		return SideRight
	}
	if offset.Y > 0 {
		return SideTop
	}
	return SideBottom
}

// CollideCircleAABB tests a moving circle against a stationary box and
// returns the side of the box that was hit, or SideNone.
func CollideCircleAABB(c Circle, box AABB) Side {
	closest := box.Closest(c.Center)
	offset := c.Center.Sub(closest)
	if offset.LenSq() > c.Radius*c.Radius {
		return SideNone
	}
	return classifySide(offset)
}

// CollideAABB tests a moving box against a stationary box and returns the
// side of the stationary box that was hit, or SideNone.
func CollideAABB(moving, box AABB) Side {
	if !moving.Overlaps(box) {
		return SideNone
	}
	c := moving.Center()
	return classifySide(c.Sub(box.Closest(c)))
}
