// Package core provides fundamental types and utilities for the pong simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in playfield units.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a vector from its components.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector pointing along v.
// A zero vector yields NaN components.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Extend lifts v into 3D with the given z.
func (v Vec2) Extend(z float64) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Vec3 is a position or scale. Z carries draw order only and never
// takes part in collision.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a vector from its components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Truncate drops the z component.
func (v Vec3) Truncate() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Box is an axis-aligned bounding box described by its center and full size.
// The playfield origin is its center and y grows upwards.
type Box struct {
	Center Vec2
	Size   Vec2
}

// BoxOf builds the collision box of an entity from its position and scale.
func BoxOf(position, scale Vec3) Box {
	return Box{Center: position.Truncate(), Size: scale.Truncate()}
}

// Min returns the lower-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Size.Scale(0.5))
}

// Max returns the upper-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Size.Scale(0.5))
}

// Overlaps reports whether the two boxes intersect with positive area.
// Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin.X < oMax.X && bMax.X > oMin.X && bMin.Y < oMax.Y && bMax.Y > oMin.Y
}

// Collision names the side of an obstacle a box ran into.
type Collision int

const (
	CollisionNone   Collision = iota // No overlap
	CollisionLeft                    // Box hit the obstacle's left side
	CollisionRight                   // Box hit the obstacle's right side
	CollisionTop                     // Box hit the obstacle's top side
	CollisionBottom                  // Box hit the obstacle's bottom side
	CollisionInside                  // Overlap with no resolvable side
)

// String returns a human-readable name for the collision side.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "None"
	case CollisionLeft:
		return "Left"
	case CollisionRight:
		return "Right"
	case CollisionTop:
		return "Top"
	case CollisionBottom:
		return "Bottom"
	case CollisionInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Collide tests box a against obstacle b and classifies the side of b that a
// penetrated. When a side is found on both axes the one with the shallower
// penetration wins; equal depths resolve to the y axis.
func Collide(a, b Box) Collision {
	if !a.Overlaps(b) {
		return CollisionNone
	}

	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	xSide, xDepth := CollisionNone, 0.0
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xDepth = CollisionLeft, aMax.X-bMin.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xDepth = CollisionRight, bMax.X-aMin.X
	}

	ySide, yDepth := CollisionNone, 0.0
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = CollisionBottom, aMax.Y-bMin.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yDepth = CollisionTop, bMax.Y-aMin.Y
	}

	switch {
	case xSide != CollisionNone && ySide != CollisionNone:
		if yDepth <= xDepth {
			return ySide
		}
		return xSide
	case xSide != CollisionNone:
		return xSide
	case ySide != CollisionNone:
		return ySide
	default:
		return CollisionInside
	}
}

// Rect represents an axis-aligned cell rectangle on a Screen.
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
