// Package geom provides the small amount of 3D math the game logic needs:
// vectors, axis-aligned boxes and a few generic numeric helpers.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vec3 is a point or displacement in world space. Y is up, the playfield lies
// in the X/Z plane.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new vector.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// LerpVec3 linearly interpolates between a and b.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max Vec3
}

// BoxFromCenter builds a box of the given full size around center.
func BoxFromCenter(center, size Vec3) Box3 {
	half := size.Scale(0.5)
	return Box3{Min: center.Sub(half), Max: center.Add(half)}
}

// Intersects reports whether the two boxes overlap. Touching faces count as an
// intersection.
func (b Box3) Intersects(o Box3) bool {
	return !(o.Max.X < b.Min.X || o.Min.X > b.Max.X ||
		o.Max.Y < b.Min.Y || o.Min.Y > b.Max.Y ||
		o.Max.Z < b.Min.Z || o.Min.Z > b.Max.Z)
}

// Center returns the centre point of the box.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Expand grows the box by d on every side. Negative d shrinks it.
func (b Box3) Expand(d float64) Box3 {
	delta := Vec3{X: d, Y: d, Z: d}
	return Box3{Min: b.Min.Sub(delta), Max: b.Max.Add(delta)}
}

// Clamp returns f clamped to [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp interpolates between a and b by t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
