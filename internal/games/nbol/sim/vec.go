// Package sim is the combat and entity-state simulation core of nbol.
//
// The package is UI-agnostic and deterministic: a World advances one fixed
// tick at a time, driven by sampled Input, and reports what happened through
// value-type events. Rendering, input devices and persistence live elsewhere.
package sim

import "math"

// TileSize is the number of world units in one tile.
const TileSize = 64.0

// Vec3 is a position or direction in world space.
// Y grows upward. Z only orders drawing and is ignored by distance checks.
type Vec3 struct {
	X, Y, Z float64
}

// V creates a vector on the ground plane.
func V(x, y float64) Vec3 {
	return Vec3{X: x, Y: y}
}

// Tiles converts tile coordinates to world units.
func Tiles(x, y float64) Vec3 {
	return Vec3{X: x * TileSize, Y: y * TileSize}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Len returns the planar length of v.
func (v Vec3) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the planar distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	return o.Sub(v).Len()
}

// Normalize returns the planar unit vector of v, or zero for a zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{Z: v.Z}
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z}
}

// MoveToward moves v toward target by at most maxStep, never past it.
func (v Vec3) MoveToward(target Vec3, maxStep float64) Vec3 {
	delta := target.Sub(v)
	dist := delta.Len()
	if dist <= maxStep || dist == 0 {
		return Vec3{X: target.X, Y: target.Y, Z: v.Z}
	}
	return v.Add(delta.Normalize().Scale(maxStep))
}

// Bounds is the axis-aligned playable area in world units.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// CenteredBounds returns bounds of the given tile size centered on the origin.
func CenteredBounds(widthTiles, heightTiles float64) Bounds {
	hw := widthTiles * TileSize / 2
	hh := heightTiles * TileSize / 2
	return Bounds{MinX: -hw, MinY: -hh, MaxX: hw, MaxY: hh}
}

// Contains reports whether p lies within the bounds.
func (b Bounds) Contains(p Vec3) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Clamp returns p moved inside the bounds.
func (b Bounds) Clamp(p Vec3) Vec3 {
	p.X = math.Max(b.MinX, math.Min(b.MaxX, p.X))
	p.Y = math.Max(b.MinY, math.Min(b.MaxY, p.Y))
	return p
}
