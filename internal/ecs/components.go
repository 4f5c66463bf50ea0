package ecs

import "math"

// Vec2 is a 2D vector in screen space (+Y points down)
type Vec2 struct {
	X, Y float64
}

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Length returns the vector length
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// NormalizeOrZero returns the unit vector, or the zero vector for zero input
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Position represents an entity's position in pixels
type Position struct {
	X, Y float64
}

// MovementController holds the movement intent of a controllable entity
type MovementController struct {
	Intent   Vec2    // normalized direction, zero when not moving
	MaxSpeed float64 // pixels per second
}

// Sprite is the renderable reference into a texture atlas
type Sprite struct {
	AtlasIndex int
	FlipX      bool
}

// SoundEffect is a sound source attached to an entity.
// The audio system starts a voice for it and stops the voice when the
// entity is destroyed.
type SoundEffect struct {
	Clip   string
	Loop   bool
	Volume float64
}
