package vmath

import "math"

// Vec2 is a float64 2D vector in simulation local space or canvas pixel space
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// LenSq returns squared magnitude without sqrt
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

func (a Vec2) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// Normalize returns the unit vector, zero-safe
func (a Vec2) Normalize() Vec2 {
	mag := a.Len()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{a.X * inv, a.Y * inv}
}

// ClampLen limits the vector to maxLen while preserving direction
func (a Vec2) ClampLen(maxLen float64) Vec2 {
	mag := a.Len()
	if mag <= maxLen || mag == 0 {
		return a
	}
	return a.Scale(maxLen / mag)
}

// Dist returns the Euclidean distance between a and b
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// DistSq returns the squared distance between a and b
func DistSq(a, b Vec2) float64 {
	return b.Sub(a).LenSq()
}

// LerpV interpolates component-wise, t=0 returns a, t=1 returns b
func LerpV(a, b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}
