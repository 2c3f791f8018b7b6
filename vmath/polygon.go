package vmath

import (
	"math"
	"slices"
)

// Rect is an axis-aligned bounding box
type Rect struct {
	Min, Max Vec2
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the box midpoint
func (r Rect) Center() Vec2 {
	return LerpV(r.Min, r.Max, 0.5)
}

// Contains reports whether p is inside the box, edges inclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// RandomPoint returns a uniform point in [Min, Max)
func (r Rect) RandomPoint(rng *FastRand) Vec2 {
	return Vec2{
		X: rng.Range(r.Min.X, r.Max.X),
		Y: rng.Range(r.Min.Y, r.Max.Y),
	}
}

// Bounds returns the bounding box of the points, zero Rect for empty input
func Bounds(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{
		Min: Vec2{math.Inf(1), math.Inf(1)},
		Max: Vec2{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range points {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// Centroid returns the vertex average, (0,0) for empty input
// Not the area centroid: for concave shapes the result may lie outside
func Centroid(points []Vec2) Vec2 {
	if len(points) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// PointInPolygon applies the ray-casting parity rule with a horizontal ray toward +X
// The polygon is implicitly closed (last vertex connects to first)
// Points exactly on an edge may classify either way
func PointInPolygon(p Vec2, poly []Vec2) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			crossX := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// ScanlineCrossings returns the sorted X coordinates where the horizontal line at y crosses the polygon edges
func ScanlineCrossings(y float64, poly []Vec2) []float64 {
	var xs []float64
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > y) != (b.Y > y) {
			xs = append(xs, (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X)
		}
	}
	slices.Sort(xs)
	return xs
}
