// Package core provides the shared device and geometry types for droidview.
package core

import "math"

// Point represents a screen coordinate in pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds represents element position and size.
// Width and Height are raw right-left / bottom-top differences; an inverted
// source rectangle yields negative values, which are kept as-is.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the midpoint of the bounds, rounding .5 upward.
func (b Bounds) Center() Point {
	return Point{
		X: int(math.Round(float64(b.X) + float64(b.Width)/2)),
		Y: int(math.Round(float64(b.Y) + float64(b.Height)/2)),
	}
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.Width && p.Y >= b.Y && p.Y < b.Y+b.Height
}

// Area returns the covered area in square pixels.
func (b Bounds) Area() int {
	return b.Width * b.Height
}
