package picker

import (
	"math"

	"github.com/jmylchreest/polarpick/internal/colour"
)

const (
	// DefaultSize is the wheel diameter in pixels when none is configured.
	DefaultSize = 200

	// Margin is the inset between the surface edge and the drawn wheel,
	// reserved for the border stroke.
	Margin = 10
)

// Point is a pointer sample in pixels, relative to the surface's top-left corner.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Sample converts raw input coordinates to surface coordinates by removing
// the offset of the surface's bounding box.
func Sample(raw, origin Point) Point {
	return Point{X: raw.X - origin.X, Y: raw.Y - origin.Y}
}

// Geometry derives every wheel measurement from a single diameter.
type Geometry struct {
	Size int
}

// Center returns the centre of the square surface.
func (g Geometry) Center() Point {
	half := float64(g.Size) / 2
	return Point{X: half, Y: half}
}

// Radius is the radius of the painted wheel, inset by Margin.
func (g Geometry) Radius() float64 {
	return float64(g.Size)/2 - Margin
}

// OuterRadius is half the surface size. It bounds interaction and
// defines full saturation, which is deliberately larger than Radius.
func (g Geometry) OuterRadius() float64 {
	return float64(g.Size) / 2
}

// Polar returns the angle in (-π, π] and the distance of p from the centre.
// Angle 0 points east and grows clockwise in screen coordinates.
func (g Geometry) Polar(p Point) (angle, distance float64) {
	c := g.Center()
	dx, dy := p.X-c.X, p.Y-c.Y
	return math.Atan2(dy, dx), math.Hypot(dx, dy)
}

// Contains reports whether a distance lies within the interactive bound (inclusive).
func (g Geometry) Contains(distance float64) bool {
	return distance <= g.OuterRadius()
}

// HSVAt maps polar coordinates to HSV. Value is always 1.
func (g Geometry) HSVAt(angle, distance float64) colour.HSV {
	if angle < 0 {
		angle += 2 * math.Pi
	}

	var saturation float64
	if outer := g.OuterRadius(); outer > 0 {
		saturation = math.Max(0, math.Min(1, distance/outer))
	}

	return colour.HSV{
		H: angle / (2 * math.Pi),
		S: saturation,
		V: 1,
	}
}

// ColourFromPosition maps polar coordinates to a canonical "#rrggbb" string.
func (g Geometry) ColourFromPosition(angle, distance float64) string {
	return g.HSVAt(angle, distance).RGB().Hex()
}

// PositionForColour is the inverse of HSVAt: it returns the surface point
// whose hue and saturation match hsv. Value is ignored.
func (g Geometry) PositionForColour(hsv colour.HSV) Point {
	c := g.Center()
	angle := hsv.H * 2 * math.Pi
	distance := math.Max(0, math.Min(1, hsv.S)) * g.OuterRadius()
	return Point{
		X: c.X + math.Cos(angle)*distance,
		Y: c.Y + math.Sin(angle)*distance,
	}
}
