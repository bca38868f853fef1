// Package clip classifies points against a rectangular window and clips
// line segments to it with the Cohen-Sutherland algorithm.
//
// Coordinates follow the usual math convention: x grows to the right and y
// grows upward, so a window's Bottom is numerically below its Top.
package clip

import "fmt"

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp performs linear interpolation between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Segment is a line segment between two points.
type Segment struct {
	P0, P1 Point
}

// Seg creates a Segment from endpoint coordinates.
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{P0: Point{X: x0, Y: y0}, P1: Point{X: x1, Y: y1}}
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

// Window is an axis-aligned clip rectangle.
//
// A window with Left > Right or Bottom > Top is empty: nothing is visible
// through it. A window with Left == Right or Bottom == Top is a valid
// degenerate window that only admits points on that line.
type Window struct {
	Left, Right float64
	Bottom, Top float64
}

// NewWindow creates a Window from its four edges.
func NewWindow(left, right, bottom, top float64) Window {
	return Window{Left: left, Right: right, Bottom: bottom, Top: top}
}

// Empty reports whether w has inverted edges on either axis.
func (w Window) Empty() bool {
	return w.Left > w.Right || w.Bottom > w.Top
}

// Width returns the horizontal extent of w.
func (w Window) Width() float64 {
	return w.Right - w.Left
}

// Height returns the vertical extent of w.
func (w Window) Height() float64 {
	return w.Top - w.Bottom
}

// Center returns the midpoint of w.
func (w Window) Center() Point {
	return Point{X: (w.Left + w.Right) / 2, Y: (w.Bottom + w.Top) / 2}
}

// Contains reports whether p lies inside w or on its boundary.
func (w Window) Contains(p Point) bool {
	return !w.Empty() && Classify(p, w) == Inside
}

// Border returns the four edges of w in the order bottom, right, top, left.
func (w Window) Border() [4]Segment {
	return [4]Segment{
		Seg(w.Left, w.Bottom, w.Right, w.Bottom),
		Seg(w.Right, w.Bottom, w.Right, w.Top),
		Seg(w.Right, w.Top, w.Left, w.Top),
		Seg(w.Left, w.Top, w.Left, w.Bottom),
	}
}

// String implements fmt.Stringer.
func (w Window) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", w.Left, w.Right, w.Bottom, w.Top)
}
