package controller

import (
	"image"
	"math"

	"github.com/gogpu/rasterlab"
	"github.com/gogpu/rasterlab/raster"
)

// Mode selects what a completed pair of clicks rasterizes.
type Mode uint8

const (
	// ModeLine draws a Bresenham line between the two clicks.
	ModeLine Mode = iota
	// ModeCircle draws a midpoint circle centred on the first click through
	// the second.
	ModeCircle
)

func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeCircle:
		return "circle"
	}
	return "Mode(?)"
}

// Shape is one rasterized line or circle in grid coordinates.
type Shape struct {
	Mode   Mode
	Start  image.Point
	End    image.Point
	Pixels []image.Point
}

// ShapeRecorder turns pairs of canvas clicks into rasterized shapes, the
// interaction of the rasterization lab.
//
// Clicks arrive in canvas coordinates (origin top-left, y down) and are
// flipped onto a grid whose origin is the bottom-left pixel.
type ShapeRecorder struct {
	height  int
	mode    Mode
	start   image.Point
	pending bool
	shapes  []Shape
}

// NewShapeRecorder creates a recorder for a canvas height pixels tall.
func NewShapeRecorder(height int, opts ...RecorderOption) *ShapeRecorder {
	var o recorderOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &ShapeRecorder{height: height, mode: o.mode}
}

// Mode returns the current shape mode.
func (r *ShapeRecorder) Mode() Mode {
	return r.mode
}

// SetMode changes the mode used by the next completed shape. A pending
// first click is kept.
func (r *ShapeRecorder) SetMode(m Mode) {
	r.mode = m
}

// Pending returns the recorded first click in grid coordinates, if any.
func (r *ShapeRecorder) Pending() (image.Point, bool) {
	return r.start, r.pending
}

// Click records a click at canvas position (x, y). The first click of a
// pair is stored; the second rasterizes a shape in the current mode,
// appends it and returns it with true.
func (r *ShapeRecorder) Click(x, y int) (Shape, bool) {
	p := image.Pt(x, r.height-1-y)
	if !r.pending {
		r.start, r.pending = p, true
		return Shape{}, false
	}
	r.pending = false

	s := Shape{Mode: r.mode, Start: r.start, End: p}
	switch r.mode {
	case ModeCircle:
		d := p.Sub(r.start)
		radius := math.Sqrt(float64(d.X*d.X + d.Y*d.Y))
		s.Pixels = raster.Circle(float64(r.start.X), float64(r.start.Y), radius)
	default:
		s.Pixels = raster.Line(float64(r.start.X), float64(r.start.Y), float64(p.X), float64(p.Y))
	}
	r.shapes = append(r.shapes, s)

	rasterlab.Logger().Debug("controller: shape",
		"mode", s.Mode, "start", s.Start, "end", s.End, "pixels", len(s.Pixels))
	return s, true
}

// Shapes returns the completed shapes in drawing order.
func (r *ShapeRecorder) Shapes() []Shape {
	return append([]Shape(nil), r.shapes...)
}

// Pixels returns the pixels of every completed shape, concatenated in
// drawing order.
func (r *ShapeRecorder) Pixels() []image.Point {
	n := 0
	for _, s := range r.shapes {
		n += len(s.Pixels)
	}
	pts := make([]image.Point, 0, n)
	for _, s := range r.shapes {
		pts = append(pts, s.Pixels...)
	}
	return pts
}

// Clear forgets every shape and any pending click.
func (r *ShapeRecorder) Clear() {
	r.shapes = nil
	r.pending = false
	r.start = image.Point{}
}
