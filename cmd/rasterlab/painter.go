package main

import (
	"errors"
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"github.com/gogpu/rasterlab"
	"github.com/gogpu/rasterlab/affine"
	"github.com/gogpu/rasterlab/clip"
	"github.com/gogpu/rasterlab/raster"
)

// errNoGPU reports that the gpu backend could not find a device.
var errNoGPU = errors.New("no GPU available")

// Scene colors, shared by both backends.
var (
	fillColor  = raster.Teal
	inkColor   = raster.Black
	frameColor = raster.Red
)

// painter turns a drawing into pixels.
type painter interface {
	paint(d drawing, width, height int) (*raster.Pixmap, error)
	close()
}

// newPainter returns the painter for cfg.backend. The gpu backend falls
// back to software when no device can be opened.
func newPainter(cfg config) (painter, error) {
	if cfg.backend == backendGPU {
		p, err := openGPU(cfg.background)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, errNoGPU) {
			return nil, err
		}
		rasterlab.Logger().Warn("GPU unavailable, using the software backend", "err", err)
	}
	return softwarePainter{background: cfg.background}, nil
}

// softwarePainter draws with the raster package on the CPU.
type softwarePainter struct {
	background raster.RGBA
}

func (p softwarePainter) paint(d drawing, width, height int) (*raster.Pixmap, error) {
	c := newCanvas(width, height, p.background)
	if d.fill {
		c.fillTriangle(d.triangle, d.model, fillColor)
	}
	for _, s := range d.lines {
		c.line(s, inkColor)
	}
	for _, s := range d.border {
		c.line(s, frameColor)
	}
	c.pm.PlotGrid(d.pixels, inkColor)
	return c.pm, nil
}

func (softwarePainter) close() {}

// canvas maps normalized device coordinates onto a pixmap whose grid
// origin is the bottom-left pixel.
type canvas struct {
	pm *raster.Pixmap

	// ndc maps normalized device coordinates to continuous grid
	// coordinates. Pixel centres sit on integers, so -1 and 1 land half a
	// pixel outside the grid.
	ndc affine.Matrix3

	// clip bounds the pixel centres of the grid.
	clip rect.Rect
}

func newCanvas(width, height int, background raster.RGBA) canvas {
	pm := raster.NewPixmap(width, height)
	pm.Clear(background)
	w, h := float64(width), float64(height)
	return canvas{
		pm:   pm,
		ndc:  affine.Multiply(affine.Translation(w/2-0.5, h/2-0.5), affine.Scaling(w/2, h/2)),
		clip: rect.Rect{LLx: 0, LLy: 0, URx: w - 1, URy: h - 1},
	}
}

// transform maps p through ctm.
func transform(ctm matrix.Matrix, p clip.Point) (float64, float64) {
	return ctm[0]*p.X + ctm[2]*p.Y + ctm[4],
		ctm[1]*p.X + ctm[3]*p.Y + ctm[5]
}

// line rasterizes s and returns the number of pixels plotted.
func (c canvas) line(s clip.Segment, col raster.RGBA) int {
	ctm := c.ndc.CTM()
	x0, y0 := transform(ctm, s.P0)
	x1, y1 := transform(ctm, s.P1)
	return c.pm.PlotGrid(raster.Line(x0, y0, x1, y1), col)
}

// fillTriangle plots every pixel whose centre lies inside the triangle
// tri drawn through model, edges included.
func (c canvas) fillTriangle(tri [3]clip.Point, model affine.Matrix3, col raster.RGBA) int {
	ctm := c.ndc.Mul(model).CTM()

	var gx, gy [3]float64
	for i, p := range tri {
		gx[i], gy[i] = transform(ctm, p)
	}
	area := edge(gx[0], gy[0], gx[1], gy[1], gx[2], gy[2])
	if area == 0 {
		return 0
	}

	minX := max(int(math.Floor(min(gx[0], gx[1], gx[2]))), int(c.clip.LLx))
	maxX := min(int(math.Ceil(max(gx[0], gx[1], gx[2]))), int(c.clip.URx))
	minY := max(int(math.Floor(min(gy[0], gy[1], gy[2]))), int(c.clip.LLy))
	maxY := min(int(math.Ceil(max(gy[0], gy[1], gy[2]))), int(c.clip.URy))

	var pts []image.Point
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x), float64(y)
			w0 := edge(gx[1], gy[1], gx[2], gy[2], px, py)
			w1 := edge(gx[2], gy[2], gx[0], gy[0], px, py)
			w2 := edge(gx[0], gy[0], gx[1], gy[1], px, py)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return c.pm.PlotGrid(pts, col)
}

// edge is twice the signed area of (a, b, p); positive when p is left of ab.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}
