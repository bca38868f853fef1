package main

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/rasterlab/affine"
	"github.com/gogpu/rasterlab/clip"
	"github.com/gogpu/rasterlab/controller"
)

// triangle is the model of the transform lab, apex up, in model space.
var triangle = [3]clip.Point{{X: 0, Y: 0.2}, {X: -0.1, Y: -0.1}, {X: 0.1, Y: -0.1}}

// owlLines returns the line drawing of the clipping lab: an owl with
// glasses, plus lines near the screen edges that exercise every region.
func owlLines() []clip.Segment {
	return []clip.Segment{
		// head
		clip.Seg(-0.6, 0.8, 0.6, 0.8),
		clip.Seg(0.6, 0.8, 0.9, 0.3),
		clip.Seg(0.9, 0.3, 0.6, -0.4),
		clip.Seg(0.6, -0.4, 0, -0.7),
		clip.Seg(0, -0.7, -0.6, -0.4),
		clip.Seg(-0.6, -0.4, -0.9, 0.3),
		clip.Seg(-0.9, 0.3, -0.6, 0.8),

		// beak
		clip.Seg(-0.1, -0.1, 0.2, -0.2),
		clip.Seg(0.2, -0.2, -0.1, -0.3),
		clip.Seg(-0.1, -0.3, -0.1, -0.1),

		// glasses
		clip.Seg(-0.5, 0.2, -0.2, 0.2),
		clip.Seg(-0.2, 0.2, -0.2, -0.1),
		clip.Seg(-0.2, -0.1, -0.5, -0.1),
		clip.Seg(-0.5, -0.1, -0.5, 0.2),
		clip.Seg(0.1, 0.2, 0.4, 0.2),
		clip.Seg(0.4, 0.2, 0.4, -0.1),
		clip.Seg(0.4, -0.1, 0.1, -0.1),
		clip.Seg(0.1, -0.1, 0.1, 0.2),
		clip.Seg(-0.2, 0.05, 0.1, 0.05),

		// eyebrows
		clip.Seg(-0.55, 0.35, -0.25, 0.45),
		clip.Seg(0.25, 0.45, 0.55, 0.35),

		// edge lines
		clip.Seg(-0.8, -1.0, -0.8, 1.0),
		clip.Seg(-1, -0.8, 1, -0.8),
		clip.Seg(-1, 0.8, 1, 0.8),
		clip.Seg(0.8, -1.0, 0.8, 1.0),
		clip.Seg(-1, -1, -0.8, -0.8),
		clip.Seg(-1, 1, -0.8, 0.8),
		clip.Seg(1, -1, 0.8, -0.8),
		clip.Seg(1, 1, 0.8, 0.8),
	}
}

// drawing is everything a scene shows. Segments are in normalized device
// coordinates, pixels on the bottom-left grid.
type drawing struct {
	// fill draws triangle through model.
	fill     bool
	triangle [3]clip.Point
	model    affine.Matrix3

	lines   []clip.Segment
	border  []clip.Segment
	pixels  []image.Point
	caption string
}

// transformScene draws the teal triangle through the model matrix built
// from the replayed keys.
func transformScene(cfg config) drawing {
	tc := controller.NewTransformController()
	for _, k := range cfg.keys {
		tc.HandleKey(k)
	}

	x, y := tc.Position()
	return drawing{
		fill:     true,
		triangle: triangle,
		model:    tc.Matrix(),
		caption: fmt.Sprintf("pos (%.2f, %.2f)  angle %.0f deg  scale %.2f",
			x, y, tc.Angle()*180/math.Pi, tc.Scale()),
	}
}

// clipScene draws the owl through the clip window and the window frame.
func clipScene(cfg config) drawing {
	wc := controller.NewWindowController(controller.WithClipping(cfg.clipping))
	for _, k := range cfg.keys {
		wc.HandleKey(k)
	}

	lines := owlLines()
	visible := wc.Segments(lines)
	border := wc.Border()

	state := "off"
	if wc.Clipping() {
		state = "on"
	}
	return drawing{
		lines:   visible,
		border:  border[:],
		caption: fmt.Sprintf("window %v  clipping %s  %d/%d lines", wc.Window(), state, len(visible), len(lines)),
	}
}

// rasterScene replays canvas clicks through a shape recorder. Without
// clicks it draws a diagonal line and a circle.
func rasterScene(cfg config) drawing {
	rec := controller.NewShapeRecorder(cfg.height, controller.WithMode(cfg.mode))
	if len(cfg.clicks) > 0 {
		for _, p := range cfg.clicks {
			rec.Click(p.X, p.Y)
		}
	} else {
		w, h := cfg.width, cfg.height
		rec.SetMode(controller.ModeLine)
		rec.Click(w/8, h*7/8)
		rec.Click(w*7/8, h/8)
		rec.SetMode(controller.ModeCircle)
		rec.Click(w/2, h/2)
		rec.Click(w/2+w/4, h/2)
	}

	pixels := rec.Pixels()
	bounds := image.Rect(0, 0, cfg.width, cfg.height)
	onCanvas := 0
	for _, p := range pixels {
		if p.In(bounds) {
			onCanvas++
		}
	}
	return drawing{
		pixels:  pixels,
		caption: fmt.Sprintf("%d shapes  %d pixels  %d on canvas", len(rec.Shapes()), len(pixels), onCanvas),
	}
}

func buildScene(cfg config, scene string) (drawing, error) {
	switch scene {
	case "transform":
		return transformScene(cfg), nil
	case "clip":
		return clipScene(cfg), nil
	case "raster":
		return rasterScene(cfg), nil
	}
	return drawing{}, fmt.Errorf("%w: unknown scene %q", errUsage, scene)
}
