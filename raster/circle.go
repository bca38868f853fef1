package raster

import "image"

// Circle returns the pixels of the midpoint circle centred at (xc, yc) with
// radius r. Centre and radius are rounded first.
//
// The algorithm walks one octant from (0, r) while x < y and emits the eight
// symmetric reflections of every visited point, the first one included.
// Pixels on octant boundaries (x == 0 or x == y) are emitted more than once;
// callers that plot points tolerate the overdraw, so they are kept.
//
// A zero radius yields the centre eight times. A negative rounded radius is
// processed as given: the loop never runs, and the result is the eight
// reflections of (0, r), i.e. the four axis points at distance |r|, each
// twice.
func Circle(xc, yc, r float64) []image.Point {
	cx, cy, rr := Round(xc), Round(yc), Round(r)

	x, y := 0, rr
	p := 1 - rr

	var pts []image.Point
	if rr > 0 {
		// About r/√2 steps, eight points each.
		pts = make([]image.Point, 0, 8*(rr*3/4+2))
	}
	pts = appendOctants(pts, cx, cy, x, y)

	for x < y {
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
		pts = appendOctants(pts, cx, cy, x, y)
	}
	return pts
}

// appendOctants appends the eight reflections of (x, y) about (cx, cy).
func appendOctants(pts []image.Point, cx, cy, x, y int) []image.Point {
	return append(pts,
		image.Pt(cx+x, cy+y),
		image.Pt(cx-x, cy+y),
		image.Pt(cx+x, cy-y),
		image.Pt(cx-x, cy-y),
		image.Pt(cx+y, cy+x),
		image.Pt(cx-y, cy+x),
		image.Pt(cx+y, cy-x),
		image.Pt(cx-y, cy-x),
	)
}
