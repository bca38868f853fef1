// Package raster enumerates the integer pixels that approximate straight
// lines (Bresenham) and circles (midpoint circle algorithm), and provides a
// small RGBA Pixmap to plot them on.
//
// Both algorithms use integer arithmetic only. Inputs are rounded to the
// nearest integer first with [Round].
package raster

import (
	"image"
	"math"
)

// Round rounds v to the nearest integer, with halves rounded toward
// positive infinity (Round(2.5) == 3, Round(-2.5) == -2).
// Non-finite inputs have no meaningful result.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Line returns the pixels of the Bresenham line from (x0, y0) to (x1, y1).
//
// The endpoints are rounded first. The first pixel is the rounded start and
// the last is the rounded end; a zero-length line yields the single start
// pixel. The line walks one pixel per step along its major axis (the one
// with the larger delta; y when the deltas are equal) and steps the minor
// axis when the decision variable is non-negative.
//
// Line(a, b) is always Line(b, a) reversed.
func Line(x0, y0, x1, y1 float64) []image.Point {
	return line(
		image.Pt(Round(x0), Round(y0)),
		image.Pt(Round(x1), Round(y1)),
	)
}

func line(p0, p1 image.Point) []image.Point {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y

	// Decision ties go the same way regardless of which endpoint comes
	// first: always walk forward along the major axis and reverse after.
	xMajor := abs(dx) > abs(dy)
	if (xMajor && dx < 0) || (!xMajor && dy < 0) {
		pts := line(p1, p0)
		reverse(pts)
		return pts
	}

	n := max(abs(dx), abs(dy)) + 1
	pts := make([]image.Point, 0, n)

	if xMajor {
		walk(&pts, p0.X, p0.Y, p1.X, dx, abs(dy), step(dy), func(major, minor int) image.Point {
			return image.Pt(major, minor)
		})
	} else {
		walk(&pts, p0.Y, p0.X, p1.Y, dy, abs(dx), step(dx), func(major, minor int) image.Point {
			return image.Pt(minor, major)
		})
	}
	return pts
}

// walk runs the Bresenham loop along a major axis that advances by +1 from
// major to end, emitting every pixel including both ends.
func walk(pts *[]image.Point, major, minor, end, dMajor, dMinor, sMinor int, pt func(major, minor int) image.Point) {
	d := 2*dMinor - dMajor
	incStraight := 2 * dMinor
	incDiagonal := 2 * (dMinor - dMajor)

	*pts = append(*pts, pt(major, minor))
	for major != end {
		if d < 0 {
			d += incStraight
		} else {
			d += incDiagonal
			minor += sMinor
		}
		major++
		*pts = append(*pts, pt(major, minor))
	}
}

// step returns the direction to move along an axis with delta d.
// A non-positive delta steps by -1; it is never used for d == 0 because
// the decision variable stays negative when the minor delta is zero.
func step(d int) int {
	if d > 0 {
		return 1
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func reverse(pts []image.Point) {
	for l, r := 0, len(pts)-1; l < r; l, r = l+1, r-1 {
		pts[l], pts[r] = pts[r], pts[l]
	}
}
