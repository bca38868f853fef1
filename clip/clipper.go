package clip

import "strings"

// Outcode is the Cohen-Sutherland region code of a point: one bit for each
// half-plane outside the window the point lies in.
type Outcode uint8

// Outcode bits. Corner regions set two bits.
const (
	Inside Outcode = 0
	Left   Outcode = 1
	Right  Outcode = 2
	Bottom Outcode = 4
	Top    Outcode = 8
)

// Has reports whether all bits of flag are set in c.
func (c Outcode) Has(flag Outcode) bool {
	return c&flag == flag
}

// String returns the set bits joined by '|', or "INSIDE".
func (c Outcode) String() string {
	if c == Inside {
		return "INSIDE"
	}
	var parts []string
	for _, f := range []struct {
		bit  Outcode
		name string
	}{{Left, "LEFT"}, {Right, "RIGHT"}, {Bottom, "BOTTOM"}, {Top, "TOP"}} {
		if c&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Classify computes the outcode of p against w.
//
// The four half-plane tests are independent and strict, so a point on an
// edge counts as inside on that axis. For an empty (inverted) window a point
// can be reported as both Left and Right, or both Bottom and Top.
func Classify(p Point, w Window) Outcode {
	code := Inside

	if p.X < w.Left {
		code |= Left
	}
	if p.X > w.Right {
		code |= Right
	}
	if p.Y < w.Bottom {
		code |= Bottom
	}
	if p.Y > w.Top {
		code |= Top
	}

	return code
}

// ClipLine clips s to w using the Cohen-Sutherland algorithm.
// It returns the visible part of s and true, or false if no part of s is
// visible. Segments against an empty window are always rejected.
//
// An endpoint outside the window is moved to the window edge named by the
// first set bit of its outcode in the order Top, Bottom, Right, Left, and
// the test repeats until the segment is trivially accepted or rejected.
func ClipLine(s Segment, w Window) (Segment, bool) {
	if w.Empty() {
		return Segment{}, false
	}

	p0, p1 := s.P0, s.P1
	code0 := Classify(p0, w)
	code1 := Classify(p1, w)

	for {
		if (code0 | code1) == Inside {
			// Both inside - trivially accept
			return Segment{P0: p0, P1: p1}, true
		}
		if (code0 & code1) != 0 {
			// Both outside the same half-plane - trivially reject
			return Segment{}, false
		}

		// At least one point is outside; clip that one.
		codeOut := code0
		if codeOut == Inside {
			codeOut = code1
		}

		// A set bit guarantees the segment crosses that edge, so the
		// divisor below is non-zero. The clipped coordinate is pinned to
		// the edge so rounding cannot leave it outside.
		var p Point
		switch {
		case codeOut&Top != 0:
			p = p0.Lerp(p1, (w.Top-p0.Y)/(p1.Y-p0.Y))
			p.Y = w.Top
		case codeOut&Bottom != 0:
			p = p0.Lerp(p1, (w.Bottom-p0.Y)/(p1.Y-p0.Y))
			p.Y = w.Bottom
		case codeOut&Right != 0:
			p = p0.Lerp(p1, (w.Right-p0.X)/(p1.X-p0.X))
			p.X = w.Right
		case codeOut&Left != 0:
			p = p0.Lerp(p1, (w.Left-p0.X)/(p1.X-p0.X))
			p.X = w.Left
		}

		if codeOut == code0 {
			p0 = p
			code0 = Classify(p0, w)
		} else {
			p1 = p
			code1 = Classify(p1, w)
		}
	}
}

// ClipLines clips every segment in segs to w and returns the visible parts
// in input order. Invisible segments are dropped.
func ClipLines(segs []Segment, w Window) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if c, ok := ClipLine(s, w); ok {
			out = append(out, c)
		}
	}
	return out
}
