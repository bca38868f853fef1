package clip

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func assertPointNear(t *testing.T, got, want Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, epsilon, "x of %v, want %v", got, want)
	assert.InDelta(t, want.Y, got.Y, epsilon, "y of %v, want %v", got, want)
}

func labWindow() Window {
	return NewWindow(-0.5, 0.5, -0.5, 0.5)
}

func TestClassify(t *testing.T) {
	w := NewWindow(0, 10, 0, 10)

	tests := []struct {
		name string
		p    Point
		want Outcode
	}{
		{"inside", Pt(5, 5), Inside},
		{"left", Pt(-1, 5), Left},
		{"right", Pt(11, 5), Right},
		{"below", Pt(5, -1), Bottom},
		{"above", Pt(5, 11), Top},
		{"top left", Pt(-1, 11), Top | Left},
		{"top right", Pt(11, 11), Top | Right},
		{"bottom left", Pt(-1, -1), Bottom | Left},
		{"bottom right", Pt(11, -1), Bottom | Right},
		{"on left edge", Pt(0, 5), Inside},
		{"on right edge", Pt(10, 5), Inside},
		{"on bottom edge", Pt(5, 0), Inside},
		{"on top edge", Pt(5, 10), Inside},
		{"on corner", Pt(10, 10), Inside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.p, w))
		})
	}
}

func TestClassifyInvertedWindow(t *testing.T) {
	w := NewWindow(1, -1, 1, -1)
	require.True(t, w.Empty())

	assert.Equal(t, Left|Right|Bottom|Top, Classify(Pt(0, 0), w))
	assert.Equal(t, Right|Top, Classify(Pt(5, 5), w))
	assert.False(t, w.Contains(Pt(0, 0)))
}

func TestOutcodeString(t *testing.T) {
	assert.Equal(t, "INSIDE", Inside.String())
	assert.Equal(t, "LEFT", Left.String())
	assert.Equal(t, "RIGHT|TOP", (Top | Right).String())
	assert.Equal(t, "LEFT|RIGHT|BOTTOM|TOP", (Left | Right | Bottom | Top).String())
	assert.True(t, (Top | Left).Has(Top))
	assert.False(t, Bottom.Has(Top))
}

func TestClipLine_FullyInside(t *testing.T) {
	s := Seg(-0.3, -0.2, 0.4, 0.3)

	got, ok := ClipLine(s, labWindow())

	require.True(t, ok)
	assert.Equal(t, s, got, "a fully visible segment must come back unchanged")
}

func TestClipLine_FullyOutside(t *testing.T) {
	w := NewWindow(0, 10, 0, 10)

	tests := []struct {
		name string
		s    Segment
	}{
		{"left", Seg(-50, 5, -10, 5)},
		{"right", Seg(11, 5, 15, 5)},
		{"above", Seg(5, 11, 5, 15)},
		{"below", Seg(5, -50, 5, -10)},
		{"diagonal outside", Seg(-10, -10, -5, -5)},
		{"misses corner", Seg(-5, 8, 2, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ClipLine(tt.s, w)
			assert.False(t, ok)
		})
	}

	_, ok := ClipLine(Seg(-2, -2, -1, -1), labWindow())
	assert.False(t, ok)
}

func TestClipLine_Crossing(t *testing.T) {
	w := NewWindow(0, 10, 0, 10)

	tests := []struct {
		name   string
		s      Segment
		p0, p1 Point
	}{
		{"from left", Seg(-5, 5, 5, 5), Pt(0, 5), Pt(5, 5)},
		{"to right", Seg(5, 5, 15, 5), Pt(5, 5), Pt(10, 5)},
		{"from below", Seg(5, -5, 5, 5), Pt(5, 0), Pt(5, 5)},
		{"to above", Seg(5, 5, 5, 15), Pt(5, 5), Pt(5, 10)},
		{"straight through horizontally", Seg(-5, 2, 15, 2), Pt(0, 2), Pt(10, 2)},
		{"straight through vertically", Seg(3, 20, 3, -20), Pt(3, 10), Pt(3, 0)},
		{"corner to corner", Seg(-5, -5, 15, 15), Pt(0, 0), Pt(10, 10)},
		{"top then right", Seg(5, 5, 15, 12), Pt(5, 5), Pt(10, 8.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClipLine(tt.s, w)
			require.True(t, ok)
			assertPointNear(t, got.P0, tt.p0)
			assertPointNear(t, got.P1, tt.p1)
		})
	}
}

func TestClipLine_LabScene(t *testing.T) {
	// The clipping lab's frame lines sit just outside the default window.
	w := labWindow()

	got, ok := ClipLine(Seg(-0.8, -1.0, -0.8, 1.0), w)
	assert.False(t, ok)
	assert.Zero(t, got)

	got, ok = ClipLine(Seg(-0.6, 0.8, 0.6, 0.8), w)
	assert.False(t, ok)

	got, ok = ClipLine(Seg(-0.9, 0.3, -0.6, 0.8), w)
	assert.False(t, ok)

	got, ok = ClipLine(Seg(-0.55, 0.35, -0.25, 0.45), w)
	require.True(t, ok)
	assertPointNear(t, got.P0, Pt(-0.5, 0.35+0.05/3))
	assertPointNear(t, got.P1, Pt(-0.25, 0.45))
}

func TestClipLine_OnBoundary(t *testing.T) {
	w := NewWindow(0, 10, 0, 10)

	s := Seg(0, 0, 10, 0)
	got, ok := ClipLine(s, w)
	require.True(t, ok)
	assert.Equal(t, s, got)
}

func TestClipLine_ZeroLength(t *testing.T) {
	w := NewWindow(0, 10, 0, 10)

	got, ok := ClipLine(Seg(3, 3, 3, 3), w)
	require.True(t, ok)
	assert.Equal(t, Seg(3, 3, 3, 3), got)

	_, ok = ClipLine(Seg(30, 3, 30, 3), w)
	assert.False(t, ok)
}

func TestClipLine_EmptyWindow(t *testing.T) {
	inverted := []Window{
		NewWindow(1, -1, -1, 1),
		NewWindow(-1, 1, 1, -1),
		NewWindow(1, -1, 1, -1),
	}
	for _, w := range inverted {
		_, ok := ClipLine(Seg(0, 0, 0.1, 0.1), w)
		assert.False(t, ok, "window %v must reject everything", w)
	}
}

func TestClipLine_DegenerateWindow(t *testing.T) {
	w := NewWindow(0, 0, -1, 1)
	require.False(t, w.Empty())

	got, ok := ClipLine(Seg(-1, 0, 1, 0), w)
	require.True(t, ok)
	assertPointNear(t, got.P0, Pt(0, 0))
	assertPointNear(t, got.P1, Pt(0, 0))
}

func TestClipLine_Reversible(t *testing.T) {
	w := NewWindow(0, 10, 0, 10)
	s := Seg(-4, 1, 13, 9)

	fwd, ok := ClipLine(s, w)
	require.True(t, ok)
	rev, ok := ClipLine(s.Reverse(), w)
	require.True(t, ok)

	assertPointNear(t, fwd.P0, rev.P1)
	assertPointNear(t, fwd.P1, rev.P0)
}

func TestClipLine_Containment(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	coord := func() float64 { return rng.Float64()*4 - 2 }

	accepted := 0
	for i := 0; i < 5000; i++ {
		x0, x1 := coord(), coord()
		y0, y1 := coord(), coord()
		w := NewWindow(min(x0, x1), max(x0, x1), min(y0, y1), max(y0, y1))
		s := Seg(coord(), coord(), coord(), coord())

		got, ok := ClipLine(s, w)
		if !ok {
			continue
		}
		accepted++
		require.Equal(t, Inside, Classify(got.P0, w), "case %d: %v in %v -> %v", i, s, w, got)
		require.Equal(t, Inside, Classify(got.P1, w), "case %d: %v in %v -> %v", i, s, w, got)
	}
	assert.Positive(t, accepted)
}

func TestClipLines(t *testing.T) {
	segs := []Segment{
		Seg(-0.3, -0.2, 0.4, 0.3),
		Seg(-2, -2, -1, -1),
		Seg(-1, 0, 1, 0),
	}

	got := ClipLines(segs, labWindow())

	require.Len(t, got, 2)
	assert.Equal(t, segs[0], got[0])
	assertPointNear(t, got[1].P0, Pt(-0.5, 0))
	assertPointNear(t, got[1].P1, Pt(0.5, 0))
}

func TestPointLerp(t *testing.T) {
	p, q := Pt(1, -2), Pt(5, 6)
	assert.Equal(t, p, p.Lerp(q, 0))
	assert.Equal(t, q, p.Lerp(q, 1))
	assert.Equal(t, Pt(3, 2), p.Lerp(q, 0.5))
	assert.Equal(t, Pt(-3, -10), p.Lerp(q, -1))
}

func TestClipLine_PinsToEdge(t *testing.T) {
	// 0.1 and 0.7 are not exact in binary; the clipped coordinate still
	// lands exactly on the edge.
	w := NewWindow(0.1, 0.7, 0.1, 0.7)
	got, ok := ClipLine(Seg(-0.3, 0.2, 0.9, 0.6), w)
	require.True(t, ok)
	assert.Equal(t, 0.1, got.P0.X)
	assert.Equal(t, 0.7, got.P1.X)
	assert.Equal(t, Inside, Classify(got.P0, w))
	assert.Equal(t, Inside, Classify(got.P1, w))
}

func TestWindow(t *testing.T) {
	w := NewWindow(-1, 3, 2, 4)

	assert.Equal(t, 4.0, w.Width())
	assert.Equal(t, 2.0, w.Height())
	assert.Equal(t, Pt(1, 3), w.Center())
	assert.True(t, w.Contains(Pt(3, 4)))
	assert.False(t, w.Contains(Pt(3.1, 4)))
	assert.Equal(t, "[-1,3]x[2,4]", w.String())

	border := w.Border()
	assert.Equal(t, Seg(-1, 2, 3, 2), border[0], "bottom")
	assert.Equal(t, Seg(3, 2, 3, 4), border[1], "right")
	assert.Equal(t, Seg(3, 4, -1, 4), border[2], "top")
	assert.Equal(t, Seg(-1, 4, -1, 2), border[3], "left")
}
