// Package controller holds the UI-side state of the three labs.
//
// Controllers are plain values mutated by one event loop; they are not safe
// for concurrent use. Each one turns key presses or clicks into state and
// hands core results (clipped segments, matrices, pixels) to a renderer.
package controller

import (
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rasterlab"
	"github.com/gogpu/rasterlab/clip"
)

// WindowController owns the clip window of the clipping lab.
//
// The window pans in fixed steps and zooms about its centre. It never pans
// past the screen bounds and never zooms in below the minimum size. Zooming
// out caps the size at the maximum and clamps the result to the screen.
type WindowController struct {
	opts     windowOptions
	window   clip.Window
	clipping bool
}

// NewWindowController creates a controller with the default window
// [-0.5, 0.5]² on a [-1, 1]² screen, with clipping enabled.
func NewWindowController(opts ...WindowOption) *WindowController {
	o := defaultWindowOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &WindowController{
		opts:     o,
		window:   o.window,
		clipping: o.clipping,
	}
}

// Window returns the current clip window.
func (c *WindowController) Window() clip.Window {
	return c.window
}

// Screen returns the bounds the window is kept within.
func (c *WindowController) Screen() clip.Window {
	return c.opts.screen
}

// Clipping reports whether segments are clipped before drawing.
func (c *WindowController) Clipping() bool {
	return c.clipping
}

// SetClipping enables or disables clipping.
func (c *WindowController) SetClipping(enabled bool) {
	c.clipping = enabled
	rasterlab.Logger().Debug("controller: clipping", "enabled", enabled)
}

// ToggleClipping flips the clipping flag and returns the new value.
func (c *WindowController) ToggleClipping() bool {
	c.SetClipping(!c.clipping)
	return c.clipping
}

// Pan moves the window dx steps horizontally and dy steps vertically
// (positive is right and up). Each step is taken only if the leading edge
// stays within the screen, so a blocked step leaves that axis unchanged.
// Pan reports whether the window moved.
func (c *WindowController) Pan(dx, dy int) bool {
	moved := false
	step := c.opts.moveStep
	s := c.opts.screen

	for ; dx < 0; dx++ {
		if c.window.Left-step < s.Left {
			break
		}
		c.window.Left -= step
		c.window.Right -= step
		moved = true
	}
	for ; dx > 0; dx-- {
		if c.window.Right+step > s.Right {
			break
		}
		c.window.Left += step
		c.window.Right += step
		moved = true
	}
	for ; dy < 0; dy++ {
		if c.window.Bottom-step < s.Bottom {
			break
		}
		c.window.Bottom -= step
		c.window.Top -= step
		moved = true
	}
	for ; dy > 0; dy-- {
		if c.window.Top+step > s.Top {
			break
		}
		c.window.Bottom += step
		c.window.Top += step
		moved = true
	}

	if moved {
		rasterlab.Logger().Debug("controller: pan", "window", c.window)
	}
	return moved
}

// ZoomIn shrinks the window about its centre by the zoom step. The window
// is left alone when either side would fall below the minimum size.
func (c *WindowController) ZoomIn() bool {
	w := c.window.Width() * c.opts.zoomStep
	h := c.window.Height() * c.opts.zoomStep
	if w < c.opts.minSize || h < c.opts.minSize {
		rasterlab.Logger().Debug("controller: zoom in at minimum size", "window", c.window)
		return false
	}
	c.window = around(c.window.Center(), w, h)
	rasterlab.Logger().Debug("controller: zoom in", "window", c.window)
	return true
}

// ZoomOut grows the window about its centre by the inverse of the zoom
// step, caps each side at the maximum size and clamps the edges to the
// screen. Clamping may shift the centre.
func (c *WindowController) ZoomOut() bool {
	w := math.Min(c.window.Width()/c.opts.zoomStep, c.opts.maxSize)
	h := math.Min(c.window.Height()/c.opts.zoomStep, c.opts.maxSize)

	s := c.opts.screen
	next := around(c.window.Center(), w, h)
	next.Left = math.Max(next.Left, s.Left)
	next.Right = math.Min(next.Right, s.Right)
	next.Bottom = math.Max(next.Bottom, s.Bottom)
	next.Top = math.Min(next.Top, s.Top)

	if next == c.window {
		return false
	}
	c.window = next
	rasterlab.Logger().Debug("controller: zoom out", "window", c.window)
	return true
}

func around(center clip.Point, w, h float64) clip.Window {
	return clip.NewWindow(center.X-w/2, center.X+w/2, center.Y-h/2, center.Y+h/2)
}

// Apply performs a. Rotation actions are ignored. It reports whether any
// state changed.
func (c *WindowController) Apply(a Action) bool {
	switch a {
	case ActionLeft:
		return c.Pan(-1, 0)
	case ActionRight:
		return c.Pan(1, 0)
	case ActionUp:
		return c.Pan(0, 1)
	case ActionDown:
		return c.Pan(0, -1)
	case ActionZoomIn:
		return c.ZoomIn()
	case ActionZoomOut:
		return c.ZoomOut()
	case ActionToggle:
		c.ToggleClipping()
		return true
	}
	return false
}

// HandleKey applies the action bound to key. It has the signature of a
// gpucontext key press callback minus the modifiers.
func (c *WindowController) HandleKey(key gpucontext.Key) bool {
	return c.Apply(ActionForKey(key))
}

// Segments returns the segments to draw for lines: the visible part of each
// one when clipping is enabled, otherwise a copy of lines.
func (c *WindowController) Segments(lines []clip.Segment) []clip.Segment {
	if !c.clipping {
		return append([]clip.Segment(nil), lines...)
	}
	out := clip.ClipLines(lines, c.window)
	rasterlab.Logger().Debug("controller: clipped", "in", len(lines), "visible", len(out))
	return out
}

// Border returns the window frame as four segments.
func (c *WindowController) Border() [4]clip.Segment {
	return c.window.Border()
}
