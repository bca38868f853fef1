package controller

import (
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rasterlab"
	"github.com/gogpu/rasterlab/affine"
)

// rotateStep is five degrees.
const rotateStep = math.Pi / 36

// TransformController holds the position, angle and uniform scale of the
// shape in the transform lab.
type TransformController struct {
	opts  transformOptions
	x, y  float64
	angle float64
	scale float64
}

// NewTransformController creates a controller at the origin with no
// rotation and unit scale.
func NewTransformController(opts ...TransformOption) *TransformController {
	o := defaultTransformOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &TransformController{opts: o}
	c.setScale(o.scale)
	return c
}

// Position returns the translation.
func (c *TransformController) Position() (x, y float64) {
	return c.x, c.y
}

// Angle returns the rotation in radians, counterclockwise.
func (c *TransformController) Angle() float64 {
	return c.angle
}

// Scale returns the uniform scale.
func (c *TransformController) Scale() float64 {
	return c.scale
}

// Translate moves the shape dx steps right and dy steps up. Translation is
// unbounded.
func (c *TransformController) Translate(dx, dy int) {
	c.x += float64(dx) * c.opts.moveStep
	c.y += float64(dy) * c.opts.moveStep
	rasterlab.Logger().Debug("controller: translate", "x", c.x, "y", c.y)
}

// Rotate turns the shape n steps counterclockwise (clockwise when n < 0).
func (c *TransformController) Rotate(n int) {
	c.angle += float64(n) * c.opts.rotateStep
	rasterlab.Logger().Debug("controller: rotate", "angle", c.angle)
}

// Grow multiplies the scale by the grow factor, clamped to the limits.
func (c *TransformController) Grow() {
	c.setScale(c.scale * c.opts.growFactor)
}

// Shrink multiplies the scale by the shrink factor, clamped to the limits.
func (c *TransformController) Shrink() {
	c.setScale(c.scale * c.opts.shrinkFactor)
}

func (c *TransformController) setScale(s float64) {
	c.scale = min(max(s, c.opts.minScale), c.opts.maxScale)
	rasterlab.Logger().Debug("controller: scale", "scale", c.scale)
}

// Reset returns to the origin with no rotation and the initial scale.
func (c *TransformController) Reset() {
	c.x, c.y, c.angle = 0, 0, 0
	c.setScale(c.opts.scale)
}

// Matrix returns the model matrix T·(R·S): scale first, then rotate, then
// translate.
func (c *TransformController) Matrix() affine.Matrix3 {
	return affine.Compose(c.scale, c.scale, c.angle, c.x, c.y)
}

// Apply performs a. The toggle action is ignored. It reports whether any
// state changed.
func (c *TransformController) Apply(a Action) bool {
	switch a {
	case ActionLeft:
		c.Translate(-1, 0)
	case ActionRight:
		c.Translate(1, 0)
	case ActionUp:
		c.Translate(0, 1)
	case ActionDown:
		c.Translate(0, -1)
	case ActionRotateCCW:
		c.Rotate(1)
	case ActionRotateCW:
		c.Rotate(-1)
	case ActionZoomIn:
		before := c.scale
		c.Grow()
		return c.scale != before
	case ActionZoomOut:
		before := c.scale
		c.Shrink()
		return c.scale != before
	default:
		return false
	}
	return true
}

// HandleKey applies the action bound to key.
func (c *TransformController) HandleKey(key gpucontext.Key) bool {
	return c.Apply(ActionForKey(key))
}
