package controller

import "github.com/gogpu/rasterlab/clip"

// WindowOption configures a WindowController during creation.
//
// Example:
//
//	wc := controller.NewWindowController(
//	    controller.WithWindow(clip.NewWindow(-0.25, 0.25, -0.25, 0.25)),
//	    controller.WithClipping(false),
//	)
type WindowOption func(*windowOptions)

type windowOptions struct {
	window   clip.Window
	screen   clip.Window
	moveStep float64
	zoomStep float64
	minSize  float64
	maxSize  float64
	clipping bool
}

func defaultWindowOptions() windowOptions {
	return windowOptions{
		window:   clip.NewWindow(-0.5, 0.5, -0.5, 0.5),
		screen:   clip.NewWindow(-1, 1, -1, 1),
		moveStep: 0.05,
		zoomStep: 0.85,
		minSize:  0.05,
		maxSize:  2.0,
		clipping: true,
	}
}

// WithWindow sets the initial clip window.
func WithWindow(w clip.Window) WindowOption {
	return func(o *windowOptions) {
		o.window = w
	}
}

// WithScreen sets the bounds the clip window may not leave while panning
// or zooming out.
func WithScreen(screen clip.Window) WindowOption {
	return func(o *windowOptions) {
		o.screen = screen
	}
}

// WithMoveStep sets the distance of one pan step.
func WithMoveStep(step float64) WindowOption {
	return func(o *windowOptions) {
		o.moveStep = step
	}
}

// WithZoomStep sets the zoom factor. ZoomIn multiplies the window size by
// it and ZoomOut divides by it, so it should lie in (0, 1).
func WithZoomStep(step float64) WindowOption {
	return func(o *windowOptions) {
		o.zoomStep = step
	}
}

// WithSizeLimits sets the smallest and largest window width and height.
func WithSizeLimits(minSize, maxSize float64) WindowOption {
	return func(o *windowOptions) {
		o.minSize = minSize
		o.maxSize = maxSize
	}
}

// WithClipping sets whether clipping starts enabled. The default is true.
func WithClipping(enabled bool) WindowOption {
	return func(o *windowOptions) {
		o.clipping = enabled
	}
}

// TransformOption configures a TransformController during creation.
type TransformOption func(*transformOptions)

type transformOptions struct {
	moveStep     float64
	rotateStep   float64
	growFactor   float64
	shrinkFactor float64
	minScale     float64
	maxScale     float64
	scale        float64
}

func defaultTransformOptions() transformOptions {
	return transformOptions{
		moveStep:     0.05,
		rotateStep:   rotateStep,
		growFactor:   1.1,
		shrinkFactor: 0.9,
		minScale:     0.1,
		maxScale:     5.0,
		scale:        1.0,
	}
}

// WithTranslateStep sets the distance of one translation step.
func WithTranslateStep(step float64) TransformOption {
	return func(o *transformOptions) {
		o.moveStep = step
	}
}

// WithRotateStep sets the angle in radians of one rotation step.
func WithRotateStep(step float64) TransformOption {
	return func(o *transformOptions) {
		o.rotateStep = step
	}
}

// WithScaleFactors sets the factors applied by one grow and one shrink step.
func WithScaleFactors(grow, shrink float64) TransformOption {
	return func(o *transformOptions) {
		o.growFactor = grow
		o.shrinkFactor = shrink
	}
}

// WithScaleLimits sets the range the uniform scale is clamped to.
func WithScaleLimits(minScale, maxScale float64) TransformOption {
	return func(o *transformOptions) {
		o.minScale = minScale
		o.maxScale = maxScale
	}
}

// WithInitialScale sets the starting uniform scale. It is clamped to the
// scale limits.
func WithInitialScale(s float64) TransformOption {
	return func(o *transformOptions) {
		o.scale = s
	}
}

// RecorderOption configures a ShapeRecorder during creation.
type RecorderOption func(*recorderOptions)

type recorderOptions struct {
	mode Mode
}

// WithMode sets the initial shape mode. The default is ModeLine.
func WithMode(m Mode) RecorderOption {
	return func(o *recorderOptions) {
		o.mode = m
	}
}
