// Package rasterlab is a set of small 2D graphics exercises built around
// three classic numeric routines.
//
// # Overview
//
// The algorithmic core lives in three independent packages:
//
//   - affine: 3x3 homogeneous matrices for translation, rotation, scaling
//     and their composition, stored column-major for GPU upload
//   - clip: Cohen-Sutherland outcodes and line clipping against an
//     axis-aligned window
//   - raster: Bresenham lines and midpoint circles on the integer grid,
//     plus a small RGBA Pixmap to plot them on
//
// All three are pure functions over values. They allocate and return fresh
// results and are safe to call from any number of goroutines.
//
// # Presentation
//
// The remaining packages feed core results to a renderer:
//
//   - controller: the UI-owned state of each exercise (clip window pan and
//     zoom, transform parameters, click-to-shape recording) driven by
//     gpucontext key events
//   - internal/gpu: vertex and uniform packing, WGSL shaders compiled with
//     naga, and wgpu render pipelines
//   - cmd/rasterlab: renders each exercise scene to a PNG file
//
// # Coordinate System
//
// Clipping and transforms work in normalized device coordinates, x to the
// right and y up, [-1, 1] on both axes. Rasterization works on a pixel grid
// whose origin is the bottom-left pixel. Pixmap itself is stored top-down;
// use Pixmap.PlotGrid to plot grid coordinates.
//
// # Logging
//
// Nothing is logged by default. Call SetLogger to route diagnostics to a
// log/slog handler.
package rasterlab

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
