//go:build !nogpu

// Package gpu draws lab scenes with the gogpu/wgpu HAL.
//
// Each lab maps to one render pipeline:
//
//	PipelineLines      clipped segments and the clip window frame (line list, NDC)
//	PipelinePoints     rasterized pixels on a bottom-left pixel grid (point list)
//	PipelineTransform  the transformed triangle (triangle list, mat3x3 uniform)
//
// Vertex and uniform data are packed on the CPU into little-endian byte
// slices (see PackPositions, PackPixels, PackMat3) and uploaded through the
// queue. A Batch holds the per-draw buffers and bind group; RecordDraws
// replays batches into a render pass and Render encodes a complete
// offscreen frame with readback.
//
// OpenDevice opens a standalone Vulkan device for offscreen use; it
// returns an error wrapping ErrNoGPU when the machine has none.
//
// Shaders are WGSL. They are handed to the HAL as source, or compiled to
// SPIR-V with gogpu/naga when the renderer is created WithSPIRV.
//
// Build with -tags nogpu to leave out everything but the logger.
package gpu
