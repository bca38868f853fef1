//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"image"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/rasterlab/affine"
	"github.com/gogpu/rasterlab/clip"
	"github.com/gogpu/rasterlab/raster"
)

// vertexStride is the byte stride per vertex in every pipeline.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes (location 0)
const vertexStride = 8

// Uniform buffer sizes. WGSL aligns vec4 and each mat3x3 column to 16 bytes.
const (
	// linesUniformSize holds color (vec4<f32>).
	linesUniformSize = 16

	// pointsUniformSize holds resolution (vec2<f32>), 8 bytes of padding and
	// color (vec4<f32>).
	pointsUniformSize = 32

	// mat3Size is a mat3x3<f32>: three vec3 columns padded to 16 bytes.
	mat3Size = 48

	// transformUniformSize holds model (mat3x3<f32>) and color (vec4<f32>).
	transformUniformSize = mat3Size + 16
)

func putFloat32(buf []byte, v float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
}

// PackVertices writes xy pairs as little-endian f32 values.
func PackVertices(xy []float32) []byte {
	buf := make([]byte, len(xy)*4)
	for i, v := range xy {
		putFloat32(buf[i*4:], v)
	}
	return buf
}

// PackPositions writes both endpoints of each segment, two vertices per
// segment, for a line list.
func PackPositions(segs []clip.Segment) []byte {
	buf := make([]byte, len(segs)*2*vertexStride)
	off := 0
	for _, s := range segs {
		putFloat32(buf[off:], float32(s.P0.X))
		putFloat32(buf[off+4:], float32(s.P0.Y))
		putFloat32(buf[off+8:], float32(s.P1.X))
		putFloat32(buf[off+12:], float32(s.P1.Y))
		off += 2 * vertexStride
	}
	return buf
}

// PackPixels writes one vertex per pixel for a point list.
func PackPixels(pts []image.Point) []byte {
	buf := make([]byte, len(pts)*vertexStride)
	for i, p := range pts {
		putFloat32(buf[i*vertexStride:], float32(p.X))
		putFloat32(buf[i*vertexStride+4:], float32(p.Y))
	}
	return buf
}

// PackMat3 writes m as a WGSL mat3x3<f32>. Columns are 16 bytes apart and
// the fourth float of each column is zero.
func PackMat3(m affine.Matrix3) []byte {
	buf := make([]byte, mat3Size)
	f := m.Float32()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			putFloat32(buf[col*16+row*4:], f[col*3+row])
		}
	}
	return buf
}

// PackColor writes c as a vec4<f32>, straight alpha.
func PackColor(c raster.RGBA) []byte {
	buf := make([]byte, 16)
	for i, v := range c.Float32() {
		putFloat32(buf[i*4:], v)
	}
	return buf
}

// LinesUniform returns the uniform block of PipelineLines.
func LinesUniform(c raster.RGBA) []byte {
	return PackColor(c)
}

// PointsUniform returns the uniform block of PipelinePoints for a grid of
// width by height pixels.
func PointsUniform(width, height uint32, c raster.RGBA) []byte {
	buf := make([]byte, pointsUniformSize)
	putFloat32(buf[0:], float32(width))
	putFloat32(buf[4:], float32(height))
	copy(buf[16:], PackColor(c))
	return buf
}

// TransformUniform returns the uniform block of PipelineTransform.
func TransformUniform(m affine.Matrix3, c raster.RGBA) []byte {
	buf := make([]byte, transformUniformSize)
	copy(buf, PackMat3(m))
	copy(buf[mat3Size:], PackColor(c))
	return buf
}

// uniformSize returns the uniform block size of p.
func uniformSize(p Pipeline) uint64 {
	switch p {
	case PipelinePoints:
		return pointsUniformSize
	case PipelineTransform:
		return transformUniformSize
	}
	return linesUniformSize
}

// topology returns the primitive topology of p.
func topology(p Pipeline) gputypes.PrimitiveTopology {
	switch p {
	case PipelinePoints:
		return gputypes.PrimitiveTopologyPointList
	case PipelineTransform:
		return gputypes.PrimitiveTopologyTriangleList
	}
	return gputypes.PrimitiveTopologyLineList
}

// vertexLayout returns the vertex buffer layout shared by all pipelines.
func vertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
		},
	}
}
