//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/rasterlab/affine"
	"github.com/gogpu/rasterlab/clip"
	"github.com/gogpu/rasterlab/raster"
)

// Renderer errors.
var (
	// ErrUnknownPipeline is returned for a Pipeline value out of range.
	ErrUnknownPipeline = errors.New("gpu: unknown pipeline")

	// ErrEmptyBatch is returned when a batch would draw no vertices.
	ErrEmptyBatch = errors.New("gpu: batch has no vertices")

	// ErrUniformSize is returned when a uniform block has the wrong size
	// for its pipeline.
	ErrUniformSize = errors.New("gpu: uniform block size mismatch")

	// ErrBadSPIRV is returned when naga output is not whole 32-bit words.
	ErrBadSPIRV = errors.New("gpu: SPIR-V output is not word aligned")

	// ErrRendererDestroyed is returned when using a destroyed renderer.
	ErrRendererDestroyed = errors.New("gpu: renderer destroyed")

	// ErrTargetSize is returned for a render target with a zero dimension.
	ErrTargetSize = errors.New("gpu: invalid render target size")

	// ErrGPUTimeout is returned when a submitted frame does not finish in
	// time.
	ErrGPUTimeout = errors.New("gpu: timed out waiting for frame")
)

// RendererOption configures a Renderer during creation.
type RendererOption func(*Renderer)

// WithSPIRV compiles shaders to SPIR-V with naga before handing them to
// the HAL instead of passing WGSL source.
func WithSPIRV() RendererOption {
	return func(r *Renderer) {
		r.spirv = true
	}
}

// pipelineObjects holds the GPU objects of one pipeline.
type pipelineObjects struct {
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
}

// Renderer owns the render pipelines of the labs on one device. Pipelines
// are created on first use.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	device    hal.Device
	queue     hal.Queue
	spirv     bool
	destroyed bool

	pipelines [pipelineCount]pipelineObjects
}

// NewRenderer creates a renderer on device and queue. No GPU objects are
// created until the first batch is prepared.
func NewRenderer(device hal.Device, queue hal.Queue, opts ...RendererOption) *Renderer {
	r := &Renderer{
		device: device,
		queue:  queue,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Batch is one draw call: a vertex buffer, a uniform buffer and the bind
// group that exposes it. Release it with Renderer.ReleaseBatch.
type Batch struct {
	pipeline   Pipeline
	vertBuf    hal.Buffer
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
	vertCount  uint32
}

// Pipeline returns the pipeline the batch draws with.
func (b *Batch) Pipeline() Pipeline {
	return b.pipeline
}

// VertexCount returns the number of vertices drawn.
func (b *Batch) VertexCount() uint32 {
	return b.vertCount
}

func (b *Batch) destroy(device hal.Device) {
	if b.bindGroup != nil {
		device.DestroyBindGroup(b.bindGroup)
		b.bindGroup = nil
	}
	if b.uniformBuf != nil {
		device.DestroyBuffer(b.uniformBuf)
		b.uniformBuf = nil
	}
	if b.vertBuf != nil {
		device.DestroyBuffer(b.vertBuf)
		b.vertBuf = nil
	}
	b.vertCount = 0
}

// Upload creates a buffer sized to data and writes data through the queue.
func (r *Renderer) Upload(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// PrepareBatch uploads packed vertices and a uniform block for p and
// builds the bind group. The pipeline is created if needed.
func (r *Renderer) PrepareBatch(p Pipeline, vertices, uniform []byte) (*Batch, error) {
	if r.destroyed {
		return nil, ErrRendererDestroyed
	}
	if p >= pipelineCount {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPipeline, p)
	}
	vertCount := uint32(len(vertices) / vertexStride) //nolint:gosec // vertex count fits uint32
	if vertCount == 0 {
		return nil, fmt.Errorf("%w: %v", ErrEmptyBatch, p)
	}
	size := uniformSize(p)
	if uint64(len(uniform)) != size {
		return nil, fmt.Errorf("%w: %v wants %d bytes, got %d", ErrUniformSize, p, size, len(uniform))
	}

	po, err := r.ensurePipeline(p)
	if err != nil {
		return nil, err
	}

	vertBuf, err := r.Upload(p.String()+"_verts", vertices,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	uniformBuf, err := r.Upload(p.String()+"_uniform", uniform,
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		r.device.DestroyBuffer(vertBuf)
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  p.String() + "_bind",
		Layout: po.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: size,
			}},
		},
	})
	if err != nil {
		r.device.DestroyBuffer(uniformBuf)
		r.device.DestroyBuffer(vertBuf)
		return nil, fmt.Errorf("create bind group: %w", err)
	}

	slogger().Debug("gpu: batch prepared", "pipeline", p, "vertices", vertCount)
	return &Batch{
		pipeline:   p,
		vertBuf:    vertBuf,
		uniformBuf: uniformBuf,
		bindGroup:  bindGroup,
		vertCount:  vertCount,
	}, nil
}

// LinesBatch prepares segments in normalized device coordinates.
func (r *Renderer) LinesBatch(segs []clip.Segment, c raster.RGBA) (*Batch, error) {
	return r.PrepareBatch(PipelineLines, PackPositions(segs), LinesUniform(c))
}

// PointsBatch prepares pixels of a width by height grid.
func (r *Renderer) PointsBatch(pts []image.Point, width, height uint32, c raster.RGBA) (*Batch, error) {
	return r.PrepareBatch(PipelinePoints, PackPixels(pts), PointsUniform(width, height, c))
}

// TransformBatch prepares triangles given as xy pairs, drawn through m.
func (r *Renderer) TransformBatch(xy []float32, m affine.Matrix3, c raster.RGBA) (*Batch, error) {
	return r.PrepareBatch(PipelineTransform, PackVertices(xy), TransformUniform(m, c))
}

// RecordDraws records batches into an open render pass. Nil and empty
// batches are skipped.
func (r *Renderer) RecordDraws(rp hal.RenderPassEncoder, batches ...*Batch) {
	for _, b := range batches {
		if b == nil || b.vertCount == 0 {
			continue
		}
		po := &r.pipelines[b.pipeline]
		if po.pipeline == nil {
			slogger().Warn("gpu: batch without pipeline", "pipeline", b.pipeline)
			continue
		}
		rp.SetPipeline(po.pipeline)
		rp.SetBindGroup(0, b.bindGroup, nil)
		rp.SetVertexBuffer(0, b.vertBuf, 0)
		rp.Draw(b.vertCount, 1, 0, 0)
	}
}

// ReleaseBatch destroys the buffers and bind group of b. Safe to call more
// than once.
func (r *Renderer) ReleaseBatch(b *Batch) {
	if b == nil || r.device == nil {
		return
	}
	b.destroy(r.device)
}

// Destroy releases every pipeline. Batches must be released first. Safe to
// call multiple times.
func (r *Renderer) Destroy() {
	r.destroyed = true
	if r.device == nil {
		return
	}
	for i := len(r.pipelines) - 1; i >= 0; i-- {
		r.destroyPipeline(&r.pipelines[i])
	}
}

// ensurePipeline creates the shader, layouts and render pipeline of p if
// they don't already exist.
func (r *Renderer) ensurePipeline(p Pipeline) (*pipelineObjects, error) {
	po := &r.pipelines[p]
	if po.pipeline != nil {
		return po, nil
	}
	if err := r.createPipeline(p, po); err != nil {
		r.destroyPipeline(po)
		return nil, err
	}
	slogger().Debug("gpu: pipeline created", "pipeline", p, "spirv", r.spirv)
	return po, nil
}

func (r *Renderer) createShader(p Pipeline) (hal.ShaderModule, error) {
	src, err := ShaderSource(p)
	if err != nil {
		return nil, err
	}
	source := hal.ShaderSource{WGSL: src}
	if r.spirv {
		code, err := CompileShaderToSPIRV(src)
		if err != nil {
			return nil, fmt.Errorf("compile %v shader: %w", p, err)
		}
		source = hal.ShaderSource{SPIRV: code}
	}
	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  p.String() + "_shader",
		Source: source,
	})
	if err != nil {
		return nil, fmt.Errorf("create %v shader: %w", p, err)
	}
	return shader, nil
}

// createPipeline fills po for p with premultiplied alpha blending and no
// multisampling.
func (r *Renderer) createPipeline(p Pipeline, po *pipelineObjects) error {
	shader, err := r.createShader(p)
	if err != nil {
		return err
	}
	po.shader = shader

	uniformLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: p.String() + "_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create %v uniform layout: %w", p, err)
	}
	po.uniformLayout = uniformLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            p.String() + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{po.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create %v pipeline layout: %w", p, err)
	}
	po.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  p.String() + "_pipeline",
		Layout: po.pipeLayout,
		Vertex: hal.VertexState{
			Module:     po.shader,
			EntryPoint: "vs_main",
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     po.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    targetFormat,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: topology(p),
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create %v pipeline: %w", p, err)
	}
	po.pipeline = pipeline
	return nil
}

// destroyPipeline releases the objects of po in reverse creation order.
func (r *Renderer) destroyPipeline(po *pipelineObjects) {
	if po.pipeline != nil {
		r.device.DestroyRenderPipeline(po.pipeline)
		po.pipeline = nil
	}
	if po.pipeLayout != nil {
		r.device.DestroyPipelineLayout(po.pipeLayout)
		po.pipeLayout = nil
	}
	if po.uniformLayout != nil {
		r.device.DestroyBindGroupLayout(po.uniformLayout)
		po.uniformLayout = nil
	}
	if po.shader != nil {
		r.device.DestroyShaderModule(po.shader)
		po.shader = nil
	}
}
