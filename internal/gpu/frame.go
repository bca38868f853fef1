//go:build !nogpu

package gpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/rasterlab/raster"
)

// targetFormat is the color format of every pipeline and render target.
const targetFormat = gputypes.TextureFormatBGRA8Unorm

// fenceTimeout bounds the wait for a submitted frame.
const fenceTimeout = 5 * time.Second

// copyPitchAlignment is the BytesPerRow alignment WebGPU requires for
// texture to buffer copies.
const copyPitchAlignment = 256

// Render draws batches into an offscreen width by height target cleared to
// background, waits for the GPU and returns the pixels as RGBA rows, top
// row first.
func (r *Renderer) Render(width, height uint32, background raster.RGBA, batches ...*Batch) ([]byte, error) {
	if r.destroyed {
		return nil, ErrRendererDestroyed
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTargetSize, width, height)
	}

	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "frame_color",
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        targetFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create frame texture: %w", err)
	}
	defer r.device.DestroyTexture(tex)

	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "frame_color_view",
	})
	if err != nil {
		return nil, fmt.Errorf("create frame view: %w", err)
	}
	defer r.device.DestroyTextureView(view)

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "frame_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	// Pipelines blend premultiplied colors, so clear with one too.
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: background.R * background.A,
				G: background.G * background.A,
				B: background.B * background.A,
				A: background.A,
			},
		}},
	})
	r.RecordDraws(rp, batches...)
	rp.End()

	bytesPerRow := width * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(height)

	staging, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "frame_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(staging)

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(tex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: height},
		TextureBase:  hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, fenceTimeout)
	if err != nil {
		return nil, fmt.Errorf("wait for GPU: %w", err)
	}
	if !fenceOK {
		return nil, fmt.Errorf("%w after %v", ErrGPUTimeout, fenceTimeout)
	}

	readback := make([]byte, stagingSize)
	if err := r.queue.ReadBuffer(staging, 0, readback); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	out := make([]byte, int(bytesPerRow)*int(height))
	for row := 0; row < int(height); row++ {
		src := readback[row*int(alignedBytesPerRow):]
		convertBGRAToRGBA(src[:bytesPerRow], out[row*int(bytesPerRow):])
	}
	slogger().Debug("gpu: frame rendered", "width", width, "height", height, "batches", len(batches))
	return out, nil
}

// convertBGRAToRGBA swaps the red and blue channels of src into dst.
func convertBGRAToRGBA(src, dst []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}
