//go:build !nogpu

package main

import (
	"errors"
	"fmt"

	"github.com/gogpu/rasterlab"
	"github.com/gogpu/rasterlab/internal/gpu"
	"github.com/gogpu/rasterlab/raster"
)

// gpuPainter draws through the wgpu HAL into an offscreen target and reads
// the frame back.
type gpuPainter struct {
	dev        *gpu.Device
	r          *gpu.Renderer
	background raster.RGBA
}

// openGPU opens a hardware device. It wraps errNoGPU when there is none.
func openGPU(background raster.RGBA) (painter, error) {
	dev, err := gpu.OpenDevice()
	if err != nil {
		if errors.Is(err, gpu.ErrNoGPU) {
			return nil, fmt.Errorf("%w: %w", errNoGPU, err)
		}
		return nil, err
	}
	return newGPUPainter(dev, background), nil
}

func newGPUPainter(dev *gpu.Device, background raster.RGBA) *gpuPainter {
	rasterlab.Logger().Info("using the gpu backend", "adapter", dev.Name())
	return &gpuPainter{
		dev:        dev,
		r:          dev.NewRenderer(),
		background: background,
	}
}

func (p *gpuPainter) paint(d drawing, width, height int) (*raster.Pixmap, error) {
	var batches []*gpu.Batch
	defer func() {
		for _, b := range batches {
			p.r.ReleaseBatch(b)
		}
	}()
	add := func(b *gpu.Batch, err error) error {
		if err != nil {
			return err
		}
		batches = append(batches, b)
		return nil
	}

	if d.fill {
		xy := make([]float32, 0, 2*len(d.triangle))
		for _, v := range d.triangle {
			xy = append(xy, float32(v.X), float32(v.Y))
		}
		if err := add(p.r.TransformBatch(xy, d.model, fillColor)); err != nil {
			return nil, err
		}
	}
	if len(d.lines) > 0 {
		if err := add(p.r.LinesBatch(d.lines, inkColor)); err != nil {
			return nil, err
		}
	}
	if len(d.border) > 0 {
		if err := add(p.r.LinesBatch(d.border, frameColor)); err != nil {
			return nil, err
		}
	}
	if len(d.pixels) > 0 {
		if err := add(p.r.PointsBatch(d.pixels, uint32(width), uint32(height), inkColor)); err != nil {
			return nil, err
		}
	}

	pix, err := p.r.Render(uint32(width), uint32(height), p.background, batches...)
	if err != nil {
		return nil, err
	}
	pm := raster.NewPixmap(width, height)
	copy(pm.Data(), pix)
	return pm, nil
}

func (p *gpuPainter) close() {
	p.r.Destroy()
	p.dev.Close()
}
