//go:build !nogpu

package main

import (
	"image"
	"testing"

	"github.com/gogpu/wgpu/hal/noop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/rasterlab/internal/gpu"
	"github.com/gogpu/rasterlab/raster"
)

func newNoopPainter(t *testing.T) *gpuPainter {
	t.Helper()
	dev, err := gpu.OpenDeviceWith(noop.API{})
	require.NoError(t, err)
	p := newGPUPainter(dev, raster.White)
	t.Cleanup(p.close)
	return p
}

func TestGPUPainterScenes(t *testing.T) {
	p := newNoopPainter(t)

	cfg := testConfig(t, "all", "w,space")
	for _, scene := range cfg.scenes {
		t.Run(scene, func(t *testing.T) {
			d, err := buildScene(cfg, scene)
			require.NoError(t, err)
			pm, err := p.paint(d, cfg.width, cfg.height)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 100, 100), pm.Bounds())
			assert.Len(t, pm.Data(), 100*100*4)
		})
	}
}

func TestGPUPainterEmptyDrawing(t *testing.T) {
	p := newNoopPainter(t)
	pm, err := p.paint(drawing{}, 8, 4)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), pm.Bounds())
}

func TestGPUPainterBadSize(t *testing.T) {
	p := newNoopPainter(t)
	_, err := p.paint(drawing{}, 0, 4)
	assert.ErrorIs(t, err, gpu.ErrTargetSize)
}
