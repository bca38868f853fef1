package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/rasterlab/affine"
	"github.com/gogpu/rasterlab/clip"
	"github.com/gogpu/rasterlab/controller"
	"github.com/gogpu/rasterlab/raster"
)

var teal = color.RGBA{R: 0, G: 204, B: 204, A: 255}

func testConfig(t *testing.T, scene string, keys string) config {
	t.Helper()
	f := defaultFlags()
	f.scene = scene
	f.width, f.height = 100, 100
	f.out = filepath.Join(t.TempDir(), "out")
	f.keys = keys
	cfg, err := newConfig(f)
	require.NoError(t, err)
	return cfg
}

// paint draws d with the software backend.
func paint(t *testing.T, cfg config, d drawing) *raster.Pixmap {
	t.Helper()
	pm, err := softwarePainter{background: cfg.background}.paint(d, cfg.width, cfg.height)
	require.NoError(t, err)
	return pm
}

// count returns how many pixels of pm equal c.
func count(pm *raster.Pixmap, c color.RGBA) int {
	img := pm.ToImage()
	n := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestNewConfig(t *testing.T) {
	cfg, err := newConfig(flagValues{
		scene: "all", width: 320, height: 240, out: "lab", zoom: 3,
		keys: "left, W ,space", clicks: "1,2,3,4", mode: "circle",
		backend: "gpu", background: "#336699",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"transform", "clip", "raster"}, cfg.scenes)
	assert.Equal(t, []gpucontext.Key{gpucontext.KeyLeft, gpucontext.KeyW, gpucontext.KeySpace}, cfg.keys)
	assert.Equal(t, []image.Point{{1, 2}, {3, 4}}, cfg.clicks)
	assert.Equal(t, controller.ModeCircle, cfg.mode)
	assert.Equal(t, backendGPU, cfg.backend)
	assert.Equal(t, raster.Hex("336699"), cfg.background)
	assert.Equal(t, "lab-clip.png", cfg.outputPath("clip"))
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := newConfig(defaultFlags())
	require.NoError(t, err)
	assert.Equal(t, backendSoftware, cfg.backend)
	assert.Equal(t, raster.White, cfg.background)
	assert.Equal(t, 400, cfg.width)
	assert.True(t, cfg.clipping)
}

func TestNewConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*flagValues)
	}{
		{"scene", func(f *flagValues) { f.scene = "teapot" }},
		{"width", func(f *flagValues) { f.width = 0 }},
		{"zoom", func(f *flagValues) { f.zoom = 0 }},
		{"out", func(f *flagValues) { f.out = "" }},
		{"mode", func(f *flagValues) { f.mode = "spiral" }},
		{"backend", func(f *flagValues) { f.backend = "vulkan" }},
		{"background name", func(f *flagValues) { f.background = "blue" }},
		{"background length", func(f *flagValues) { f.background = "#12345" }},
		{"key", func(f *flagValues) { f.keys = "left,q" }},
		{"odd clicks", func(f *flagValues) { f.clicks = "1,2,3" }},
		{"bad click", func(f *flagValues) { f.clicks = "1,x" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := defaultFlags()
			tt.modify(&f)
			_, err := newConfig(f)
			assert.True(t, errors.Is(err, errUsage), "got %v", err)
		})
	}
}

func TestOwlLines(t *testing.T) {
	lines := owlLines()
	assert.Len(t, lines, 29)
	for _, s := range lines {
		for _, v := range []float64{s.P0.X, s.P0.Y, s.P1.X, s.P1.Y} {
			assert.LessOrEqual(t, v, 1.0)
			assert.GreaterOrEqual(t, v, -1.0)
		}
	}
}

func TestTransformScene(t *testing.T) {
	cfg := testConfig(t, "transform", "")
	d := transformScene(cfg)
	assert.True(t, d.fill)
	assert.Contains(t, d.caption, "scale 1.00")

	pm := paint(t, cfg, d)
	img := pm.ToImage()
	assert.Equal(t, teal, img.RGBAAt(49, 49), "triangle covers the centre")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(5, 5))

	movedCfg := testConfig(t, "transform", "right,right,right,right,right,right,right,right,right,right")
	moved := paint(t, movedCfg, transformScene(movedCfg))
	img = moved.ToImage()
	assert.NotEqual(t, teal, img.RGBAAt(49, 49))
	assert.Equal(t, teal, img.RGBAAt(74, 49), "ten steps right is x = 0.5")
	assert.InDelta(t, count(pm, teal), count(moved, teal), 6, "translation keeps the area")
}

func TestTransformSceneScale(t *testing.T) {
	cfg := testConfig(t, "transform", "")
	bigCfg := testConfig(t, "transform", "w,w,w,w,w")
	small := paint(t, cfg, transformScene(cfg))
	big := paint(t, bigCfg, transformScene(bigCfg))
	assert.Greater(t, count(big, teal), count(small, teal))
}

func TestCanvasFillClipsToGrid(t *testing.T) {
	c := newCanvas(20, 20, raster.White)
	// A triangle far larger than the screen covers every pixel once.
	tri := [3]clip.Point{{X: -10, Y: -10}, {X: 30, Y: -10}, {X: -10, Y: 30}}
	assert.Equal(t, 400, c.fillTriangle(tri, affine.Identity(), raster.Teal))
	assert.Equal(t, 400, count(c.pm, teal))
}

func TestCanvasGridMapping(t *testing.T) {
	c := newCanvas(100, 50, raster.White)
	ctm := c.ndc.CTM()

	x, y := transform(ctm, clip.Pt(-1, -1))
	assert.InDelta(t, -0.5, x, 1e-12)
	assert.InDelta(t, -0.5, y, 1e-12)
	x, y = transform(ctm, clip.Pt(1, 1))
	assert.InDelta(t, 99.5, x, 1e-12)
	assert.InDelta(t, 49.5, y, 1e-12)

	assert.Equal(t, 99.0, c.clip.URx)
	assert.Equal(t, 49.0, c.clip.URy)
}

func TestClipScene(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}

	cfg := testConfig(t, "clip", "")
	d := clipScene(cfg)
	assert.Len(t, d.border, 4)
	assert.Contains(t, d.caption, "clipping on")
	clipped := paint(t, cfg, d)
	img := clipped.ToImage()
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) != black {
				continue
			}
			// The window [-0.5, 0.5]² covers grid 24.5 to 74.5.
			assert.True(t, x >= 24 && x <= 75 && y >= 24 && y <= 75, "black pixel at (%d, %d) outside the window", x, y)
		}
	}

	rawCfg := testConfig(t, "clip", "space")
	rawDrawing := clipScene(rawCfg)
	assert.Contains(t, rawDrawing.caption, "clipping off")
	assert.Contains(t, rawDrawing.caption, "29/29")
	raw := paint(t, rawCfg, rawDrawing)
	// The vertical edge line at x = -0.8 sits on the boundary of grid
	// columns 9 and 10.
	rawImg := raw.ToImage()
	assert.True(t, rawImg.RGBAAt(9, 50) == black || rawImg.RGBAAt(10, 50) == black)
	assert.Greater(t, count(raw, black), count(clipped, black))
}

func TestClipSceneBorder(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	cfg := testConfig(t, "clip", "w")
	assert.Positive(t, count(paint(t, cfg, clipScene(cfg)), red))
}

func TestRasterScene(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}

	cfg := testConfig(t, "raster", "")
	d := rasterScene(cfg)
	assert.Contains(t, d.caption, "2 shapes")
	assert.Positive(t, count(paint(t, cfg, d), black))

	cfg.clicks = []image.Point{{0, 99}, {9, 99}}
	d = rasterScene(cfg)
	// One line along the bottom row, ten pixels.
	assert.Equal(t, 10, count(paint(t, cfg, d), black))
	assert.Contains(t, d.caption, "1 shapes  10 pixels  10 on canvas")

	cfg.mode = controller.ModeCircle
	cfg.clicks = []image.Point{{0, 99}, {5, 99}}
	d = rasterScene(cfg)
	assert.Contains(t, d.caption, "1 shapes  40 pixels")
	assert.NotContains(t, d.caption, "40 on canvas", "half the circle is off the canvas")
}

func TestBackgroundColor(t *testing.T) {
	cfg := testConfig(t, "raster", "")
	cfg.background = raster.Hex("#102030")
	pm := paint(t, cfg, drawing{})
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, pm.ToImage().RGBAAt(50, 50))
}

func TestBuildSceneUnknown(t *testing.T) {
	_, err := buildScene(testConfig(t, "clip", ""), "teapot")
	assert.True(t, errors.Is(err, errUsage))
}

func TestMagnify(t *testing.T) {
	src := raster.NewPixmap(2, 1)
	src.SetPixel(1, 0, raster.Teal)

	dst := magnify(src, 3)
	assert.Equal(t, image.Rect(0, 0, 6, 3), dst.Bounds())
	assert.Equal(t, raster.Teal, dst.GetPixel(5, 2))
	assert.Equal(t, raster.Transparent, dst.GetPixel(2, 2))

	assert.Same(t, src, magnify(src, 1))
}

func TestNewPainterSoftware(t *testing.T) {
	cfg := testConfig(t, "clip", "")
	p, err := newPainter(cfg)
	require.NoError(t, err)
	defer p.close()
	assert.IsType(t, softwarePainter{}, p)
}

func TestRun(t *testing.T) {
	f := defaultFlags()
	f.width, f.height, f.zoom = 40, 30, 2
	f.out = filepath.Join(t.TempDir(), "lab")
	cfg, err := newConfig(f)
	require.NoError(t, err)

	files, err := run(cfg)
	require.NoError(t, err)
	require.Len(t, files, 3)

	for _, path := range files {
		file, err := os.Open(path)
		require.NoError(t, err)
		img, err := png.Decode(file)
		file.Close()
		require.NoError(t, err, path)
		assert.Equal(t, image.Rect(0, 0, 80, 60), img.Bounds())
	}
}

func TestRunBadPath(t *testing.T) {
	f := defaultFlags()
	f.scene = "clip"
	f.width, f.height = 10, 10
	f.out = filepath.Join(t.TempDir(), "missing", "lab")
	cfg, err := newConfig(f)
	require.NoError(t, err)
	cfg.caption = false

	_, err = run(cfg)
	assert.Error(t, err)
}
