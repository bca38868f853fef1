package main

import (
	"errors"
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rasterlab/controller"
	"github.com/gogpu/rasterlab/raster"
)

var errUsage = errors.New("invalid arguments")

// hexColor matches the forms raster.Hex accepts.
var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// scenes lists the scenes rendered by -scene all, in output order.
var scenes = []string{"transform", "clip", "raster"}

var keyNames = map[string]gpucontext.Key{
	"left":  gpucontext.KeyLeft,
	"right": gpucontext.KeyRight,
	"up":    gpucontext.KeyUp,
	"down":  gpucontext.KeyDown,
	"w":     gpucontext.KeyW,
	"s":     gpucontext.KeyS,
	"a":     gpucontext.KeyA,
	"d":     gpucontext.KeyD,
	"space": gpucontext.KeySpace,
}

// Backends accepted by -backend.
const (
	backendSoftware = "software"
	backendGPU      = "gpu"
)

// flagValues are the raw command line values newConfig validates.
type flagValues struct {
	scene      string
	width      int
	height     int
	out        string
	zoom       int
	keys       string
	clicks     string
	mode       string
	backend    string
	background string
}

// defaultFlags returns the flag defaults.
func defaultFlags() flagValues {
	return flagValues{
		scene:      "all",
		width:      400,
		height:     400,
		out:        "rasterlab",
		zoom:       1,
		mode:       "line",
		backend:    backendSoftware,
		background: "#ffffff",
	}
}

type config struct {
	scenes     []string
	width      int
	height     int
	out        string
	zoom       int
	keys       []gpucontext.Key
	clicks     []image.Point
	mode       controller.Mode
	backend    string
	background raster.RGBA
	clipping   bool
	caption    bool
}

func newConfig(f flagValues) (config, error) {
	cfg := config{
		width:    f.width,
		height:   f.height,
		out:      f.out,
		zoom:     f.zoom,
		clipping: true,
		caption:  true,
	}

	switch f.scene {
	case "all":
		cfg.scenes = scenes
	case "transform", "clip", "raster":
		cfg.scenes = []string{f.scene}
	default:
		return config{}, fmt.Errorf("%w: unknown scene %q", errUsage, f.scene)
	}
	if f.width <= 0 || f.height <= 0 {
		return config{}, fmt.Errorf("%w: canvas size %dx%d", errUsage, f.width, f.height)
	}
	if f.zoom < 1 {
		return config{}, fmt.Errorf("%w: zoom %d", errUsage, f.zoom)
	}
	if f.out == "" {
		return config{}, fmt.Errorf("%w: empty output prefix", errUsage)
	}

	switch f.mode {
	case "line":
		cfg.mode = controller.ModeLine
	case "circle":
		cfg.mode = controller.ModeCircle
	default:
		return config{}, fmt.Errorf("%w: unknown mode %q", errUsage, f.mode)
	}

	switch f.backend {
	case backendSoftware, backendGPU:
		cfg.backend = f.backend
	default:
		return config{}, fmt.Errorf("%w: unknown backend %q", errUsage, f.backend)
	}

	if !hexColor.MatchString(f.background) {
		return config{}, fmt.Errorf("%w: background %q is not a hex color", errUsage, f.background)
	}
	cfg.background = raster.Hex(f.background)

	var err error
	if cfg.keys, err = parseKeys(f.keys); err != nil {
		return config{}, err
	}
	if cfg.clicks, err = parseClicks(f.clicks); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// parseKeys parses a comma-separated list of key names.
func parseKeys(s string) ([]gpucontext.Key, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var keys []gpucontext.Key
	for _, name := range strings.Split(s, ",") {
		k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: unknown key %q", errUsage, name)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// parseClicks parses "x0,y0,x1,y1,..." into canvas points.
func parseClicks(s string) ([]image.Point, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("%w: clicks need x,y pairs, got %d values", errUsage, len(fields))
	}
	pts := make([]image.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return nil, fmt.Errorf("%w: click x: %w", errUsage, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(fields[i+1]))
		if err != nil {
			return nil, fmt.Errorf("%w: click y: %w", errUsage, err)
		}
		pts = append(pts, image.Pt(x, y))
	}
	return pts, nil
}

// outputPath returns the PNG path of scene.
func (c config) outputPath(scene string) string {
	return c.out + "-" + scene + ".png"
}
