// Command rasterlab renders the transform, clipping and rasterization labs
// to PNG files.
//
// Usage:
//
//	rasterlab [flags]
//
// Each scene is written to <out>-<scene>.png. Key presses are replayed
// through the same controllers an interactive front end would use:
//
//	rasterlab -scene transform -keys right,right,a,a,w
//	rasterlab -scene clip -keys s,s,left -zoom 2
//	rasterlab -scene raster -mode circle -clicks 200,200,260,200
//	rasterlab -backend gpu -bg "#f0f0e0"
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/rasterlab"
)

func main() {
	f := defaultFlags()
	flag.StringVar(&f.scene, "scene", f.scene, "scene to render: transform, clip, raster or all")
	flag.IntVar(&f.width, "width", f.width, "canvas width in pixels")
	flag.IntVar(&f.height, "height", f.height, "canvas height in pixels")
	flag.StringVar(&f.out, "out", f.out, "output file prefix")
	flag.IntVar(&f.zoom, "zoom", f.zoom, "nearest-neighbour magnification of the output")
	flag.StringVar(&f.keys, "keys", "", "comma-separated key presses: left,right,up,down,w,s,a,d,space")
	flag.StringVar(&f.clicks, "clicks", "", "comma-separated canvas click coordinates x0,y0,x1,y1,... for the raster scene")
	flag.StringVar(&f.mode, "mode", f.mode, "raster shape mode: line or circle")
	flag.StringVar(&f.backend, "backend", f.backend, "renderer: software, or gpu with software fallback")
	flag.StringVar(&f.background, "bg", f.background, "background color as RGB, RRGGBB or RRGGBBAA hex")
	var (
		noClip  = flag.Bool("noclip", false, "start the clip scene with clipping disabled")
		caption = flag.Bool("caption", true, "draw a caption with the scene state")
		shaders = flag.Bool("shaders", false, "compile the GPU shaders with naga and report their sizes")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	rasterlab.SetLogger(logger)

	cfg, err := newConfig(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rasterlab: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}
	cfg.clipping = !*noClip
	cfg.caption = *caption

	if *shaders {
		if err := checkShaders(logger); err != nil {
			logger.Error("shader check failed", "err", err)
			os.Exit(1)
		}
	}

	files, err := run(cfg)
	if err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
	for _, path := range files {
		logger.Info("scene saved", "file", path, "width", cfg.width*cfg.zoom, "height", cfg.height*cfg.zoom)
	}
}
