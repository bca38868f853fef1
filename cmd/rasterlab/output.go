package main

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/rasterlab"
	"github.com/gogpu/rasterlab/raster"
)

const captionSize = 12

var captionFace = sync.OnceValues(func() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse caption font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create caption face: %w", err)
	}
	return face, nil
})

// run renders every configured scene and returns the files written.
func run(cfg config) ([]string, error) {
	p, err := newPainter(cfg)
	if err != nil {
		return nil, err
	}
	defer p.close()

	var files []string
	for _, scene := range cfg.scenes {
		d, err := buildScene(cfg, scene)
		if err != nil {
			return files, err
		}
		pm, err := p.paint(d, cfg.width, cfg.height)
		if err != nil {
			return files, fmt.Errorf("paint %s: %w", scene, err)
		}
		rasterlab.Logger().Debug("scene rendered", "scene", scene, "caption", d.caption)

		pm = magnify(pm, cfg.zoom)
		if cfg.caption {
			if err := drawCaption(pm, d.caption); err != nil {
				return files, err
			}
		}

		path := cfg.outputPath(scene)
		if err := pm.SavePNG(path); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

// magnify scales pm up by zoom with nearest-neighbour sampling so that
// every grid pixel stays a sharp square.
func magnify(pm *raster.Pixmap, zoom int) *raster.Pixmap {
	if zoom <= 1 {
		return pm
	}
	dst := raster.NewPixmap(pm.Width()*zoom, pm.Height()*zoom)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), pm, pm.Bounds(), draw.Src, nil)
	return dst
}

// drawCaption writes text in the top-left corner of dst.
func drawCaption(dst draw.Image, text string) error {
	face, err := captionFace()
	if err != nil {
		return err
	}
	ascent := face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Gray{Y: 0x40}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(4), Y: fixed.I(4) + ascent},
	}
	d.DrawString(text)
	return nil
}
