//go:build nogpu

package main

import (
	"fmt"

	"github.com/gogpu/rasterlab/raster"
)

func openGPU(raster.RGBA) (painter, error) {
	return nil, fmt.Errorf("%w: built with nogpu", errNoGPU)
}
