//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/lines.wgsl
var linesShaderSource string

//go:embed shaders/points.wgsl
var pointsShaderSource string

//go:embed shaders/transform.wgsl
var transformShaderSource string

// Pipeline identifies one of the render pipelines.
type Pipeline uint8

const (
	// PipelineLines draws a line list in normalized device coordinates.
	PipelineLines Pipeline = iota
	// PipelinePoints draws a point list of pixel grid coordinates.
	PipelinePoints
	// PipelineTransform draws a triangle list through a model matrix.
	PipelineTransform

	pipelineCount
)

func (p Pipeline) String() string {
	switch p {
	case PipelineLines:
		return "lines"
	case PipelinePoints:
		return "points"
	case PipelineTransform:
		return "transform"
	}
	return fmt.Sprintf("Pipeline(%d)", uint8(p))
}

// ShaderSource returns the WGSL source of p.
func ShaderSource(p Pipeline) (string, error) {
	switch p {
	case PipelineLines:
		return linesShaderSource, nil
	case PipelinePoints:
		return pointsShaderSource, nil
	case PipelineTransform:
		return transformShaderSource, nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownPipeline, p)
}

// CompileShaderToSPIRV compiles WGSL source to SPIR-V words.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadSPIRV, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}
