//go:build !nogpu

package main

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/rasterlab/internal/gpu"
)

// checkShaders compiles every pipeline's WGSL to SPIR-V.
func checkShaders(logger *slog.Logger) error {
	for _, p := range []gpu.Pipeline{gpu.PipelineLines, gpu.PipelinePoints, gpu.PipelineTransform} {
		src, err := gpu.ShaderSource(p)
		if err != nil {
			return err
		}
		code, err := gpu.CompileShaderToSPIRV(src)
		if err != nil {
			return fmt.Errorf("%v: %w", p, err)
		}
		logger.Info("shader compiled", "pipeline", p, "wgsl_bytes", len(src), "spirv_words", len(code))
	}
	return nil
}
