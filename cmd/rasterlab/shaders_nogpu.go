//go:build nogpu

package main

import (
	"errors"
	"log/slog"
)

func checkShaders(*slog.Logger) error {
	return errors.New("built with nogpu: shaders are not available")
}
