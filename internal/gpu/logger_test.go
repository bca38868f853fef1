package gpu

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageLogger(t *testing.T) {
	orig := slogger()
	t.Cleanup(func() { SetLogger(orig) })

	require.NotNil(t, orig)
	assert.False(t, orig.Enabled(context.Background(), slog.LevelError), "silent by default")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slogger().Debug("gpu: frame", "n", 1)
	assert.Contains(t, buf.String(), "gpu: frame")

	SetLogger(nil)
	require.NotNil(t, slogger())
	assert.False(t, slogger().Enabled(context.Background(), slog.LevelError))
}
