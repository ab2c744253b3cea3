package extractor_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/witcheck/witcheck/internal/adapters/outbound/extractor"
	"github.com/witcheck/witcheck/internal/domain"
)

// writeStubTool writes an executable shell script standing in for
// wasm-tools and returns its path.
func writeStubTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tool scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "stub-wasm-tools")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestExtract_Success(t *testing.T) {
	tool := writeStubTool(t, `echo "interface math"; echo "  add: func(a: u32, b: u32) -> u32;"`)
	ex := extractor.New(tool, 30*time.Second, zap.NewNop())

	out, err := ex.Extract(context.Background(), "component.wasm")

	require.NoError(t, err)
	assert.Contains(t, out, "interface math")
	assert.Contains(t, out, "add: func(")
}

func TestExtract_NonZeroExitSurfacesStderr(t *testing.T) {
	tool := writeStubTool(t, `echo "not a component" >&2; exit 1`)
	ex := extractor.New(tool, 30*time.Second, zap.NewNop())

	_, err := ex.Extract(context.Background(), "bad.wasm")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a component")
	assert.NotErrorIs(t, err, domain.ErrToolNotFound)
}

func TestExtract_ToolNotFound(t *testing.T) {
	ex := extractor.New("definitely-not-on-path-witcheck", 30*time.Second, zap.NewNop())

	_, err := ex.Extract(context.Background(), "component.wasm")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestExtract_Timeout(t *testing.T) {
	tool := writeStubTool(t, `sleep 5`)
	ex := extractor.New(tool, 100*time.Millisecond, zap.NewNop())

	_, err := ex.Extract(context.Background(), "component.wasm")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestExtract_TrimsOutput(t *testing.T) {
	tool := writeStubTool(t, `printf "\n\ninterface x\n\n"`)
	ex := extractor.New(tool, 30*time.Second, zap.NewNop())

	out, err := ex.Extract(context.Background(), "component.wasm")

	require.NoError(t, err)
	assert.Equal(t, "interface x", out)
}
