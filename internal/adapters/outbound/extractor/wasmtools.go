// Package extractor shells out to an external tool to obtain the WIT
// interface text of a compiled component. The tool is any executable
// honoring the "component wit <path>" contract; wasm-tools is the usual one.
package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/witcheck/witcheck/internal/domain"
)

// WasmTools implements domain.InterfaceExtractor via a subprocess call with
// a fixed timeout. There are no retries: a failed or timed-out extraction
// aborts the whole validation run.
type WasmTools struct {
	tool    string
	timeout time.Duration
	logger  *zap.Logger
}

// New creates a WasmTools extractor. tool may be a bare name resolved via
// PATH or an absolute path.
func New(tool string, timeout time.Duration, logger *zap.Logger) *WasmTools {
	return &WasmTools{tool: tool, timeout: timeout, logger: logger}
}

// Extract runs "<tool> component wit <componentPath>" and returns the WIT
// text from stdout. A missing tool is reported as domain.ErrToolNotFound so
// callers can tell environment misconfiguration from a rejected component.
func (w *WasmTools) Extract(ctx context.Context, componentPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, w.tool, "component", "wit", componentPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", domain.ErrToolNotFound, w.tool)
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("extracting WIT from %s: timed out after %s", componentPath, w.timeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("extracting WIT from %s: %s", componentPath, msg)
	}

	w.logger.Debug("extracted component WIT",
		zap.String("tool", w.tool),
		zap.String("component", componentPath),
		zap.Duration("took", time.Since(start)),
	)

	return strings.TrimSpace(stdout.String()), nil
}
