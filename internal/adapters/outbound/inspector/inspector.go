// Package inspector checks wasm artifacts for basic well-formedness. Core
// modules are compiled with wazero; component-model binaries are recognized
// by their header layer field, since wazero does not decode the component
// layer. Deep component validation stays with the external extraction tool.
package inspector

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/witcheck/witcheck/internal/domain"
)

// Artifacts below this size are build accidents, not components.
const minArtifactSize = 100

// Wazero implements domain.ComponentInspector.
type Wazero struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Wazero {
	return &Wazero{logger: logger}
}

// Inspect classifies and validates one wasm file. It returns an error only
// when the file cannot be read; a malformed artifact is a non-error result
// with Valid=false.
func (i *Wazero) Inspect(ctx context.Context, path string) (*domain.ArtifactInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading artifact: %w", err)
	}

	info := &domain.ArtifactInfo{
		Path:      path,
		Kind:      domain.KindUnknown,
		SizeBytes: int64(len(data)),
	}

	if len(data) < minArtifactSize {
		info.Detail = fmt.Sprintf("file too small (%d bytes)", len(data))
		return info, nil
	}
	if string(data[:4]) != "\x00asm" {
		info.Detail = "missing wasm magic"
		return info, nil
	}

	// After the magic, bytes 4-5 hold the version and bytes 6-7 the layer:
	// 0 for a core module, 1 for a component-model binary.
	layer := uint16(data[6]) | uint16(data[7])<<8
	switch layer {
	case 0:
		info.Kind = domain.KindCoreModule
		i.compileCore(ctx, data, info)
	case 1:
		info.Kind = domain.KindComponent
		info.Valid = true
		info.Detail = "component-model binary; export surface requires the extraction tool"
	default:
		info.Detail = fmt.Sprintf("unknown wasm layer %d", layer)
	}

	i.logger.Debug("inspected artifact",
		zap.String("path", path),
		zap.String("kind", string(info.Kind)),
		zap.Bool("valid", info.Valid),
		zap.Int64("size_bytes", info.SizeBytes),
	)

	return info, nil
}

func (i *Wazero) compileCore(ctx context.Context, data []byte, info *domain.ArtifactInfo) {
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	if _, err := r.CompileModule(ctx, data); err != nil {
		info.Detail = fmt.Sprintf("core module rejected: %v", err)
		return
	}
	info.Valid = true
}
