package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/witcheck/witcheck/internal/domain"
	"github.com/witcheck/witcheck/internal/domain/wit"
)

// ValidateService checks a compiled component's export surface against a
// reference WIT specification. Each run is independent: no shared state, no
// retries, no persistence.
type ValidateService struct {
	extractor domain.InterfaceExtractor
	git       domain.GitInfo
	logger    *zap.Logger
}

// NewValidateService creates a ValidateService with all required
// dependencies.
func NewValidateService(extractor domain.InterfaceExtractor, git domain.GitInfo, logger *zap.Logger) *ValidateService {
	return &ValidateService{extractor: extractor, git: git, logger: logger}
}

// Validate extracts the actual WIT from componentPath, parses it alongside
// the expected WIT file, and diffs the export surfaces. worldName is
// documentary: it is carried into the report for operators but never alters
// parsing or comparison. failOnExtra escalates extra exports to failures.
func (s *ValidateService) Validate(ctx context.Context, componentPath, witPath, worldName string, failOnExtra bool) (*domain.ValidationResult, error) {
	// 1. Inputs must exist before any processing.
	if _, err := os.Stat(componentPath); err != nil {
		return nil, fmt.Errorf("component file not found: %s", componentPath)
	}
	if _, err := os.Stat(witPath); err != nil {
		return nil, fmt.Errorf("WIT file not found: %s", witPath)
	}

	s.logger.Debug("validating component exports",
		zap.String("component", componentPath),
		zap.String("wit_file", witPath),
		zap.String("world", worldName),
	)

	// 2. Extract the actual interface text.
	actualText, err := s.extractor.Extract(ctx, componentPath)
	if err != nil {
		return nil, err
	}

	// 3. Read the expected specification.
	expectedText, err := os.ReadFile(witPath)
	if err != nil {
		return nil, fmt.Errorf("reading WIT file: %w", err)
	}

	// 4. Parse both export surfaces.
	actual := wit.ParseExports(actualText)
	expected := wit.ParseExports(string(expectedText))

	s.logger.Debug("parsed export surfaces",
		zap.Int("actual_interfaces", len(actual)),
		zap.Int("expected_interfaces", len(expected)),
	)

	// 5. Compare.
	result := domain.CompareExports(actual, expected)
	if failOnExtra {
		result.EnforceNoExtra()
	}

	// 6. Naming lint over the specification; warnings only.
	result.Warnings = domain.LintExportNames(expected)

	// 7. Stamp report metadata.
	result.Component = componentPath
	result.WitFile = witPath
	result.World = worldName
	if dir := filepath.Dir(componentPath); s.git.IsGitRepo(dir) {
		if hash, err := s.git.CommitHash(dir); err == nil {
			result.Commit = hash
		}
	}

	return result, nil
}
