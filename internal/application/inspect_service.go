package application

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/witcheck/witcheck/internal/domain"
)

// InspectService reports well-formedness and interface surface stats for a
// batch of wasm artifacts. Unlike validation, a missing extraction tool only
// downgrades the WIT surface counts to "skipped" — an artifact can still be
// judged well-formed without it.
type InspectService struct {
	inspector domain.ComponentInspector
	extractor domain.InterfaceExtractor
	logger    *zap.Logger
}

// NewInspectService creates an InspectService with all required
// dependencies.
func NewInspectService(inspector domain.ComponentInspector, extractor domain.InterfaceExtractor, logger *zap.Logger) *InspectService {
	return &InspectService{inspector: inspector, extractor: extractor, logger: logger}
}

// InspectAll inspects each path in order and aggregates a summary. Unreadable
// files become invalid reports rather than aborting the batch.
func (s *InspectService) InspectAll(ctx context.Context, paths []string) *domain.InspectSummary {
	summary := &domain.InspectSummary{Total: len(paths)}

	for _, path := range paths {
		report := s.inspectOne(ctx, path)
		if report.Artifact.Valid {
			summary.Valid++
		}
		summary.Reports = append(summary.Reports, report)
	}

	summary.AllValid = summary.Valid == summary.Total
	return summary
}

func (s *InspectService) inspectOne(ctx context.Context, path string) domain.InspectReport {
	info, err := s.inspector.Inspect(ctx, path)
	if err != nil {
		return domain.InspectReport{
			Artifact: domain.ArtifactInfo{Path: path, Kind: domain.KindUnknown, Detail: err.Error()},
		}
	}

	report := domain.InspectReport{Artifact: *info}
	if !info.Valid {
		return report
	}

	// Surface counts come from the extracted WIT when the tool is around.
	text, err := s.extractor.Extract(ctx, path)
	switch {
	case err == nil:
		report.WitAvailable = true
		report.Interfaces, report.Exports, report.Imports = countSurface(text)
	case errors.Is(err, domain.ErrToolNotFound):
		report.Note = "extraction tool not found; WIT surface skipped"
	default:
		report.Note = "could not extract WIT: " + err.Error()
	}

	s.logger.Debug("inspected component",
		zap.String("path", path),
		zap.Bool("wit_available", report.WitAvailable),
	)

	return report
}

// countSurface counts interface, export and import mentions line by line.
// It is a rough census for operators, not a parse.
func countSurface(witText string) (interfaces, exports, imports int) {
	for _, line := range strings.Split(witText, "\n") {
		if strings.Contains(line, "interface") {
			interfaces++
		}
		if strings.Contains(line, "export") {
			exports++
		}
		if strings.Contains(line, "import") {
			imports++
		}
	}
	return
}
