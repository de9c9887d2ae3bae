package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todoctl/internal/domain"
)

// ReportAnnotationsInput contains the parameters for the report command.
type ReportAnnotationsInput struct {
	Paths   []string
	Filters domain.Filters
	GroupBy *domain.GroupKey // nil = bare count only
}

// ReportAnnotationsOutput contains the aggregated result.
type ReportAnnotationsOutput struct {
	Groups []domain.GroupCount // nil when no grouping was requested
	Total  int
}

// ReportAnnotations is the use case for counting and grouping annotations.
type ReportAnnotations struct {
	scanner domain.AnnotationScanner
	clock   domain.Clock
}

// NewReportAnnotations creates a new ReportAnnotations use case.
func NewReportAnnotations(scanner domain.AnnotationScanner, clock domain.Clock) *ReportAnnotations {
	return &ReportAnnotations{scanner: scanner, clock: clock}
}

// Execute scans, filters and aggregates annotations.
func (uc *ReportAnnotations) Execute(ctx context.Context, in ReportAnnotationsInput) (*ReportAnnotationsOutput, error) {
	all, err := uc.scanner.Scan(ctx, in.Paths)
	if err != nil {
		return nil, fmt.Errorf("scan annotations: %w", err)
	}
	matched := in.Filters.Apply(all, uc.clock.Now())

	out := &ReportAnnotationsOutput{Total: len(matched)}
	if in.GroupBy != nil {
		out.Groups = domain.GroupAndCount(matched, *in.GroupBy)
	}
	return out, nil
}
