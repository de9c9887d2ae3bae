package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todoctl/internal/domain"
)

// LintAnnotationsInput contains the parameters for linting.
type LintAnnotationsInput struct {
	Paths []string
	Rules domain.LintConfig
}

// LintAnnotationsOutput contains annotations with at least one violation.
// An empty Results with a non-zero Checked count is the clean state.
type LintAnnotationsOutput struct {
	Results []domain.LintResult
	Checked int
}

// LintAnnotations is the use case for evaluating the lint rule set.
type LintAnnotations struct {
	scanner domain.AnnotationScanner
}

// NewLintAnnotations creates a new LintAnnotations use case.
func NewLintAnnotations(scanner domain.AnnotationScanner) *LintAnnotations {
	return &LintAnnotations{scanner: scanner}
}

// Execute scans the tree and checks every annotation against the rules.
func (uc *LintAnnotations) Execute(ctx context.Context, in LintAnnotationsInput) (*LintAnnotationsOutput, error) {
	all, err := uc.scanner.Scan(ctx, in.Paths)
	if err != nil {
		return nil, fmt.Errorf("scan annotations: %w", err)
	}

	out := &LintAnnotationsOutput{Checked: len(all)}
	for _, a := range all {
		if vs := in.Rules.Check(a); len(vs) > 0 {
			out.Results = append(out.Results, domain.LintResult{Annotation: a, Violations: vs})
		}
	}
	return out, nil
}
