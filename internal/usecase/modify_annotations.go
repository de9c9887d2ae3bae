package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todoctl/internal/domain"
)

// ModifyAnnotationsInput selects annotations and describes their new
// metadata. Every code-mod command is expressed through this one shape.
type ModifyAnnotationsInput struct {
	Paths     []string
	Select    domain.Selector
	Transform domain.Transform
}

// ModifyAnnotationsOutput contains the result of a code-mod run.
type ModifyAnnotationsOutput struct {
	Report domain.RewriteReport
	Count  int // Annotations selected for rewriting
}

// ModifyAnnotations is the use case for batch-rewriting annotations.
type ModifyAnnotations struct {
	scanner  domain.AnnotationScanner
	rewriter domain.Rewriter
}

// NewModifyAnnotations creates a new ModifyAnnotations use case.
func NewModifyAnnotations(scanner domain.AnnotationScanner, rewriter domain.Rewriter) *ModifyAnnotations {
	return &ModifyAnnotations{scanner: scanner, rewriter: rewriter}
}

// Execute scans the tree, builds one mutation per selected annotation and
// applies them. A selector matching nothing touches no file.
func (uc *ModifyAnnotations) Execute(ctx context.Context, in ModifyAnnotationsInput) (*ModifyAnnotationsOutput, error) {
	all, err := uc.scanner.Scan(ctx, in.Paths)
	if err != nil {
		return nil, fmt.Errorf("scan annotations: %w", err)
	}

	var muts []domain.Mutation
	for _, a := range all {
		if in.Select(a) {
			muts = append(muts, a.Mutate(in.Transform(a.Metadata)))
		}
	}
	if len(muts) == 0 {
		return &ModifyAnnotationsOutput{}, nil
	}

	return &ModifyAnnotationsOutput{
		Count:  len(muts),
		Report: uc.rewriter.Apply(ctx, muts),
	}, nil
}
