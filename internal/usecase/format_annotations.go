package usecase

import (
	"context"

	"github.com/runoshun/todoctl/internal/domain"
)

// FormatAnnotationsInput contains the parameters for the fmt command.
type FormatAnnotationsInput struct {
	Paths []string
}

// FormatAnnotationsOutput contains the result of canonicalizing every
// annotation in the tree.
type FormatAnnotationsOutput struct {
	Report domain.RewriteReport
	Count  int
}

// FormatAnnotations is the use case for rewriting every annotation into
// canonical form. It is the identity code-mod: metadata is kept, only the
// line's formatting changes.
type FormatAnnotations struct {
	modify *ModifyAnnotations
}

// NewFormatAnnotations creates a new FormatAnnotations use case.
func NewFormatAnnotations(scanner domain.AnnotationScanner, rewriter domain.Rewriter) *FormatAnnotations {
	return &FormatAnnotations{modify: NewModifyAnnotations(scanner, rewriter)}
}

// Execute rewrites every annotation found under the given paths.
func (uc *FormatAnnotations) Execute(ctx context.Context, in FormatAnnotationsInput) (*FormatAnnotationsOutput, error) {
	out, err := uc.modify.Execute(ctx, ModifyAnnotationsInput{
		Paths:     in.Paths,
		Select:    domain.SelectAll,
		Transform: domain.KeepMetadata,
	})
	if err != nil {
		return nil, err
	}
	return &FormatAnnotationsOutput{Report: out.Report, Count: out.Count}, nil
}
