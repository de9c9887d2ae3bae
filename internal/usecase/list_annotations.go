// Package usecase implements the application use cases for todoctl. Each
// use case takes its ports as constructor arguments and exposes a single
// Execute method over an Input/Output pair.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todoctl/internal/domain"
)

// ListAnnotationsInput contains the parameters for listing annotations.
type ListAnnotationsInput struct {
	Paths   []string
	Filters domain.Filters
}

// ListAnnotationsOutput contains the filtered annotation snapshot.
type ListAnnotationsOutput struct {
	Annotations []domain.Annotation
}

// ListAnnotations is the use case for listing annotations.
type ListAnnotations struct {
	scanner domain.AnnotationScanner
	clock   domain.Clock
}

// NewListAnnotations creates a new ListAnnotations use case.
func NewListAnnotations(scanner domain.AnnotationScanner, clock domain.Clock) *ListAnnotations {
	return &ListAnnotations{scanner: scanner, clock: clock}
}

// Execute scans the tree and applies the filters.
func (uc *ListAnnotations) Execute(ctx context.Context, in ListAnnotationsInput) (*ListAnnotationsOutput, error) {
	all, err := uc.scanner.Scan(ctx, in.Paths)
	if err != nil {
		return nil, fmt.Errorf("scan annotations: %w", err)
	}
	return &ListAnnotationsOutput{
		Annotations: in.Filters.Apply(all, uc.clock.Now()),
	}, nil
}
