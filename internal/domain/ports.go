package domain

import (
	"context"
	"fmt"
	"time"
)

// AnnotationScanner produces the annotation snapshot for a run by walking
// the given root paths. An empty roots slice means the current directory.
// Traversal and read errors abort the whole scan.
type AnnotationScanner interface {
	Scan(ctx context.Context, roots []string) ([]Annotation, error)
}

// Rewriter applies a batch of mutations to the underlying files. Failures
// are collected per file; one file failing does not stop the others.
type Rewriter interface {
	Apply(ctx context.Context, muts []Mutation) RewriteReport
}

// RewriteReport summarizes one Apply call.
type RewriteReport struct {
	Failures []FileError
	Files    int // Files rewritten successfully
}

// FileError records a per-file rewrite failure.
type FileError struct {
	Err  error
	Path string
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// ConfigLoader loads the merged application configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
