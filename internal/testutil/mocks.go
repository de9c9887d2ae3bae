// Package testutil provides shared mock implementations of the domain
// ports for use case and CLI tests.
package testutil

import (
	"context"
	"time"

	"github.com/runoshun/todoctl/internal/domain"
)

// Ensure mocks implement their ports.
var (
	_ domain.AnnotationScanner = (*MockScanner)(nil)
	_ domain.Rewriter          = (*MockRewriter)(nil)
	_ domain.Clock             = FixedClock{}
)

// MockScanner returns a fixed annotation snapshot.
type MockScanner struct {
	Annotations []domain.Annotation
	Err         error
	LastRoots   []string
	Calls       int
}

// Scan records the call and returns the configured snapshot.
func (m *MockScanner) Scan(_ context.Context, roots []string) ([]domain.Annotation, error) {
	m.Calls++
	m.LastRoots = roots
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Annotations, nil
}

// MockRewriter records applied mutation batches.
type MockRewriter struct {
	Applied [][]domain.Mutation
	Report  domain.RewriteReport
}

// Apply records the batch and returns the configured report. When no report
// is configured it reports one rewritten file per distinct path.
func (m *MockRewriter) Apply(_ context.Context, muts []domain.Mutation) domain.RewriteReport {
	m.Applied = append(m.Applied, muts)
	if m.Report.Files != 0 || len(m.Report.Failures) != 0 {
		return m.Report
	}
	paths := make(map[string]struct{})
	for _, mut := range muts {
		paths[mut.Path] = struct{}{}
	}
	return domain.RewriteReport{Files: len(paths)}
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.Time }
