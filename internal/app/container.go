// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	"github.com/runoshun/todoctl/internal/domain"
	"github.com/runoshun/todoctl/internal/infra/config"
	"github.com/runoshun/todoctl/internal/infra/logging"
	"github.com/runoshun/todoctl/internal/infra/rewrite"
	"github.com/runoshun/todoctl/internal/infra/scan"
	"github.com/runoshun/todoctl/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Scanner  domain.AnnotationScanner
	Rewriter domain.Rewriter
	Clock    domain.Clock
	Config   *domain.Config
	Logger   *slog.Logger
}

// New creates a Container rooted at the given working directory. The
// annotation pattern is compiled once here; everything downstream receives
// it through the container (no ambient state).
func New(workDir string) (*Container, error) {
	cfg, err := config.NewLoader(workDir).Load()
	if err != nil {
		return nil, err
	}

	levelStr := os.Getenv("TODOCTL_LOG")
	if levelStr == "" {
		levelStr = cfg.Scan.LogLevel
	}
	logger := logging.New(logging.ParseLevel(levelStr))

	matcher, err := scan.NewMatcher(scan.DefaultPattern)
	if err != nil {
		return nil, err
	}

	return &Container{
		Scanner:  scan.NewScanner(matcher, logger),
		Rewriter: rewrite.New(logger),
		Clock:    domain.RealClock{},
		Config:   cfg,
		Logger:   logger,
	}, nil
}

// ListAnnotationsUseCase creates a ListAnnotations use case.
func (c *Container) ListAnnotationsUseCase() *usecase.ListAnnotations {
	return usecase.NewListAnnotations(c.Scanner, c.Clock)
}

// ReportAnnotationsUseCase creates a ReportAnnotations use case.
func (c *Container) ReportAnnotationsUseCase() *usecase.ReportAnnotations {
	return usecase.NewReportAnnotations(c.Scanner, c.Clock)
}

// LintAnnotationsUseCase creates a LintAnnotations use case.
func (c *Container) LintAnnotationsUseCase() *usecase.LintAnnotations {
	return usecase.NewLintAnnotations(c.Scanner)
}

// FormatAnnotationsUseCase creates a FormatAnnotations use case.
func (c *Container) FormatAnnotationsUseCase() *usecase.FormatAnnotations {
	return usecase.NewFormatAnnotations(c.Scanner, c.Rewriter)
}

// ModifyAnnotationsUseCase creates a ModifyAnnotations use case.
func (c *Container) ModifyAnnotationsUseCase() *usecase.ModifyAnnotations {
	return usecase.NewModifyAnnotations(c.Scanner, c.Rewriter)
}
