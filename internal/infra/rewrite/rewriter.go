// Package rewrite applies annotation mutations to source files in place.
// Mutations are grouped per file so each affected file is opened exactly
// once; every non-targeted line passes through unchanged.
package rewrite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/runoshun/todoctl/internal/domain"
)

// Ensure Rewriter implements domain.Rewriter.
var _ domain.Rewriter = (*Rewriter)(nil)

// Rewriter rewrites annotation lines in place, one transaction per file.
type Rewriter struct {
	logger *slog.Logger
}

// New creates a Rewriter.
func New(logger *slog.Logger) *Rewriter {
	return &Rewriter{logger: logger}
}

// Apply rewrites every targeted line. Mutations targeting the same line are
// last-write-wins. Per-file failures are collected into the report and do
// not stop the remaining files.
func (r *Rewriter) Apply(ctx context.Context, muts []domain.Mutation) domain.RewriteReport {
	byFile := make(map[string]map[int]domain.Mutation)
	for _, m := range muts {
		lines, ok := byFile[m.Path]
		if !ok {
			lines = make(map[int]domain.Mutation)
			byFile[m.Path] = lines
		}
		lines[m.Line-1] = m // zero-based line index
	}

	paths := make([]string, 0, len(byFile))
	for p := range byFile {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var report domain.RewriteReport
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			report.Failures = append(report.Failures, domain.FileError{Path: path, Err: err})
			continue
		}
		if err := r.rewriteFile(path, byFile[path]); err != nil {
			r.logger.Warn("rewrite failed", "path", path, "error", err)
			report.Failures = append(report.Failures, domain.FileError{Path: path, Err: err})
			continue
		}
		r.logger.Debug("rewrote file", "path", path, "lines", len(byFile[path]))
		report.Files++
	}
	return report
}

// rewriteFile replaces the targeted lines and atomically replaces the file.
// Untargeted lines are reproduced byte-for-byte, modulo normalizing line
// endings to \n.
func (r *Rewriter) rewriteFile(path string, updates map[int]domain.Mutation) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	text := string(content)
	lines := splitLines(text)
	for idx, mut := range updates {
		if idx < 0 || idx >= len(lines) {
			continue
		}
		if replaced, ok := renderLine(lines[idx], mut); ok {
			lines[idx] = replaced
		}
	}

	out := strings.Join(lines, "\n")
	if strings.HasSuffix(text, "\n") {
		out += "\n"
	}
	return writeAtomic(path, []byte(out), info.Mode().Perm())
}

// renderLine rebuilds a line as canonical annotation text, keeping whatever
// precedes the comment delimiter. A line that no longer contains the
// recorded delimiter is a stale snapshot and is left alone.
func renderLine(line string, mut domain.Mutation) (string, bool) {
	idx := strings.Index(line, mut.Delimiter)
	if idx < 0 {
		return "", false
	}
	return domain.RenderAnnotationLine(line[:idx], mut.Delimiter, mut.Note, mut.Metadata), true
}

// splitLines splits on \n and normalizes \r\n endings. A trailing empty
// element from a final newline is dropped so the join does not double it.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// writeAtomic writes data to a temp file in the target's directory and
// renames it over the target, so a crash mid-write never truncates it.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".todoctl-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace file: %w", err)
	}
	return nil
}
