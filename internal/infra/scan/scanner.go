// Package scan finds TODO annotations in a source tree. The walk honors
// gitignore rules and always skips .git; the per-file search runs in
// parallel and aggregates into one snapshot sorted by path and line.
package scan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"golang.org/x/sync/errgroup"

	"github.com/runoshun/todoctl/internal/domain"
)

// Lines longer than this are not source comments; the rest of such a file
// is skipped instead of failing the scan.
const maxLineBytes = 1024 * 1024

// Ensure Scanner implements domain.AnnotationScanner.
var _ domain.AnnotationScanner = (*Scanner)(nil)

// Scanner walks root paths and extracts annotations from candidate files.
type Scanner struct {
	matcher *Matcher
	logger  *slog.Logger
}

// NewScanner creates a Scanner using the given line matcher.
func NewScanner(matcher *Matcher, logger *slog.Logger) *Scanner {
	return &Scanner{matcher: matcher, logger: logger}
}

// Scan walks each root and returns every annotation found. Traversal errors
// abort the whole scan; they are never silently swallowed.
func (s *Scanner) Scan(ctx context.Context, roots []string) ([]domain.Annotation, error) {
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var files []string
	for _, root := range roots {
		found, err := s.collectFiles(root)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	var (
		mu  sync.Mutex
		all []domain.Annotation
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found, err := s.scanFile(path)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				return nil
			}
			mu.Lock()
			all = append(all, found...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Sequential barrier: commands operate on one ordered snapshot.
	sort.Slice(all, func(i, j int) bool {
		if all[i].Path != all[j].Path {
			return all[i].Path < all[j].Path
		}
		return all[i].Line < all[j].Line
	})
	return all, nil
}

// collectFiles lists the regular files under root that are not ignored.
func (s *Scanner) collectFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	ignore, err := loadIgnoreMatcher(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk %s: %w", path, walkErr)
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		split := strings.Split(filepath.ToSlash(rel), "/")
		if d.IsDir() {
			if d.Name() == ".git" || ignore.Match(split, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || ignore.Match(split, false) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// loadIgnoreMatcher reads .gitignore files under root, recursively.
func loadIgnoreMatcher(root string) (gitignore.Matcher, error) {
	patterns, err := gitignore.ReadPatterns(osfs.New(root), nil)
	if err != nil {
		return nil, fmt.Errorf("read ignore patterns under %s: %w", root, err)
	}
	return gitignore.NewMatcher(patterns), nil
}

// scanFile extracts annotations from one file.
func (s *Scanner) scanFile(path string) ([]domain.Annotation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var found []domain.Annotation
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		if a, ok := s.matcher.Match(path, line, scanner.Text()); ok {
			found = append(found, a)
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			s.logger.Debug("skipping rest of file with oversized line", "path", path, "line", line+1)
			return found, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return found, nil
}
