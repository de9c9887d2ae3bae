// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todoctl/internal/domain"
)

// RepoConfigFileName is the per-tree configuration file, looked up in the
// working directory.
const RepoConfigFileName = ".todoctl.toml"

const globalConfigFileName = "config.toml"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the repo config file
	globalConfDir string // Global config directory (e.g. ~/.config/todoctl)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "todoctl")
}

// Load returns the merged configuration: defaults, overlaid with the global
// file, overlaid with the repository file.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := loadFile(filepath.Join(l.globalConfDir, globalConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	repo, err := loadFile(filepath.Join(l.workDir, RepoConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}

	return base, nil
}

func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays set fields of overlay onto base. Slices replace
// rather than append; booleans only turn rules on.
func mergeConfigs(base, overlay *domain.Config) *domain.Config {
	merged := *base
	if len(overlay.Scan.Paths) > 0 {
		merged.Scan.Paths = overlay.Scan.Paths
	}
	if overlay.Scan.LogLevel != "" {
		merged.Scan.LogLevel = overlay.Scan.LogLevel
	}
	if len(overlay.Lint.AllowedAssignees) > 0 {
		merged.Lint.AllowedAssignees = overlay.Lint.AllowedAssignees
	}
	if len(overlay.Lint.ProjectKeys) > 0 {
		merged.Lint.ProjectKeys = overlay.Lint.ProjectKeys
	}
	if overlay.Lint.IssueFormat != "" {
		merged.Lint.IssueFormat = overlay.Lint.IssueFormat
	}
	if overlay.Lint.RequireAssignees {
		merged.Lint.RequireAssignees = true
	}
	if overlay.Lint.RequireIssues {
		merged.Lint.RequireIssues = true
	}
	if overlay.Lint.RequireDueDates {
		merged.Lint.RequireDueDates = true
	}
	return &merged
}
